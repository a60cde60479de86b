// Package fossimport reads Foss instrument exports. The instrument software
// writes either a CSV file or an HTML report holding a single table; both are
// matched column by column against known header aliases.
package fossimport

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"silage/entities"
)

var ErrNoColumns = errors.New("no known Foss columns in header")

// column aliases, compared after normalize
var aliases = map[string][]string{
	"date_time":                     {"date_time", "datetime", "date", "time", "sample date", "дата", "дата и время"},
	"field":                         {"field", "поле", "sample", "sample id", "sample name"},
	string(entities.FieldMW):        {"mw", "moisture", "влага"},
	string(entities.FieldDryMatter): {"dry_matter", "dry matter", "dm", "сухое вещество", "св"},
	string(entities.FieldProtein):   {"protein", "crude protein", "cp", "белок", "сырой протеин"},
	string(entities.FieldStarch):    {"starch", "крахмал"},
	string(entities.FieldADF):       {"adf", "кдк"},
	string(entities.FieldNDF):       {"ndf", "ндк"},
	string(entities.FieldAsh):       {"ash", "ach", "зола"},
	string(entities.FieldRawFat):    {"raw_fat", "raw fat", "fat", "crude fat", "сырой жир", "жир"},
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
	"01/02/2006 15:04",
}

func normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.NewReplacer(" ", "", "-", "", "_", "", "(%)", "", "%", "", "(", "", ")", "").Replace(s)
	return s
}

// Parse reads samples from r. contentType picks the format; when it is empty
// or generic the body is sniffed.
func Parse(r io.Reader, contentType string) ([]entities.FossSample, error) {
	br := bufio.NewReader(r)
	if isHTML(contentType, br) {
		return ParseHTML(br)
	}
	return ParseCSV(br)
}

func isHTML(contentType string, br *bufio.Reader) bool {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "text/html"):
		return true
	case strings.Contains(ct, "csv"):
		return false
	}
	head, _ := br.Peek(512)
	head = bytes.ToLower(bytes.TrimSpace(bytes.TrimPrefix(head, []byte("\xef\xbb\xbf"))))
	return bytes.HasPrefix(head, []byte("<")) || bytes.Contains(head, []byte("<table"))
}

// ParseCSV reads a comma or semicolon separated export.
func ParseCSV(r io.Reader) ([]entities.FossSample, error) {
	br := bufio.NewReader(r)
	first, _ := br.Peek(1024)
	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	if line, _, _ := strings.Cut(string(first), "\n"); strings.Count(line, ";") > strings.Count(line, ",") {
		cr.Comma = ';'
	}
	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	m, err := newMapping(head)
	if err != nil {
		return nil, err
	}
	var out []entities.FossSample
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		s, ok, err := m.sample(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// ParseHTML reads the first table whose header row maps to Foss columns.
func ParseHTML(r io.Reader) ([]entities.FossSample, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	var (
		out    []entities.FossSample
		found  bool
		rowErr error
	)
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() == 0 {
			return true
		}
		m, err := newMapping(cells(rows.First()))
		if err != nil {
			return true
		}
		found = true
		rows.Slice(1, rows.Length()).EachWithBreak(func(i int, tr *goquery.Selection) bool {
			s, ok, err := m.sample(cells(tr))
			if err != nil {
				rowErr = fmt.Errorf("row %d: %w", i+2, err)
				return false
			}
			if ok {
				out = append(out, s)
			}
			return true
		})
		return false
	})
	if rowErr != nil {
		return nil, rowErr
	}
	if !found {
		return nil, ErrNoColumns
	}
	return out, nil
}

func cells(tr *goquery.Selection) []string {
	var out []string
	tr.Find("th,td").Each(func(_ int, td *goquery.Selection) {
		out = append(out, strings.TrimSpace(td.Text()))
	})
	return out
}

type mapping struct {
	dateTime, field int
	values          map[entities.FossField]int
}

func newMapping(head []string) (*mapping, error) {
	idx := map[string]int{}
	for i, h := range head {
		if _, dup := idx[normalize(h)]; !dup {
			idx[normalize(h)] = i
		}
	}
	findAny := func(keys []string) int {
		for _, k := range keys {
			if i, ok := idx[normalize(k)]; ok {
				return i
			}
		}
		return -1
	}
	m := &mapping{
		dateTime: findAny(aliases["date_time"]),
		field:    findAny(aliases["field"]),
		values:   map[entities.FossField]int{},
	}
	for _, f := range entities.FossFields {
		if i := findAny(aliases[string(f)]); i >= 0 {
			m.values[f] = i
		}
	}
	if len(m.values) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoColumns, head)
	}
	return m, nil
}

// sample converts one row. ok is false for rows without any reading.
func (m *mapping) sample(rec []string) (s entities.FossSample, ok bool, err error) {
	get := func(i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	for f, i := range m.values {
		raw := get(i)
		if raw == "" || raw == "-" {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			return s, false, fmt.Errorf("%s: %q is not a number", f, raw)
		}
		s.Set(f, &v)
		ok = true
	}
	if !ok {
		return s, false, nil
	}
	if raw := get(m.dateTime); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			return s, false, err
		}
		s.DateTime = t
	}
	if raw := get(m.field); raw != "" {
		s.Field = &raw
	}
	return s, true, nil
}

func parseTime(raw string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("date_time: unrecognised %q", raw)
}
