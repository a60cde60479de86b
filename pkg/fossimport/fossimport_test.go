package fossimport

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_Aliases(t *testing.T) {
	in := "\uFEFFSample ID,Date,DM,Crude Protein,Starch,ADF,NDF,Ash,Fat\n" +
		"A1,2024-05-17 08:30,32.5,8.1,,21,40,4.2,3\n" +
		",,,,,,,,\n"
	got, err := Parse(strings.NewReader(in), "text/csv")
	require.NoError(t, err)
	require.Len(t, got, 1)

	s := got[0]
	assert.Equal(t, "A1", *s.Field)
	assert.Equal(t, time.Date(2024, 5, 17, 8, 30, 0, 0, time.UTC), s.DateTime)
	assert.Equal(t, 32.5, *s.DryMatter)
	assert.Equal(t, 8.1, *s.Protein)
	assert.Nil(t, s.Starch)
	assert.Equal(t, 3.0, *s.RawFat)
	assert.Nil(t, s.MW)
}

func TestParseCSV_SemicolonAndDecimalComma(t *testing.T) {
	in := "Дата;Сухое вещество (%);Белок (%);Зола\n17.05.2024;33,4;7,9;4\n"
	got, err := Parse(strings.NewReader(in), "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 33.4, *got[0].DryMatter)
	assert.Equal(t, 7.9, *got[0].Protein)
	assert.Equal(t, 4.0, *got[0].Ash)
}

func TestParseCSV_Errors(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("name,colour\nx,y\n"))
	assert.ErrorIs(t, err, ErrNoColumns)

	_, err = ParseCSV(strings.NewReader("dm\nabc\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestParseHTML(t *testing.T) {
	in := `<html><body>
<table><tr><td>Instrument</td><td>DS2500</td></tr></table>
<table>
  <tr><th>Sample</th><th>Dry matter</th><th>NDF</th></tr>
  <tr><td>S-1</td><td>31.2</td><td>42</td></tr>
  <tr><td>S-2</td><td>-</td><td></td></tr>
  <tr><td>S-3</td><td>30</td><td></td></tr>
</table></body></html>`
	got, err := Parse(strings.NewReader(in), "application/octet-stream")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "S-1", *got[0].Field)
	assert.Equal(t, 42.0, *got[0].NDF)
	assert.Nil(t, got[1].NDF)
	assert.True(t, got[0].DateTime.IsZero())
}

func TestParseHTML_NoTable(t *testing.T) {
	_, err := ParseHTML(strings.NewReader("<html><p>empty</p></html>"))
	assert.ErrorIs(t, err, ErrNoColumns)
}
