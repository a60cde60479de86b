// Package seed loads the starting catalog (crops, weather conditions and norm
// templates) from a YAML file. Applying it is idempotent: entries are matched
// by name and only missing ones are created.
package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"silage/entities"
	"silage/pkg/crud/repository"
	"silage/pkg/crud/service"
)

type Catalog struct {
	Crops          []string   `yaml:"crops"`
	Weather        []string   `yaml:"weather"`
	FossTemplates  []Template `yaml:"foss_templates"`
	SieveTemplates []Template `yaml:"sieve_templates"`
}

// Template limits use the wire names, e.g. dry_matter_lower_limit.
type Template struct {
	Name   string             `yaml:"name"`
	Limits map[string]float64 `yaml:"limits"`
}

func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &c, nil
}

// Services are the catalog services entries are created through, so the
// usual validation applies.
type Services struct {
	Crops          service.Service[entities.Crop]
	Weather        service.Service[entities.WeatherCondition]
	FossTemplates  service.Service[entities.FossTemplate]
	SieveTemplates service.Service[entities.SieveTemplate]
}

// Apply creates the missing entries and reports how many were created.
func (c *Catalog) Apply(ctx context.Context, s Services, log *zap.Logger) (int, error) {
	created := 0
	add := func(n int, err error) error {
		created += n
		return err
	}

	if err := add(ensure(ctx, s.Crops, c.Crops,
		func(x entities.Crop) string { return x.Name },
		func(name string) (*entities.Crop, error) { return &entities.Crop{Name: name}, nil })); err != nil {
		return created, err
	}
	if err := add(ensure(ctx, s.Weather, c.Weather,
		func(x entities.WeatherCondition) string { return x.Name },
		func(name string) (*entities.WeatherCondition, error) {
			return &entities.WeatherCondition{Name: name}, nil
		})); err != nil {
		return created, err
	}
	if err := add(ensure(ctx, s.FossTemplates, c.FossTemplates,
		func(x entities.FossTemplate) string { return x.Name },
		func(t Template) (*entities.FossTemplate, error) {
			out := &entities.FossTemplate{Name: t.Name}
			return out, limitsInto(t, &out.FossLimits)
		})); err != nil {
		return created, err
	}
	if err := add(ensure(ctx, s.SieveTemplates, c.SieveTemplates,
		func(x entities.SieveTemplate) string { return x.Name },
		func(t Template) (*entities.SieveTemplate, error) {
			out := &entities.SieveTemplate{Name: t.Name}
			return out, limitsInto(t, &out.SieveLimits)
		})); err != nil {
		return created, err
	}
	log.Info("seed applied", zap.Int("created", created))
	return created, nil
}

func ensure[T any, E any](ctx context.Context, svc service.Service[T], entries []E, nameOf func(T) string, build func(E) (*T, error)) (int, error) {
	if len(entries) == 0 || svc == nil {
		return 0, nil
	}
	existing, err := svc.List(ctx, repository.Filter{})
	if err != nil {
		return 0, err
	}
	have := make(map[string]bool, len(existing))
	for _, x := range existing {
		have[nameOf(x)] = true
	}
	n := 0
	for _, e := range entries {
		rec, err := build(e)
		if err != nil {
			return n, err
		}
		if have[nameOf(*rec)] {
			continue
		}
		if _, err := svc.Create(ctx, rec); err != nil {
			return n, fmt.Errorf("seed %q: %w", nameOf(*rec), err)
		}
		have[nameOf(*rec)] = true
		n++
	}
	return n, nil
}

// limitsInto maps wire-named limits onto dst, rejecting unknown names.
func limitsInto(t Template, dst any) error {
	b, err := json.Marshal(t.Limits)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("template %q: %w", t.Name, err)
	}
	return nil
}
