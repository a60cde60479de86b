package serviceImp

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"silage/entities"
	"silage/pkg/apperr"
	"silage/pkg/crud/repository"
	"silage/pkg/crud/service"
	crud "silage/pkg/crud/serviceImp"
)

// NewCropService creates crops active. Deactivate through an update.
func NewCropService(crops repository.Repository[entities.Crop], fossTemplates, sieveTemplates crud.Exister, log *zap.Logger) service.Service[entities.Crop] {
	return crud.New("crop", crops, crud.Hooks[entities.Crop]{
		Prepare:  func(c *entities.Crop) { c.Name = strings.TrimSpace(c.Name) },
		Defaults: func(c *entities.Crop) { c.Active = true },
		Validate: func(ctx context.Context, _ uint, c *entities.Crop) error {
			if c.Name == "" {
				return apperr.Invalid("name is required")
			}
			if err := crud.OptionalRef(ctx, fossTemplates, "template_foss_id", c.TemplateFossID); err != nil {
				return err
			}
			return crud.OptionalRef(ctx, sieveTemplates, "template_sieve_id", c.TemplateSieveID)
		},
	}, log)
}

func NewWeatherService(weather repository.Repository[entities.WeatherCondition], log *zap.Logger) service.Service[entities.WeatherCondition] {
	return crud.New("weather", weather, crud.Hooks[entities.WeatherCondition]{
		Prepare:  func(w *entities.WeatherCondition) { w.Name = strings.TrimSpace(w.Name) },
		Defaults: func(w *entities.WeatherCondition) { w.Active = true },
		Validate: func(_ context.Context, _ uint, w *entities.WeatherCondition) error {
			if w.Name == "" {
				return apperr.Invalid("name is required")
			}
			return nil
		},
	}, log)
}
