package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"silage/entities"
	"silage/pkg/seed"

	catalogSvc "silage/pkg/catalog/serviceImp"
	crudCtrl "silage/pkg/crud/controllerImp"
	crudRepo "silage/pkg/crud/repositoryImp"
	farmSvc "silage/pkg/farm/serviceImp"
	harvestSvc "silage/pkg/harvest/serviceImp"
	healthCtrl "silage/pkg/health/controllerImp"
	normCtrl "silage/pkg/norm/controllerImp"
	normRepo "silage/pkg/norm/repositoryImp"
	normSvc "silage/pkg/norm/serviceImp"
	reportCtrl "silage/pkg/report/controllerImp"
	reportRepo "silage/pkg/report/repositoryImp"
	reportSvc "silage/pkg/report/serviceImp"
	sampleCtrl "silage/pkg/sample/controllerImp"
	sampleRepo "silage/pkg/sample/repositoryImp"
	sampleSvc "silage/pkg/sample/serviceImp"
	tcRepo "silage/pkg/trenchcontrol/repositoryImp"
	tcSvc "silage/pkg/trenchcontrol/serviceImp"
)

// Wire builds every repository, service and controller on db and mounts them
// on e. The returned services are the ones the seed catalog is applied with.
func Wire(e *echo.Echo, db *gorm.DB, log *zap.Logger, staticDir string) (*echo.Echo, seed.Services) {
	// Repos
	farms := crudRepo.New[entities.Farm](db, "farms_name_key")
	trenches := crudRepo.New[entities.Trench](db, "trenches_farm_name_uniq")
	harvests := crudRepo.New[entities.Harvest](db, "trenches_harvest_uniq")
	tcs := crudRepo.New[entities.TrenchControl](db, "")
	foss := crudRepo.New[entities.FossSample](db, "")
	sieve := crudRepo.New[entities.SieveSample](db, "")
	crops := crudRepo.New[entities.Crop](db, "crops_name_key")
	weather := crudRepo.New[entities.WeatherCondition](db, "weather_name_key")
	fossNorms := crudRepo.New[entities.CropFossNorm](db, "")
	sieveNorms := crudRepo.New[entities.CropSieveNorm](db, "")
	fossTpl := crudRepo.New[entities.FossTemplate](db, "foss_norms_template_name_key")
	sieveTpl := crudRepo.New[entities.SieveTemplate](db, "sieve_norms_template_name_key")
	labs := crudRepo.New[entities.LabEntry](db, "")

	// Services
	fossSvc := sampleSvc.NewFossService(foss, tcs, log)
	cat := seed.Services{
		Crops:          catalogSvc.NewCropService(crops, fossTpl, sieveTpl, log),
		Weather:        catalogSvc.NewWeatherService(weather, log),
		FossTemplates:  normSvc.NewFossTemplateService(fossTpl, log),
		SieveTemplates: normSvc.NewSieveTemplateService(sieveTpl, log),
	}
	tcService := tcSvc.NewTrenchControlService(tcs, tcRepo.New(db), tcSvc.Refs{Harvests: harvests, Crops: crops, Weather: weather}, log)

	// Controllers
	crud := map[string]CrudRoutes{
		"/farms":                crudCtrl.New(farmSvc.NewFarmService(farms, log)),
		"/trenches":             crudCtrl.New(farmSvc.NewTrenchService(trenches, farms, log), crudCtrl.Uint("farm_id")),
		"/harvest":              crudCtrl.New(harvestSvc.NewHarvestService(harvests, trenches, log), crudCtrl.Uint("trench_id"), crudCtrl.Int("season")),
		"/trench_control":       crudCtrl.New(tcService, crudCtrl.Int("season"), crudCtrl.Uint("harvest_id"), crudCtrl.Uint("farm_id"), crudCtrl.Uint("trench_id")),
		"/foss_data":            crudCtrl.New(fossSvc, crudCtrl.Uint("trench_control_id")),
		"/sieve":                crudCtrl.New(sampleSvc.NewSieveService(sieve, tcs, log), crudCtrl.Uint("trench_control_id")),
		"/crops":                crudCtrl.New(cat.Crops, crudCtrl.Bool("active")),
		"/weather":              crudCtrl.New(cat.Weather, crudCtrl.Bool("active")),
		"/foss_norms":           crudCtrl.New(normSvc.NewFossNormService(fossNorms, crops, log), crudCtrl.Uint("crop_id")),
		"/sieve_norms":          crudCtrl.New(normSvc.NewSieveNormService(sieveNorms, crops, log), crudCtrl.Uint("crop_id")),
		"/foss_norms_template":  crudCtrl.New(cat.FossTemplates),
		"/sieve_norms_template": crudCtrl.New(cat.SieveTemplates),
		"/lab_data":             crudCtrl.New(harvestSvc.NewLabService(labs, harvests, log), crudCtrl.Uint("harvest_id")),
	}

	r := New(e, log, Options{
		StaticDir: staticDir,
		Health:    healthCtrl.NewHealthCtrl(db, log),
		Crud:      crud,
		Extra: []Routes{
			normCtrl.New(normSvc.NewTemplateService(normRepo.New(db), log)),
			reportCtrl.New(reportSvc.New(reportRepo.New(db))),
			sampleCtrl.New(sampleSvc.NewImportService(sampleRepo.New(db), tcs, log)),
		},
	})
	return r, cat
}
