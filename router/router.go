package router

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"silage/pkg/middleware"
)

// APIPrefix is the root of the REST API.
const APIPrefix = "/api/v1/trench"

type CrudRoutes interface {
	Register(g *echo.Group, path string)
}

type Routes interface {
	Register(g *echo.Group)
}

type Options struct {
	StaticDir string
	Health    interface{ Health(echo.Context) error }
	// Crud maps a collection path such as "/farms" to its controller.
	Crud  map[string]CrudRoutes
	Extra []Routes
}

func New(e *echo.Echo, log *zap.Logger, o Options) *echo.Echo {
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echoMiddleware.CORS())

	if o.Health != nil {
		e.GET("/health", o.Health.Health)
	}

	api := e.Group(APIPrefix)
	for path, ctrl := range o.Crud {
		ctrl.Register(api, path)
	}
	for _, r := range o.Extra {
		r.Register(api)
	}

	if o.StaticDir != "" {
		e.Static("/static", o.StaticDir)
		index := filepath.Join(o.StaticDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			log.Warn("static index not found", zap.String("path", index))
		} else {
			e.File("/", index)
		}
	}
	return e
}
