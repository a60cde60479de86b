package controller

import "github.com/labstack/echo/v4"

type ReportController interface {
	TrenchControl(c echo.Context) error
	Samples(c echo.Context) error
	Harvests(c echo.Context) error
	Export(c echo.Context) error
}
