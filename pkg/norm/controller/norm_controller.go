package controller

import "github.com/labstack/echo/v4"

type TemplateController interface {
	ApplyFoss(c echo.Context) error
	ApplySieve(c echo.Context) error
}
