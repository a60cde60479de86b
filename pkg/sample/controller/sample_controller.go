package controller

import "github.com/labstack/echo/v4"

type ImportController interface {
	ImportFoss(c echo.Context) error
}
