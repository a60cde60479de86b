package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"silage/pkg/apperr"
	crud "silage/pkg/crud/controllerImp"
	"silage/pkg/sample/controller"
	"silage/pkg/sample/service"
)

type ImportCtrl struct{ s service.ImportService }

var _ controller.ImportController = (*ImportCtrl)(nil)

func New(s service.ImportService) *ImportCtrl { return &ImportCtrl{s} }

func (h *ImportCtrl) Register(g *echo.Group) {
	g.POST("/foss_data/import", h.ImportFoss)
}

func (h *ImportCtrl) ImportFoss(c echo.Context) error {
	tcID, err := strconv.ParseUint(c.QueryParam("trench_control_id"), 10, 64)
	if err != nil || tcID == 0 {
		return crud.Fail(c, apperr.Invalid("invalid trench_control_id"))
	}
	req := c.Request()
	out, err := h.s.ImportFoss(req.Context(), uint(tcID), req.Body, req.Header.Get(echo.HeaderContentType))
	if err != nil {
		return crud.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
