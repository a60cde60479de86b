package controllerImp

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"silage/pkg/aggregate"
	"silage/pkg/apperr"
	crud "silage/pkg/crud/controllerImp"
	"silage/pkg/report/controller"
	"silage/pkg/report/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportCtrl struct{ s service.ReportService }

var _ controller.ReportController = (*ReportCtrl)(nil)

func New(s service.ReportService) *ReportCtrl { return &ReportCtrl{s} }

func (h *ReportCtrl) Register(g *echo.Group) {
	g.GET("/report/trench_control", h.TrenchControl)
	g.GET("/report/trench_control/:id/samples", h.Samples)
	g.GET("/report/harvests", h.Harvests)
	g.GET("/report/export.xlsx", h.Export)
}

func (h *ReportCtrl) TrenchControl(c echo.Context) error {
	sel, err := selection(c)
	if err != nil {
		return crud.Fail(c, err)
	}
	out, err := h.s.TrenchControl(c.Request().Context(), sel)
	if err != nil {
		return crud.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportCtrl) Samples(c echo.Context) error {
	id, err := crud.ParseID(c, "id")
	if err != nil {
		return crud.Fail(c, err)
	}
	out, err := h.s.Samples(c.Request().Context(), id)
	if err != nil {
		return crud.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportCtrl) Harvests(c echo.Context) error {
	sel, err := selection(c)
	if err != nil {
		return crud.Fail(c, err)
	}
	out, err := h.s.Harvests(c.Request().Context(), sel)
	if err != nil {
		return crud.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportCtrl) Export(c echo.Context) error {
	sel, err := selection(c)
	if err != nil {
		return crud.Fail(c, err)
	}
	var buf bytes.Buffer
	if err := h.s.Export(c.Request().Context(), sel, &buf); err != nil {
		return crud.Fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="silage-report.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

func selection(c echo.Context) (aggregate.Selection, error) {
	var sel aggregate.Selection
	if v := c.QueryParam("season"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return sel, apperr.Invalid("invalid season")
		}
		sel.Season = &n
	}
	for name, dst := range map[string]**uint{"farm_id": &sel.FarmID, "trench_id": &sel.TrenchID} {
		v := c.QueryParam(name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return sel, apperr.Invalid("invalid %s", name)
		}
		id := uint(n)
		*dst = &id
	}
	return sel, nil
}
