package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	crud "silage/pkg/crud/controllerImp"
	"silage/pkg/norm/controller"
	"silage/pkg/norm/service"
)

type TemplateCtrl struct{ s service.TemplateService }

var _ controller.TemplateController = (*TemplateCtrl)(nil)

func New(s service.TemplateService) *TemplateCtrl { return &TemplateCtrl{s} }

func (h *TemplateCtrl) Register(g *echo.Group) {
	g.POST("/crops/:id/apply_foss_template/:template_id", h.ApplyFoss)
	g.POST("/crops/:id/apply_sieve_template/:template_id", h.ApplySieve)
}

func (h *TemplateCtrl) ApplyFoss(c echo.Context) error {
	cropID, tplID, err := ids(c)
	if err != nil {
		return crud.Fail(c, err)
	}
	out, err := h.s.ApplyFossTemplate(c.Request().Context(), cropID, tplID)
	if err != nil {
		return crud.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TemplateCtrl) ApplySieve(c echo.Context) error {
	cropID, tplID, err := ids(c)
	if err != nil {
		return crud.Fail(c, err)
	}
	out, err := h.s.ApplySieveTemplate(c.Request().Context(), cropID, tplID)
	if err != nil {
		return crud.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func ids(c echo.Context) (cropID, templateID uint, err error) {
	if cropID, err = crud.ParseID(c, "id"); err != nil {
		return 0, 0, err
	}
	if templateID, err = crud.ParseID(c, "template_id"); err != nil {
		return 0, 0, err
	}
	return cropID, templateID, nil
}
