package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"silage/pkg/apperr"
	"silage/pkg/crud/controller"
	"silage/pkg/crud/repository"
	"silage/pkg/crud/service"
)

// Param is a list filter accepted from the query string.
type Param struct {
	Name  string
	Parse func(string) (any, error)
}

func Uint(name string) Param {
	return Param{Name: name, Parse: func(s string) (any, error) {
		v, err := strconv.ParseUint(s, 10, 64)
		return uint(v), err
	}}
}

func Int(name string) Param {
	return Param{Name: name, Parse: func(s string) (any, error) { return strconv.Atoi(s) }}
}

func Bool(name string) Param {
	return Param{Name: name, Parse: func(s string) (any, error) { return strconv.ParseBool(s) }}
}

type CrudCtrl[T any] struct {
	s      service.Service[T]
	params []Param
}

var _ controller.CrudController = (*CrudCtrl[struct{}])(nil)

func New[T any](s service.Service[T], params ...Param) *CrudCtrl[T] {
	return &CrudCtrl[T]{s: s, params: params}
}

func (h *CrudCtrl[T]) Register(g *echo.Group, path string) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.GET(path+"/:id", h.Get)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}

func (h *CrudCtrl[T]) List(c echo.Context) error {
	f := repository.Filter{}
	for _, p := range h.params {
		raw := c.QueryParam(p.Name)
		if raw == "" {
			continue
		}
		v, err := p.Parse(raw)
		if err != nil {
			return Fail(c, apperr.Invalid("invalid %s", p.Name))
		}
		f[p.Name] = v
	}
	out, err := h.s.List(c.Request().Context(), f)
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CrudCtrl[T]) Get(c echo.Context) error {
	id, err := ParseID(c, "id")
	if err != nil {
		return Fail(c, err)
	}
	out, err := h.s.Get(c.Request().Context(), id)
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CrudCtrl[T]) Create(c echo.Context) error {
	var in T
	if err := c.Bind(&in); err != nil {
		return Fail(c, apperr.Invalid("invalid json"))
	}
	out, err := h.s.Create(c.Request().Context(), &in)
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CrudCtrl[T]) Update(c echo.Context) error {
	id, err := ParseID(c, "id")
	if err != nil {
		return Fail(c, err)
	}
	var in T
	if err := c.Bind(&in); err != nil {
		return Fail(c, apperr.Invalid("invalid json"))
	}
	out, err := h.s.Update(c.Request().Context(), id, &in)
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CrudCtrl[T]) Delete(c echo.Context) error {
	id, err := ParseID(c, "id")
	if err != nil {
		return Fail(c, err)
	}
	if err := h.s.Delete(c.Request().Context(), id); err != nil {
		return Fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// ParseID reads a positive integer path parameter.
func ParseID(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, apperr.Invalid("invalid %s", name)
	}
	return uint(v), nil
}

// Fail writes err as {"error": message} with its classified status.
func Fail(c echo.Context, err error) error {
	return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
}
