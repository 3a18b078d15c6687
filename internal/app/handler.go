package app

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/HenningWaack/ccAcmePairing/internal/catalog"
	"github.com/HenningWaack/ccAcmePairing/internal/storage"
)

type handler struct {
	products *catalog.Service
}

func (h handler) register(e *echo.Echo) {
	e.GET("/products", h.list)
	e.POST("/products", h.create)
	e.GET("/products/:id", h.get)
	e.PUT("/products/:id", h.update)
}

func (h handler) list(c echo.Context) error {
	products, err := h.products.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h handler) get(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	product, err := h.products.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h handler) create(c echo.Context) error {
	var draft catalog.Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	created, err := h.products.Create(c.Request().Context(), draft)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h handler) update(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	var draft catalog.Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	updated, err := h.products.Update(c.Request().Context(), id, draft)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// productID parses the :id path parameter. A non-numeric id addresses no
// product and is reported as not found.
func productID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound)
	}
	return id, nil
}

// httpError maps service errors to HTTP statuses. Anything unrecognized
// bubbles up as a generic 500; echo's default error handler never exposes the
// underlying error text for those.
func httpError(err error) error {
	var verr catalog.ValidationError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound)
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusBadRequest, verr.Error())
	}
	return err
}
