package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leminh-ng/book-catalog/internal/model"
)

func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.bookSvc.ListBooks(c.Request().Context())
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	book, err := h.bookSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	book, err := h.bookSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.bookSvc.UpdateBook(c.Request().Context(), id, req); err != nil {
		return svcError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.bookSvc.DeleteBook(c.Request().Context(), id); err != nil {
		return svcError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
