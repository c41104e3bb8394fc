package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leminh-ng/book-catalog/internal/model"
)

func (h *Handler) ListAuthors(c echo.Context) error {
	authors, err := h.authorSvc.ListAuthors(c.Request().Context())
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, authors)
}

func (h *Handler) GetAuthor(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	author, err := h.authorSvc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, author)
}

func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.CreateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	author, err := h.authorSvc.CreateAuthor(c.Request().Context(), req)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusCreated, author)
}

func (h *Handler) UpdateAuthor(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.CreateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.authorSvc.UpdateAuthor(c.Request().Context(), id, req); err != nil {
		return svcError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.authorSvc.DeleteAuthor(c.Request().Context(), id); err != nil {
		return svcError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListAuthorBooks(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	books, err := h.authorSvc.ListAuthorBooks(c.Request().Context(), id)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, books)
}
