package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leminh-ng/book-catalog/internal/model"
)

func (h *Handler) ListPublishers(c echo.Context) error {
	publishers, err := h.publisherSvc.ListPublishers(c.Request().Context())
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, publishers)
}

func (h *Handler) GetPublisher(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	publisher, err := h.publisherSvc.GetPublisher(c.Request().Context(), id)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, publisher)
}

func (h *Handler) CreatePublisher(c echo.Context) error {
	var req model.CreatePublisherRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	publisher, err := h.publisherSvc.CreatePublisher(c.Request().Context(), req)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusCreated, publisher)
}

func (h *Handler) UpdatePublisher(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req model.CreatePublisherRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.publisherSvc.UpdatePublisher(c.Request().Context(), id, req); err != nil {
		return svcError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeletePublisher(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.publisherSvc.DeletePublisher(c.Request().Context(), id); err != nil {
		return svcError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListPublisherBooks(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	books, err := h.publisherSvc.ListPublisherBooks(c.Request().Context(), id)
	if err != nil {
		return svcError(err)
	}
	return c.JSON(http.StatusOK, books)
}
