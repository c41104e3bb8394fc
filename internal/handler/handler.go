package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/leminh-ng/book-catalog/internal/errs"
	md "github.com/leminh-ng/book-catalog/pkg/middleware"
	"github.com/leminh-ng/book-catalog/pkg/validate"
)

type Handler struct {
	authorSvc    AuthorService
	publisherSvc PublisherService
	bookSvc      BookService
	log          *zap.Logger
}

func New(authorSvc AuthorService, publisherSvc PublisherService, bookSvc BookService, log *zap.Logger) *Handler {
	return &Handler{
		authorSvc:    authorSvc,
		publisherSvc: publisherSvc,
		bookSvc:      bookSvc,
		log:          log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/authors", h.ListAuthors)
	api.GET("/authors/:id", h.GetAuthor)
	api.POST("/authors", h.CreateAuthor)
	api.PUT("/authors/:id", h.UpdateAuthor)
	api.DELETE("/authors/:id", h.DeleteAuthor)
	api.GET("/authors/:id/books", h.ListAuthorBooks)

	api.GET("/publishers", h.ListPublishers)
	api.GET("/publishers/:id", h.GetPublisher)
	api.POST("/publishers", h.CreatePublisher)
	api.PUT("/publishers/:id", h.UpdatePublisher)
	api.DELETE("/publishers/:id", h.DeletePublisher)
	api.GET("/publishers/:id/books", h.ListPublisherBooks)

	api.GET("/books", h.ListBooks)
	api.GET("/books/:id", h.GetBook)
	api.POST("/books", h.CreateBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func idParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

// svcError maps the service error taxonomy onto http statuses: 404 for a
// missing target entity, 400 for duplicate names, broken references and
// delete guards, 500 for everything else.
func svcError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrDuplicate),
		errors.Is(err, errs.ErrReferential),
		errors.Is(err, errs.ErrHasDependents):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
