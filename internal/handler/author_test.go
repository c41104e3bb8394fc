package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leminh-ng/book-catalog/internal/errs"
	"github.com/leminh-ng/book-catalog/internal/handler"
	"github.com/leminh-ng/book-catalog/internal/model"
	"github.com/leminh-ng/book-catalog/pkg/validate"

	service_mocks "github.com/leminh-ng/book-catalog/internal/handler/mocks"
)

func newTestHandler(t *testing.T) (*handler.Handler, *service_mocks.MockAuthorService, *service_mocks.MockPublisherService, *service_mocks.MockBookService) {
	t.Helper()
	c := gomock.NewController(t)
	authorSvc := service_mocks.NewMockAuthorService(c)
	publisherSvc := service_mocks.NewMockPublisherService(c)
	bookSvc := service_mocks.NewMockBookService(c)
	log := zap.NewExample().Named("test")
	return handler.New(authorSvc, publisherSvc, bookSvc, log), authorSvc, publisherSvc, bookSvc
}

func TestHandler_GetAuthor(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockAuthorService)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   "1",
			mockBehavior: func(r *service_mocks.MockAuthorService) {
				r.EXPECT().
					GetAuthor(context.Background(), 1).
					Return(model.AuthorResponse{ID: 1, FullName: "Haruki Murakami", BookCount: 2}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"fullName":"Haruki Murakami","bookCount":2}`,
			},
		},
		{
			name: "err. not found",
			id:   "42",
			mockBehavior: func(r *service_mocks.MockAuthorService) {
				r.EXPECT().
					GetAuthor(context.Background(), 42).
					Return(model.AuthorResponse{}, errors.Wrapf(errs.ErrNotFound, "author with id %d", 42))
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"author with id 42: not found"}`,
			},
		},
		{
			name:         "err. bad id",
			id:           "abc",
			mockBehavior: func(r *service_mocks.MockAuthorService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"id is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, authorSvc, _, _ := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/authors/:id", h.GetAuthor)

			r := httptest.NewRequest(http.MethodGet, "/api/authors/"+tt.id, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(authorSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateAuthor(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockAuthorService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"fullName":"Haruki Murakami"}`,
			mockBehavior: func(r *service_mocks.MockAuthorService) {
				r.EXPECT().
					CreateAuthor(context.Background(), model.CreateAuthorRequest{FullName: "Haruki Murakami"}).
					Return(model.AuthorResponse{ID: 1, FullName: "Haruki Murakami", BookCount: 0}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"fullName":"Haruki Murakami","bookCount":0}`,
			},
		},
		{
			name: "err. duplicate name differing only in case",
			body: `{"fullName":"HARUKI MURAKAMI"}`,
			mockBehavior: func(r *service_mocks.MockAuthorService) {
				r.EXPECT().
					CreateAuthor(context.Background(), model.CreateAuthorRequest{FullName: "HARUKI MURAKAMI"}).
					Return(model.AuthorResponse{}, errors.Wrapf(errs.ErrDuplicate, "author with name %q", "HARUKI MURAKAMI"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"author with name \"HARUKI MURAKAMI\": already exists"}`,
			},
		},
		{
			name:         "err. empty name rejected by validator",
			body:         `{"fullName":""}`,
			mockBehavior: func(r *service_mocks.MockAuthorService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateAuthorRequest.FullName' Error:Field validation for 'FullName' failed on the 'required' tag"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, authorSvc, _, _ := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/authors", h.CreateAuthor)

			r := httptest.NewRequest(http.MethodPost, "/api/authors", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(authorSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_DeleteAuthor(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockAuthorService)

	var tests = []struct {
		name         string
		id           int
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   3,
			mockBehavior: func(r *service_mocks.MockAuthorService) {
				r.EXPECT().
					DeleteAuthor(context.Background(), 3).
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusNoContent,
				expectedBody: ``,
			},
		},
		{
			name: "err. has books",
			id:   3,
			mockBehavior: func(r *service_mocks.MockAuthorService) {
				r.EXPECT().
					DeleteAuthor(context.Background(), 3).
					Return(errors.Wrapf(errs.ErrHasDependents, "author %q", "Haruki Murakami"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"author \"Haruki Murakami\": has associated books"}`,
			},
		},
		{
			name: "err. not found",
			id:   404,
			mockBehavior: func(r *service_mocks.MockAuthorService) {
				r.EXPECT().
					DeleteAuthor(context.Background(), 404).
					Return(errors.Wrapf(errs.ErrNotFound, "author with id %d", 404))
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"author with id 404: not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, authorSvc, _, _ := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.DELETE("/api/authors/:id", h.DeleteAuthor)

			r := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/authors/%d", tt.id), http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(authorSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListAuthorBooks(t *testing.T) {
	t.Parallel()

	books := []model.BookResponse{
		{
			ID:            1,
			Title:         "Kafka on the Shore",
			Description:   "A novel",
			Genre:         "Fiction",
			PublisherID:   7,
			PublisherName: "Shinchosha",
			Authors: []model.AuthorRef{
				{ID: 1, FullName: "Haruki Murakami"},
				{ID: 2, FullName: "Philip Gabriel"},
			},
		},
		{
			ID:            2,
			Title:         "Norwegian Wood",
			Description:   "Another novel",
			Genre:         "Fiction",
			PublisherID:   8,
			PublisherName: "Kodansha",
			Authors: []model.AuthorRef{
				{ID: 1, FullName: "Haruki Murakami"},
			},
		},
	}

	h, authorSvc, _, _ := newTestHandler(t)
	authorSvc.EXPECT().
		ListAuthorBooks(context.Background(), 1).
		Return(books, nil)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/api/authors/:id/books", h.ListAuthorBooks)

	r := httptest.NewRequest(http.MethodGet, "/api/authors/1/books", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"publisherName":"Shinchosha"`)
	require.Contains(t, w.Body.String(), `"publisherName":"Kodansha"`)
	require.Contains(t, w.Body.String(), `"fullName":"Philip Gabriel"`)
}
