package handler

import (
	"context"

	"github.com/leminh-ng/book-catalog/internal/model"
	"github.com/leminh-ng/book-catalog/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuthorService interface {
	ListAuthors(ctx context.Context) ([]model.AuthorResponse, error)
	GetAuthor(ctx context.Context, id int) (model.AuthorResponse, error)
	CreateAuthor(ctx context.Context, req model.CreateAuthorRequest) (model.AuthorResponse, error)
	UpdateAuthor(ctx context.Context, id int, req model.CreateAuthorRequest) error
	DeleteAuthor(ctx context.Context, id int) error
	ListAuthorBooks(ctx context.Context, id int) ([]model.BookResponse, error)
}

type PublisherService interface {
	ListPublishers(ctx context.Context) ([]model.PublisherResponse, error)
	GetPublisher(ctx context.Context, id int) (model.PublisherResponse, error)
	CreatePublisher(ctx context.Context, req model.CreatePublisherRequest) (model.PublisherResponse, error)
	UpdatePublisher(ctx context.Context, id int, req model.CreatePublisherRequest) error
	DeletePublisher(ctx context.Context, id int) error
	ListPublisherBooks(ctx context.Context, id int) ([]model.BookResponse, error)
}

type BookService interface {
	ListBooks(ctx context.Context) ([]model.BookResponse, error)
	GetBook(ctx context.Context, id int) (model.BookResponse, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.BookResponse, error)
	UpdateBook(ctx context.Context, id int, req model.CreateBookRequest) error
	DeleteBook(ctx context.Context, id int) error
}

var (
	_ AuthorService    = (*service.Service)(nil)
	_ PublisherService = (*service.Service)(nil)
	_ BookService      = (*service.Service)(nil)
)
