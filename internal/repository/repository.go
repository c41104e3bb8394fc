package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/leminh-ng/book-catalog/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	ListAuthors(ctx context.Context) ([]model.AuthorRow, error)
	GetAuthor(ctx context.Context, id int) (model.AuthorRow, error)
	AuthorNameExists(ctx context.Context, fullName string, excludeID int) (bool, error)
	CreateAuthor(ctx context.Context, fullName string) (model.Author, error)
	UpdateAuthor(ctx context.Context, id int, fullName string) error
	DeleteAuthor(ctx context.Context, id int) error
	CountAuthorsByIDs(ctx context.Context, ids []int) (int, error)
	ListBooksByAuthor(ctx context.Context, authorID int) ([]model.BookRow, error)

	ListPublishers(ctx context.Context) ([]model.PublisherRow, error)
	GetPublisher(ctx context.Context, id int) (model.PublisherRow, error)
	PublisherNameExists(ctx context.Context, name string, excludeID int) (bool, error)
	CreatePublisher(ctx context.Context, name string) (model.Publisher, error)
	UpdatePublisher(ctx context.Context, id int, name string) error
	DeletePublisher(ctx context.Context, id int) error
	ListBooksByPublisher(ctx context.Context, publisherID int) ([]model.BookRow, error)

	ListBooks(ctx context.Context) ([]model.BookRow, error)
	GetBook(ctx context.Context, id int) (model.BookRow, error)
	ListBookAuthors(ctx context.Context, bookIDs []int) ([]model.BookAuthorRow, error)
	CreateBook(ctx context.Context, book model.Book, authorIDs []int) (int, error)
	UpdateBook(ctx context.Context, book model.Book, authorIDs []int) error
	DeleteBook(ctx context.Context, id int) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	authorsTableName     = `authors`
	publishersTableName  = `publishers`
	booksTableName       = `books`
	bookAuthorsTableName = `book_authors`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
