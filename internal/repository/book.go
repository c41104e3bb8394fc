package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/leminh-ng/book-catalog/internal/errs"
	"github.com/leminh-ng/book-catalog/internal/model"
)

func selectBooks() sq.SelectBuilder {
	return qb.Select(
		"b.id", "b.title", "b.description", "b.is_read", "b.date_read", "b.rate",
		"b.genre", "b.cover_url", "b.date_added", "b.publisher_id",
		"p.name as publisher_name").
		From(booksTableName + " b").
		Join(fmt.Sprintf("%s p on p.id = b.publisher_id", publishersTableName))
}

func (r *repository) ListBooks(ctx context.Context) ([]model.BookRow, error) {
	query, args, err := selectBooks().OrderBy("b.id").ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.BookRow
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.BookRow, error) {
	query, args, err := selectBooks().
		Where(sq.Eq{"b.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.BookRow{}, err
	}

	var book model.BookRow
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BookRow{}, errs.ErrNotFound
		}
		return model.BookRow{}, err
	}
	return book, nil
}

func (r *repository) ListBookAuthors(ctx context.Context, bookIDs []int) ([]model.BookAuthorRow, error) {
	if len(bookIDs) == 0 {
		return nil, nil
	}
	query, args, err := qb.Select("ba.book_id", "ba.author_id", "a.full_name").
		From(bookAuthorsTableName + " ba").
		Join(fmt.Sprintf("%s a on a.id = ba.author_id", authorsTableName)).
		Where(sq.Eq{"ba.book_id": bookIDs}).
		OrderBy("ba.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var edges []model.BookAuthorRow
	if err := r.db.SelectContext(ctx, &edges, query, args...); err != nil {
		return nil, err
	}
	return edges, nil
}

// CreateBook inserts the book row and one edge per author id in a single
// transaction. Duplicate author ids produce duplicate edges.
func (r *repository) CreateBook(ctx context.Context, book model.Book, authorIDs []int) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := qb.Insert(booksTableName).
		Columns("title", "description", "is_read", "date_read", "rate", "genre", "cover_url", "date_added", "publisher_id").
		Values(book.Title, book.Description, book.IsRead, book.DateRead, book.Rate, book.Genre, book.CoverUrl, book.DateAdded, book.PublisherID).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := tx.GetContext(ctx, &id, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return 0, err
	}

	if err := createBookAuthors(ctx, tx, id, authorIDs); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateBook replaces the book's scalar fields and its whole edge set
// (delete-all then insert-new) in a single transaction.
func (r *repository) UpdateBook(ctx context.Context, book model.Book, authorIDs []int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := qb.Update(booksTableName).
		Set("title", book.Title).
		Set("description", book.Description).
		Set("is_read", book.IsRead).
		Set("date_read", book.DateRead).
		Set("rate", book.Rate).
		Set("genre", book.Genre).
		Set("cover_url", book.CoverUrl).
		Set("publisher_id", book.PublisherID).
		Where(sq.Eq{"id": book.ID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("UpdateBook", zap.String("q", query), zap.Any("args", args))
		return err
	}

	if err := deleteBookAuthors(ctx, tx, book.ID); err != nil {
		return err
	}
	if err := createBookAuthors(ctx, tx, book.ID, authorIDs); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteBook removes the book's edges and then the row itself in a single
// transaction. Book delete is unconditional.
func (r *repository) DeleteBook(ctx context.Context, id int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if err := deleteBookAuthors(ctx, tx, id); err != nil {
		return err
	}

	query, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return tx.Commit()
}

func createBookAuthors(ctx context.Context, tx *sqlx.Tx, bookID int, authorIDs []int) error {
	if len(authorIDs) == 0 {
		return nil
	}
	q := qb.Insert(bookAuthorsTableName).Columns("book_id", "author_id")
	for _, authorID := range authorIDs {
		q = q.Values(bookID, authorID)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func deleteBookAuthors(ctx context.Context, tx *sqlx.Tx, bookID int) error {
	query, args, err := qb.Delete(bookAuthorsTableName).
		Where(sq.Eq{"book_id": bookID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}
