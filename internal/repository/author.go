package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/leminh-ng/book-catalog/internal/errs"
	"github.com/leminh-ng/book-catalog/internal/model"
)

func (r *repository) ListAuthors(ctx context.Context) ([]model.AuthorRow, error) {
	query, args, err := qb.Select("a.id", "a.full_name", "count(ba.id) as book_count").
		From(authorsTableName + " a").
		LeftJoin(fmt.Sprintf("%s ba on ba.author_id = a.id", bookAuthorsTableName)).
		GroupBy("a.id").
		OrderBy("a.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var authors []model.AuthorRow
	if err := r.db.SelectContext(ctx, &authors, query, args...); err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *repository) GetAuthor(ctx context.Context, id int) (model.AuthorRow, error) {
	query, args, err := qb.Select("a.id", "a.full_name", "count(ba.id) as book_count").
		From(authorsTableName + " a").
		LeftJoin(fmt.Sprintf("%s ba on ba.author_id = a.id", bookAuthorsTableName)).
		Where(sq.Eq{"a.id": id}).
		GroupBy("a.id").
		ToSql()
	if err != nil {
		return model.AuthorRow{}, err
	}

	var author model.AuthorRow
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.AuthorRow{}, errs.ErrNotFound
		}
		return model.AuthorRow{}, err
	}
	return author, nil
}

func (r *repository) AuthorNameExists(ctx context.Context, fullName string, excludeID int) (bool, error) {
	q := qb.Select("1").
		From(authorsTableName).
		Where("lower(full_name) = lower(?)", fullName)
	if excludeID != 0 {
		q = q.Where(sq.NotEq{"id": excludeID})
	}
	query, args, err := q.Limit(1).ToSql()
	if err != nil {
		return false, err
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *repository) CreateAuthor(ctx context.Context, fullName string) (model.Author, error) {
	query, args, err := qb.Insert(authorsTableName).
		Columns("full_name").
		Values(fullName).
		Suffix("returning id, full_name").
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		r.log.Error("CreateAuthor", zap.String("q", query), zap.Any("args", args))
		return model.Author{}, mapUniqueViolation(err)
	}
	return author, nil
}

func (r *repository) UpdateAuthor(ctx context.Context, id int, fullName string) error {
	query, args, err := qb.Update(authorsTableName).
		Set("full_name", fullName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *repository) DeleteAuthor(ctx context.Context, id int) error {
	query, args, err := qb.Delete(authorsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *repository) CountAuthorsByIDs(ctx context.Context, ids []int) (int, error) {
	query, args, err := qb.Select("count(*)").
		From(authorsTableName).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) ListBooksByAuthor(ctx context.Context, authorID int) ([]model.BookRow, error) {
	query, args, err := selectBooks().
		Join(fmt.Sprintf("%s ba on ba.book_id = b.id", bookAuthorsTableName)).
		Where(sq.Eq{"ba.author_id": authorID}).
		OrderBy("b.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.BookRow
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return errs.ErrDuplicate
	}
	return err
}
