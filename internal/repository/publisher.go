package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/leminh-ng/book-catalog/internal/errs"
	"github.com/leminh-ng/book-catalog/internal/model"
)

func (r *repository) ListPublishers(ctx context.Context) ([]model.PublisherRow, error) {
	query, args, err := qb.Select("p.id", "p.name", "count(b.id) as book_count").
		From(publishersTableName + " p").
		LeftJoin(fmt.Sprintf("%s b on b.publisher_id = p.id", booksTableName)).
		GroupBy("p.id").
		OrderBy("p.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var publishers []model.PublisherRow
	if err := r.db.SelectContext(ctx, &publishers, query, args...); err != nil {
		return nil, err
	}
	return publishers, nil
}

func (r *repository) GetPublisher(ctx context.Context, id int) (model.PublisherRow, error) {
	query, args, err := qb.Select("p.id", "p.name", "count(b.id) as book_count").
		From(publishersTableName + " p").
		LeftJoin(fmt.Sprintf("%s b on b.publisher_id = p.id", booksTableName)).
		Where(sq.Eq{"p.id": id}).
		GroupBy("p.id").
		ToSql()
	if err != nil {
		return model.PublisherRow{}, err
	}

	var publisher model.PublisherRow
	if err := r.db.GetContext(ctx, &publisher, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.PublisherRow{}, errs.ErrNotFound
		}
		return model.PublisherRow{}, err
	}
	return publisher, nil
}

func (r *repository) PublisherNameExists(ctx context.Context, name string, excludeID int) (bool, error) {
	q := qb.Select("1").
		From(publishersTableName).
		Where("lower(name) = lower(?)", name)
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

func (r *repository) CreatePublisher(ctx context.Context, name string) (model.Publisher, error) {
	query, args, err := qb.Insert(publishersTableName).
		Columns("name").
		Values(name).
		Suffix("returning id, name").
		ToSql()
	if err != nil {
		return model.Publisher{}, err
	}

	var publisher model.Publisher
	if err := r.db.GetContext(ctx, &publisher, query, args...); err != nil {
		r.log.Error("CreatePublisher", zap.String("q", query), zap.Any("args", args))
		return model.Publisher{}, mapUniqueViolation(err)
	}
	return publisher, nil
}

func (r *repository) UpdatePublisher(ctx context.Context, id int, name string) error {
	query, args, err := qb.Update(publishersTableName).
		Set("name", name).
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

func (r *repository) DeletePublisher(ctx context.Context, id int) error {
	query, args, err := qb.Delete(publishersTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *repository) ListBooksByPublisher(ctx context.Context, publisherID int) ([]model.BookRow, error) {
	query, args, err := selectBooks().
		Where(sq.Eq{"b.publisher_id": publisherID}).
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
