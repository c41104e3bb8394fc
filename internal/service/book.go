package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/leminh-ng/book-catalog/internal/errs"
	"github.com/leminh-ng/book-catalog/internal/model"
)

func (s *Service) ListBooks(ctx context.Context) ([]model.BookResponse, error) {
	rows, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	return s.assembleBooks(ctx, rows)
}

func (s *Service) GetBook(ctx context.Context, id int) (model.BookResponse, error) {
	row, err := s.repo.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.BookResponse{}, errors.Wrapf(errs.ErrNotFound, "book with id %d", id)
		}
		return model.BookResponse{}, err
	}

	books, err := s.assembleBooks(ctx, []model.BookRow{row})
	if err != nil {
		return model.BookResponse{}, err
	}
	return books[0], nil
}

// CreateBook validates the publisher and every author id before any write,
// then inserts the book row and its author edges in one transaction.
func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.BookResponse, error) {
	if err := s.validatePublisherExists(ctx, req.PublisherID); err != nil {
		return model.BookResponse{}, err
	}
	if err := s.validateAuthorsExist(ctx, req.AuthorIDs); err != nil {
		return model.BookResponse{}, err
	}

	book := model.Book{
		Title:       req.Title,
		Description: req.Description,
		IsRead:      req.IsRead,
		DateRead:    req.DateRead,
		Rate:        req.Rate,
		Genre:       req.Genre,
		CoverUrl:    req.CoverUrl,
		DateAdded:   s.now(),
		PublisherID: req.PublisherID,
	}

	id, err := s.repo.CreateBook(ctx, book, req.AuthorIDs)
	if err != nil {
		return model.BookResponse{}, err
	}

	return s.GetBook(ctx, id)
}

// UpdateBook replaces the book's scalar fields and its whole author edge set.
func (s *Service) UpdateBook(ctx context.Context, id int, req model.CreateBookRequest) error {
	if _, err := s.repo.GetBook(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errors.Wrapf(errs.ErrNotFound, "book with id %d", id)
		}
		return err
	}
	if err := s.validatePublisherExists(ctx, req.PublisherID); err != nil {
		return err
	}
	if err := s.validateAuthorsExist(ctx, req.AuthorIDs); err != nil {
		return err
	}

	book := model.Book{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		IsRead:      req.IsRead,
		DateRead:    req.DateRead,
		Rate:        req.Rate,
		Genre:       req.Genre,
		CoverUrl:    req.CoverUrl,
		PublisherID: req.PublisherID,
	}
	return s.repo.UpdateBook(ctx, book, req.AuthorIDs)
}

// DeleteBook is unconditional: nothing references a book.
func (s *Service) DeleteBook(ctx context.Context, id int) error {
	if _, err := s.repo.GetBook(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errors.Wrapf(errs.ErrNotFound, "book with id %d", id)
		}
		return err
	}
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) assembleBooks(ctx context.Context, rows []model.BookRow) ([]model.BookResponse, error) {
	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	edges, err := s.repo.ListBookAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toBookResponses(rows, edges), nil
}
