package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/leminh-ng/book-catalog/internal/errs"
	"github.com/leminh-ng/book-catalog/internal/model"
)

func (s *Service) ListAuthors(ctx context.Context) ([]model.AuthorResponse, error) {
	rows, err := s.repo.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	return toAuthorResponses(rows), nil
}

func (s *Service) GetAuthor(ctx context.Context, id int) (model.AuthorResponse, error) {
	row, err := s.repo.GetAuthor(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthorResponse{}, errors.Wrapf(errs.ErrNotFound, "author with id %d", id)
		}
		return model.AuthorResponse{}, err
	}
	return toAuthorResponse(row), nil
}

func (s *Service) CreateAuthor(ctx context.Context, req model.CreateAuthorRequest) (model.AuthorResponse, error) {
	exists, err := s.repo.AuthorNameExists(ctx, req.FullName, 0)
	if err != nil {
		return model.AuthorResponse{}, err
	}
	if exists {
		return model.AuthorResponse{}, errors.Wrapf(errs.ErrDuplicate, "author with name %q", req.FullName)
	}

	author, err := s.repo.CreateAuthor(ctx, req.FullName)
	if err != nil {
		// lost check-then-act race against the unique index
		if errors.Is(err, errs.ErrDuplicate) {
			return model.AuthorResponse{}, errors.Wrapf(errs.ErrDuplicate, "author with name %q", req.FullName)
		}
		return model.AuthorResponse{}, err
	}
	return model.AuthorResponse{ID: author.ID, FullName: author.FullName, BookCount: 0}, nil
}

func (s *Service) UpdateAuthor(ctx context.Context, id int, req model.CreateAuthorRequest) error {
	if _, err := s.repo.GetAuthor(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errors.Wrapf(errs.ErrNotFound, "author with id %d", id)
		}
		return err
	}

	exists, err := s.repo.AuthorNameExists(ctx, req.FullName, id)
	if err != nil {
		return err
	}
	if exists {
		return errors.Wrapf(errs.ErrDuplicate, "another author with name %q", req.FullName)
	}

	if err := s.repo.UpdateAuthor(ctx, id, req.FullName); err != nil {
		if errors.Is(err, errs.ErrDuplicate) {
			return errors.Wrapf(errs.ErrDuplicate, "another author with name %q", req.FullName)
		}
		return err
	}
	return nil
}

func (s *Service) DeleteAuthor(ctx context.Context, id int) error {
	row, err := s.repo.GetAuthor(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errors.Wrapf(errs.ErrNotFound, "author with id %d", id)
		}
		return err
	}
	if row.BookCount > 0 {
		return errors.Wrapf(errs.ErrHasDependents, "author %q", row.FullName)
	}
	return s.repo.DeleteAuthor(ctx, id)
}

func (s *Service) ListAuthorBooks(ctx context.Context, id int) ([]model.BookResponse, error) {
	if _, err := s.repo.GetAuthor(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errors.Wrapf(errs.ErrNotFound, "author with id %d", id)
		}
		return nil, err
	}

	rows, err := s.repo.ListBooksByAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.assembleBooks(ctx, rows)
}
