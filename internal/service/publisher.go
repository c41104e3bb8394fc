package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/leminh-ng/book-catalog/internal/errs"
	"github.com/leminh-ng/book-catalog/internal/model"
)

func (s *Service) ListPublishers(ctx context.Context) ([]model.PublisherResponse, error) {
	rows, err := s.repo.ListPublishers(ctx)
	if err != nil {
		return nil, err
	}
	return toPublisherResponses(rows), nil
}

func (s *Service) GetPublisher(ctx context.Context, id int) (model.PublisherResponse, error) {
	row, err := s.repo.GetPublisher(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.PublisherResponse{}, errors.Wrapf(errs.ErrNotFound, "publisher with id %d", id)
		}
		return model.PublisherResponse{}, err
	}
	return toPublisherResponse(row), nil
}

func (s *Service) CreatePublisher(ctx context.Context, req model.CreatePublisherRequest) (model.PublisherResponse, error) {
	exists, err := s.repo.PublisherNameExists(ctx, req.Name, 0)
	if err != nil {
		return model.PublisherResponse{}, err
	}
	if exists {
		return model.PublisherResponse{}, errors.Wrapf(errs.ErrDuplicate, "publisher with name %q", req.Name)
	}

	publisher, err := s.repo.CreatePublisher(ctx, req.Name)
	if err != nil {
		if errors.Is(err, errs.ErrDuplicate) {
			return model.PublisherResponse{}, errors.Wrapf(errs.ErrDuplicate, "publisher with name %q", req.Name)
		}
		return model.PublisherResponse{}, err
	}
	return model.PublisherResponse{ID: publisher.ID, Name: publisher.Name, BookCount: 0}, nil
}

func (s *Service) UpdatePublisher(ctx context.Context, id int, req model.CreatePublisherRequest) error {
	if _, err := s.repo.GetPublisher(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errors.Wrapf(errs.ErrNotFound, "publisher with id %d", id)
		}
		return err
	}

	exists, err := s.repo.PublisherNameExists(ctx, req.Name, id)
	if err != nil {
		return err
	}
	if exists {
		return errors.Wrapf(errs.ErrDuplicate, "another publisher with name %q", req.Name)
	}

	if err := s.repo.UpdatePublisher(ctx, id, req.Name); err != nil {
		if errors.Is(err, errs.ErrDuplicate) {
			return errors.Wrapf(errs.ErrDuplicate, "another publisher with name %q", req.Name)
		}
		return err
	}
	return nil
}

func (s *Service) DeletePublisher(ctx context.Context, id int) error {
	row, err := s.repo.GetPublisher(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errors.Wrapf(errs.ErrNotFound, "publisher with id %d", id)
		}
		return err
	}
	if row.BookCount > 0 {
		return errors.Wrapf(errs.ErrHasDependents, "publisher %q", row.Name)
	}
	return s.repo.DeletePublisher(ctx, id)
}

func (s *Service) ListPublisherBooks(ctx context.Context, id int) ([]model.BookResponse, error) {
	if _, err := s.repo.GetPublisher(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errors.Wrapf(errs.ErrNotFound, "publisher with id %d", id)
		}
		return nil, err
	}

	rows, err := s.repo.ListBooksByPublisher(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.assembleBooks(ctx, rows)
}
