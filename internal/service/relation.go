package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/leminh-ng/book-catalog/internal/errs"
)

// validatePublisherExists checks the referenced publisher before a book write.
func (s *Service) validatePublisherExists(ctx context.Context, publisherID int) error {
	if _, err := s.repo.GetPublisher(ctx, publisherID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errors.Wrapf(errs.ErrReferential, "publisher with id %d", publisherID)
		}
		return err
	}
	return nil
}

// validateAuthorsExist checks every referenced author id before a book write.
// Duplicates in the input are permitted; the match is on distinct ids.
func (s *Service) validateAuthorsExist(ctx context.Context, authorIDs []int) error {
	distinct := distinctIDs(authorIDs)
	if len(distinct) == 0 {
		return nil
	}
	count, err := s.repo.CountAuthorsByIDs(ctx, distinct)
	if err != nil {
		return err
	}
	if count != len(distinct) {
		return errors.Wrap(errs.ErrReferential, "one or more author ids")
	}
	return nil
}

func distinctIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	distinct := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	return distinct
}
