package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leminh-ng/book-catalog/internal/errs"
	"github.com/leminh-ng/book-catalog/internal/model"
)

func TestService_DeletePublisher_hasBooks(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetPublisher(ctx, 7).
		Return(model.PublisherRow{Publisher: model.Publisher{ID: 7, Name: "Shinchosha"}, BookCount: 1}, nil)

	err := svc.DeletePublisher(ctx, 7)
	require.ErrorIs(t, err, errs.ErrHasDependents)
	require.EqualError(t, err, `publisher "Shinchosha": has associated books`)
}

func TestService_DeletePublisher_afterLastBookRemoved(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetPublisher(ctx, 7).
		Return(model.PublisherRow{Publisher: model.Publisher{ID: 7, Name: "Shinchosha"}, BookCount: 0}, nil)
	repo.EXPECT().
		DeletePublisher(ctx, 7).
		Return(nil)

	require.NoError(t, svc.DeletePublisher(ctx, 7))
}

func TestService_CreatePublisher_duplicateName(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().
		PublisherNameExists(ctx, "SHINCHOSHA", 0).
		Return(true, nil)

	_, err := svc.CreatePublisher(ctx, model.CreatePublisherRequest{Name: "SHINCHOSHA"})
	require.ErrorIs(t, err, errs.ErrDuplicate)
}

func TestService_UpdatePublisher_duplicateOther(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetPublisher(ctx, 7).
		Return(model.PublisherRow{Publisher: model.Publisher{ID: 7, Name: "Shinchosha"}}, nil)
	repo.EXPECT().
		PublisherNameExists(ctx, "Kodansha", 7).
		Return(true, nil)

	err := svc.UpdatePublisher(ctx, 7, model.CreatePublisherRequest{Name: "Kodansha"})
	require.ErrorIs(t, err, errs.ErrDuplicate)
	require.EqualError(t, err, `another publisher with name "Kodansha": already exists`)
}

func TestService_ListPublishers(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().
		ListPublishers(ctx).
		Return([]model.PublisherRow{
			{Publisher: model.Publisher{ID: 7, Name: "Shinchosha"}, BookCount: 2},
			{Publisher: model.Publisher{ID: 8, Name: "Kodansha"}, BookCount: 0},
		}, nil)

	publishers, err := svc.ListPublishers(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.PublisherResponse{
		{ID: 7, Name: "Shinchosha", BookCount: 2},
		{ID: 8, Name: "Kodansha", BookCount: 0},
	}, publishers)
}
