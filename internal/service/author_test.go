package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leminh-ng/book-catalog/internal/errs"
	"github.com/leminh-ng/book-catalog/internal/model"
	mock_repository "github.com/leminh-ng/book-catalog/internal/repository/mocks"
)

func newTestService(t *testing.T) (*Service, *mock_repository.MockRepository) {
	t.Helper()
	c := gomock.NewController(t)
	repo := mock_repository.NewMockRepository(c)
	return NewService(repo, zap.NewExample().Named("test")), repo
}

func TestService_CreateAuthor_duplicateName(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	// the check is case-insensitive: the repo lookup matches regardless of case
	repo.EXPECT().
		AuthorNameExists(ctx, "HARUKI murakami", 0).
		Return(true, nil)

	_, err := svc.CreateAuthor(ctx, model.CreateAuthorRequest{FullName: "HARUKI murakami"})
	require.ErrorIs(t, err, errs.ErrDuplicate)
	require.EqualError(t, err, `author with name "HARUKI murakami": already exists`)
}

func TestService_CreateAuthor_ok(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().
		AuthorNameExists(ctx, "Haruki Murakami", 0).
		Return(false, nil)
	repo.EXPECT().
		CreateAuthor(ctx, "Haruki Murakami").
		Return(model.Author{ID: 1, FullName: "Haruki Murakami"}, nil)

	author, err := svc.CreateAuthor(ctx, model.CreateAuthorRequest{FullName: "Haruki Murakami"})
	require.NoError(t, err)
	require.Equal(t, model.AuthorResponse{ID: 1, FullName: "Haruki Murakami", BookCount: 0}, author)
}

func TestService_CreateAuthor_lostRace(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	// pre-check passes but the unique index rejects the concurrent insert
	repo.EXPECT().
		AuthorNameExists(ctx, "Haruki Murakami", 0).
		Return(false, nil)
	repo.EXPECT().
		CreateAuthor(ctx, "Haruki Murakami").
		Return(model.Author{}, errs.ErrDuplicate)

	_, err := svc.CreateAuthor(ctx, model.CreateAuthorRequest{FullName: "Haruki Murakami"})
	require.ErrorIs(t, err, errs.ErrDuplicate)
}

func TestService_UpdateAuthor_excludesSelf(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	// renaming to its own name (different case) is not a duplicate
	repo.EXPECT().
		GetAuthor(ctx, 1).
		Return(model.AuthorRow{Author: model.Author{ID: 1, FullName: "haruki murakami"}}, nil)
	repo.EXPECT().
		AuthorNameExists(ctx, "Haruki Murakami", 1).
		Return(false, nil)
	repo.EXPECT().
		UpdateAuthor(ctx, 1, "Haruki Murakami").
		Return(nil)

	require.NoError(t, svc.UpdateAuthor(ctx, 1, model.CreateAuthorRequest{FullName: "Haruki Murakami"}))
}

func TestService_UpdateAuthor_notFound(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetAuthor(ctx, 42).
		Return(model.AuthorRow{}, errs.ErrNotFound)

	err := svc.UpdateAuthor(ctx, 42, model.CreateAuthorRequest{FullName: "Haruki Murakami"})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_DeleteAuthor_hasBooks(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetAuthor(ctx, 1).
		Return(model.AuthorRow{Author: model.Author{ID: 1, FullName: "Haruki Murakami"}, BookCount: 2}, nil)

	err := svc.DeleteAuthor(ctx, 1)
	require.ErrorIs(t, err, errs.ErrHasDependents)
	require.EqualError(t, err, `author "Haruki Murakami": has associated books`)
}

func TestService_DeleteAuthor_ok(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetAuthor(ctx, 1).
		Return(model.AuthorRow{Author: model.Author{ID: 1, FullName: "Haruki Murakami"}, BookCount: 0}, nil)
	repo.EXPECT().
		DeleteAuthor(ctx, 1).
		Return(nil)

	require.NoError(t, svc.DeleteAuthor(ctx, 1))
}

func TestService_ListAuthorBooks(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetAuthor(ctx, 1).
		Return(model.AuthorRow{Author: model.Author{ID: 1, FullName: "Haruki Murakami"}, BookCount: 2}, nil)
	repo.EXPECT().
		ListBooksByAuthor(ctx, 1).
		Return([]model.BookRow{
			{Book: model.Book{ID: 10, Title: "Kafka on the Shore", PublisherID: 7}, PublisherName: "Shinchosha"},
			{Book: model.Book{ID: 11, Title: "Norwegian Wood", PublisherID: 8}, PublisherName: "Kodansha"},
		}, nil)
	repo.EXPECT().
		ListBookAuthors(ctx, []int{10, 11}).
		Return([]model.BookAuthorRow{
			{BookID: 10, AuthorID: 1, AuthorFullName: "Haruki Murakami"},
			{BookID: 10, AuthorID: 3, AuthorFullName: "Philip Gabriel"},
			{BookID: 11, AuthorID: 1, AuthorFullName: "Haruki Murakami"},
		}, nil)

	books, err := svc.ListAuthorBooks(ctx, 1)
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.Equal(t, "Shinchosha", books[0].PublisherName)
	require.Equal(t, []model.AuthorRef{
		{ID: 1, FullName: "Haruki Murakami"},
		{ID: 3, FullName: "Philip Gabriel"},
	}, books[0].Authors)
	require.Equal(t, "Kodansha", books[1].PublisherName)
	require.Equal(t, []model.AuthorRef{{ID: 1, FullName: "Haruki Murakami"}}, books[1].Authors)
}
