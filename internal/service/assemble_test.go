package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leminh-ng/book-catalog/internal/model"
)

func TestToBookResponses(t *testing.T) {
	t.Parallel()

	rows := []model.BookRow{
		{Book: model.Book{ID: 10, Title: "Kafka on the Shore", PublisherID: 7}, PublisherName: "Shinchosha"},
		{Book: model.Book{ID: 11, Title: "Norwegian Wood", PublisherID: 8}, PublisherName: "Kodansha"},
	}
	edges := []model.BookAuthorRow{
		{BookID: 10, AuthorID: 1, AuthorFullName: "Haruki Murakami"},
		{BookID: 10, AuthorID: 3, AuthorFullName: "Philip Gabriel"},
	}

	books := toBookResponses(rows, edges)
	require.Len(t, books, 2)
	require.Equal(t, "Shinchosha", books[0].PublisherName)
	require.Equal(t, []model.AuthorRef{
		{ID: 1, FullName: "Haruki Murakami"},
		{ID: 3, FullName: "Philip Gabriel"},
	}, books[0].Authors)

	// a book without edges carries an empty, non-nil author list
	require.NotNil(t, books[1].Authors)
	require.Empty(t, books[1].Authors)
}

func TestToBookResponses_duplicateEdges(t *testing.T) {
	t.Parallel()

	rows := []model.BookRow{
		{Book: model.Book{ID: 10, Title: "Kafka on the Shore", PublisherID: 7}, PublisherName: "Shinchosha"},
	}
	edges := []model.BookAuthorRow{
		{BookID: 10, AuthorID: 3, AuthorFullName: "Philip Gabriel"},
		{BookID: 10, AuthorID: 3, AuthorFullName: "Philip Gabriel"},
	}

	// duplicate edges are preserved: the author is listed twice
	books := toBookResponses(rows, edges)
	require.Len(t, books[0].Authors, 2)
}

func TestDistinctIDs(t *testing.T) {
	t.Parallel()

	require.Equal(t, []int{1, 2, 999}, distinctIDs([]int{1, 2, 999, 1, 2}))
	require.Equal(t, []int{3}, distinctIDs([]int{3, 3}))
	require.Empty(t, distinctIDs(nil))
}
