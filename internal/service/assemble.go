package service

import (
	"github.com/leminh-ng/book-catalog/internal/model"
)

func toAuthorResponse(row model.AuthorRow) model.AuthorResponse {
	return model.AuthorResponse{
		ID:        row.ID,
		FullName:  row.FullName,
		BookCount: row.BookCount,
	}
}

func toAuthorResponses(rows []model.AuthorRow) []model.AuthorResponse {
	authors := make([]model.AuthorResponse, 0, len(rows))
	for _, row := range rows {
		authors = append(authors, toAuthorResponse(row))
	}
	return authors
}

func toPublisherResponse(row model.PublisherRow) model.PublisherResponse {
	return model.PublisherResponse{
		ID:        row.ID,
		Name:      row.Name,
		BookCount: row.BookCount,
	}
}

func toPublisherResponses(rows []model.PublisherRow) []model.PublisherResponse {
	publishers := make([]model.PublisherResponse, 0, len(rows))
	for _, row := range rows {
		publishers = append(publishers, toPublisherResponse(row))
	}
	return publishers
}

// toBookResponses joins book rows with their author edges. An author linked
// twice appears twice, matching the stored edge set.
func toBookResponses(rows []model.BookRow, edges []model.BookAuthorRow) []model.BookResponse {
	authorsByBook := make(map[int][]model.AuthorRef, len(rows))
	for _, edge := range edges {
		authorsByBook[edge.BookID] = append(authorsByBook[edge.BookID], model.AuthorRef{
			ID:       edge.AuthorID,
			FullName: edge.AuthorFullName,
		})
	}

	books := make([]model.BookResponse, 0, len(rows))
	for _, row := range rows {
		authors := authorsByBook[row.ID]
		if authors == nil {
			authors = []model.AuthorRef{}
		}
		books = append(books, model.BookResponse{
			ID:            row.ID,
			Title:         row.Title,
			Description:   row.Description,
			IsRead:        row.IsRead,
			DateRead:      row.DateRead,
			Rate:          row.Rate,
			Genre:         row.Genre,
			CoverUrl:      row.CoverUrl,
			DateAdded:     row.DateAdded,
			PublisherID:   row.PublisherID,
			PublisherName: row.PublisherName,
			Authors:       authors,
		})
	}
	return books
}
