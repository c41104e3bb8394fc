package model

import (
	"time"
)

type Author struct {
	ID       int    `json:"id" db:"id"`
	FullName string `json:"fullName" db:"full_name"`
}

type Publisher struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Book struct {
	ID          int        `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	IsRead      bool       `json:"isRead" db:"is_read"`
	DateRead    *time.Time `json:"dateRead" db:"date_read"`
	Rate        *int       `json:"rate" db:"rate"`
	Genre       string     `json:"genre" db:"genre"`
	CoverUrl    *string    `json:"coverUrl" db:"cover_url"`
	DateAdded   time.Time  `json:"dateAdded" db:"date_added"`
	PublisherID int        `json:"publisherId" db:"publisher_id"`
}

// BookRow is a books row joined with its publisher name.
type BookRow struct {
	Book
	PublisherName string `db:"publisher_name"`
}

// BookAuthorRow is a book_authors edge joined with the author name.
type BookAuthorRow struct {
	BookID         int    `db:"book_id"`
	AuthorID       int    `db:"author_id"`
	AuthorFullName string `db:"full_name"`
}

// AuthorRow is an authors row with its edge count.
type AuthorRow struct {
	Author
	BookCount int `db:"book_count"`
}

// PublisherRow is a publishers row with its book count.
type PublisherRow struct {
	Publisher
	BookCount int `db:"book_count"`
}

type CreateAuthorRequest struct {
	FullName string `json:"fullName" validate:"required,max=100"`
}

type CreatePublisherRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CreateBookRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"required"`
	IsRead      bool       `json:"isRead"`
	DateRead    *time.Time `json:"dateRead"`
	Rate        *int       `json:"rate" validate:"omitempty,min=1,max=5"`
	Genre       string     `json:"genre" validate:"required,max=100"`
	CoverUrl    *string    `json:"coverUrl"`
	PublisherID int        `json:"publisherId" validate:"required"`
	AuthorIDs   []int      `json:"authorIds"`
}

type AuthorResponse struct {
	ID        int    `json:"id"`
	FullName  string `json:"fullName"`
	BookCount int    `json:"bookCount"`
}

type PublisherResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	BookCount int    `json:"bookCount"`
}

// AuthorRef is the author shape embedded in a book response.
type AuthorRef struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type BookResponse struct {
	ID            int         `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	IsRead        bool        `json:"isRead"`
	DateRead      *time.Time  `json:"dateRead"`
	Rate          *int        `json:"rate"`
	Genre         string      `json:"genre"`
	CoverUrl      *string     `json:"coverUrl"`
	DateAdded     time.Time   `json:"dateAdded"`
	PublisherID   int         `json:"publisherId"`
	PublisherName string      `json:"publisherName"`
	Authors       []AuthorRef `json:"authors"`
}
