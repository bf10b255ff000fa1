// Package library is the record-keeping core of the catalog: books with
// finite copy counts, users who borrow and return them, and the Manager
// that mediates every cross-entity operation. The package holds no I/O;
// presentation and prompting live in the shell adapter.
package library

import (
	"fmt"

	"librarian/pkg/serrors"
)

// Book is one title in the catalog with a fixed number of physical copies.
// The borrowed counter never leaves the range [0, TotalQuantity]; both
// mutators check before touching it.
type Book struct {
	ID            string
	Name          string
	TotalQuantity int

	borrowed int
}

// NewBook creates a book with no copies out. A negative quantity is
// rejected.
func NewBook(name, id string, totalQuantity int) (*Book, error) {
	if totalQuantity < 0 {
		return nil, serrors.With(ErrInvalidQuantity, "total quantity %d is negative", totalQuantity)
	}
	return &Book{ID: id, Name: name, TotalQuantity: totalQuantity}, nil
}

// Borrow hands out one copy. It reports false when every copy is already
// out, leaving the counter untouched.
func (b *Book) Borrow() bool {
	if b.TotalQuantity-b.borrowed == 0 {
		return false
	}
	b.borrowed++
	return true
}

// ReturnCopy takes one copy back. False means nothing was out.
func (b *Book) ReturnCopy() bool {
	if b.borrowed == 0 {
		return false
	}
	b.borrowed--
	return true
}

// Borrowed is the number of copies currently out.
func (b *Book) Borrowed() int { return b.borrowed }

// Available is the number of copies on the shelf right now.
func (b *Book) Available() int { return b.TotalQuantity - b.borrowed }

// Describe formats the book as one row for table listings.
func (b *Book) Describe() string {
	return fmt.Sprintf("%-20s %-10s %-15d %-10d", b.Name, b.ID, b.TotalQuantity, b.borrowed)
}
