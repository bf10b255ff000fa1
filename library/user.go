package library

import "fmt"

// User is a registered borrower. borrowed holds the IDs of the books
// currently out on this user's card, oldest first, one entry per book.
type User struct {
	ID   string
	Name string

	borrowed []string
}

// NewUser creates a user with no active loans.
func NewUser(name, id string) *User {
	return &User{ID: id, Name: name}
}

// RecordBorrow notes that the user took a copy of the book. The caller is
// responsible for having secured the copy on the book side first. False
// means the user already holds this book.
func (u *User) RecordBorrow(bookID string) bool {
	if u.HasBorrowed(bookID) {
		return false
	}
	u.borrowed = append(u.borrowed, bookID)
	return true
}

// RecordReturn drops the loan entry for bookID. The element removed is the
// one actually found in the scan, never a position derived from another
// field. False means there was no such entry.
func (u *User) RecordReturn(bookID string) bool {
	for i, id := range u.borrowed {
		if id == bookID {
			u.borrowed = append(u.borrowed[:i], u.borrowed[i+1:]...)
			return true
		}
	}
	return false
}

// HasBorrowed reports whether the user currently holds a copy of the book.
func (u *User) HasBorrowed(bookID string) bool {
	for _, id := range u.borrowed {
		if id == bookID {
			return true
		}
	}
	return false
}

// BorrowedBookIDs returns a copy of the user's current loans, oldest first.
func (u *User) BorrowedBookIDs() []string {
	out := make([]string, len(u.borrowed))
	copy(out, u.borrowed)
	return out
}

// Describe formats the user as one row for table listings.
func (u *User) Describe() string {
	return fmt.Sprintf("%-20s %-10s", u.Name, u.ID)
}
