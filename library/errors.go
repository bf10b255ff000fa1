package library

import "librarian/pkg/serrors"

// Failure categories for catalog operations. Callers match them with
// errors.Is; none of them is fatal and every failure leaves the catalog
// exactly as it was before the call.
var (
	// ErrUnknownUser means a lookup by user name found no match.
	ErrUnknownUser = serrors.NewKind("UNKNOWN_USER")
	// ErrUnknownBook means a lookup by book name found no match.
	ErrUnknownBook = serrors.NewKind("UNKNOWN_BOOK")
	// ErrNoCopiesAvailable means every copy of the book is already out.
	ErrNoCopiesAvailable = serrors.NewKind("NO_COPIES_AVAILABLE")
	// ErrNotBorrowed means the user holds no copy of the book.
	ErrNotBorrowed = serrors.NewKind("NOT_BORROWED")
	// ErrAlreadyBorrowed means the user already holds a copy of the book.
	ErrAlreadyBorrowed = serrors.NewKind("ALREADY_BORROWED")
	// ErrDuplicateID means the identifier is already taken.
	ErrDuplicateID = serrors.NewKind("DUPLICATE_ID")
	// ErrInvalidQuantity means a book was created with a negative copy count.
	ErrInvalidQuantity = serrors.NewKind("INVALID_QUANTITY")
)
