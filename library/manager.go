package library

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"librarian/pkg/serrors"
)

// Manager owns the book and user collections and is the only place where
// the two sides are mutated together. Lookups by display name return the
// first match in insertion order; display names are not required to be
// unique, identifiers are.
//
// A single mutex guards every operation so that callers beyond the
// one-at-a-time interactive shell (subcommands, tests, a future network
// handler) cannot interleave the two halves of a borrow or return.
type Manager struct {
	mu sync.Mutex

	books     []*Book
	booksByID map[string]*Book
	users     []*User
	usersByID map[string]*User
}

// NewManager creates an empty catalog.
func NewManager() *Manager {
	return &Manager{
		booksByID: make(map[string]*Book),
		usersByID: make(map[string]*User),
	}
}

// AddBook registers a new title. An empty id gets a generated UUID; a
// duplicate id is rejected.
func (m *Manager) AddBook(name, id string, totalQuantity int) (*Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	if _, taken := m.booksByID[id]; taken {
		return nil, serrors.With(ErrDuplicateID, "book id %q is already in use", id)
	}

	book, err := NewBook(name, id, totalQuantity)
	if err != nil {
		return nil, err
	}
	m.books = append(m.books, book)
	m.booksByID[id] = book
	return book, nil
}

// AddUser registers a new borrower. The same id rules as AddBook apply.
func (m *Manager) AddUser(name, id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	if _, taken := m.usersByID[id]; taken {
		return nil, serrors.With(ErrDuplicateID, "user id %q is already in use", id)
	}

	user := NewUser(name, id)
	m.users = append(m.users, user)
	m.usersByID[id] = user
	return user, nil
}

// FindBookByName returns the first book with the given display name, in
// insertion order.
func (m *Manager) FindBookByName(name string) (*Book, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findBook(name)
}

// FindUserByName returns the first user with the given display name, in
// insertion order.
func (m *Manager) FindUserByName(name string) (*User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findUser(name)
}

func (m *Manager) findBook(name string) (*Book, bool) {
	for _, b := range m.books {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}

func (m *Manager) findUser(name string) (*User, bool) {
	for _, u := range m.users {
		if u.Name == name {
			return u, true
		}
	}
	return nil, false
}

// BorrowBook lends one copy of the named book to the named user. The book
// counter moves first and the user record second; every failure path exits
// before either side is touched, so no error leaves a half-done loan.
func (m *Manager) BorrowBook(userName, bookName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.findUser(userName)
	if !ok {
		return serrors.With(ErrUnknownUser, "no user named %q", userName)
	}
	book, ok := m.findBook(bookName)
	if !ok {
		return serrors.With(ErrUnknownBook, "no book named %q", bookName)
	}
	if user.HasBorrowed(book.ID) {
		return serrors.With(ErrAlreadyBorrowed, "%s already holds a copy of %s", user.Name, book.Name)
	}
	if !book.Borrow() {
		return serrors.With(ErrNoCopiesAvailable, "all %d copies of %s are out", book.TotalQuantity, book.Name)
	}
	user.RecordBorrow(book.ID)
	return nil
}

// ReturnBook takes back the named user's copy of the named book. The user
// record and the book counter are updated together.
func (m *Manager) ReturnBook(userName, bookName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.findUser(userName)
	if !ok {
		return serrors.With(ErrUnknownUser, "no user named %q", userName)
	}
	book, ok := m.findBook(bookName)
	if !ok {
		return serrors.With(ErrUnknownBook, "no book named %q", bookName)
	}
	if !user.RecordReturn(book.ID) {
		return serrors.With(ErrNotBorrowed, "%s has not borrowed %s", user.Name, book.Name)
	}
	// The user held a copy, so the counter is necessarily positive.
	book.ReturnCopy()
	return nil
}

// UsersWhoBorrowed lists the names of users currently holding the named
// book, in the order the users were registered. Unknown books yield an
// empty list.
func (m *Manager) UsersWhoBorrowed(bookName string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	book, ok := m.findBook(bookName)
	if !ok {
		return nil
	}
	var names []string
	for _, u := range m.users {
		if u.HasBorrowed(book.ID) {
			names = append(names, u.Name)
		}
	}
	return names
}

// BooksWithPrefix returns the books whose name starts with prefix, in
// insertion order. The empty prefix matches the whole catalog.
func (m *Manager) BooksWithPrefix(prefix string) []*Book {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Book
	for _, b := range m.books {
		if strings.HasPrefix(b.Name, prefix) {
			out = append(out, b)
		}
	}
	return out
}

// Books returns the catalog in insertion order.
func (m *Manager) Books() []*Book {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Book, len(m.books))
	copy(out, m.books)
	return out
}

// Users returns the registered users in insertion order.
func (m *Manager) Users() []*User {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*User, len(m.users))
	copy(out, m.users)
	return out
}
