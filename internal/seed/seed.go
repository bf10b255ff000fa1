// Package seed loads the catalog's initial contents: either the built-in
// sample data or a YAML file describing books, users and opening loans.
// Seeding is one-way; nothing is ever written back out.
package seed

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"librarian/library"
)

// Book is one catalog entry in a seed file.
type Book struct {
	Name     string `yaml:"name"`
	ID       string `yaml:"id"`
	Quantity int    `yaml:"quantity"`
}

// User is one borrower in a seed file.
type User struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id"`
}

// Loan is an opening loan: the named user starts out holding one copy of
// the named book.
type Loan struct {
	User string `yaml:"user"`
	Book string `yaml:"book"`
}

// File is a full seed document.
type File struct {
	Books []Book `yaml:"books"`
	Users []User `yaml:"users"`
	Loans []Loan `yaml:"loans"`
}

// Load parses the YAML seed file at path.
func Load(path string) (*File, error) {
	var f File
	if err := cleanenv.ReadConfig(path, &f); err != nil {
		return nil, fmt.Errorf("could not read seed file %s: %w", path, err)
	}

	return &f, nil
}

// Builtin is the sample catalog: a handful of math and programming titles,
// four users, and two copies of math3 already out.
func Builtin() *File {
	return &File{
		Books: []Book{
			{Name: "math4", ID: "100", Quantity: 3},
			{Name: "math2", ID: "101", Quantity: 5},
			{Name: "math1", ID: "102", Quantity: 4},
			{Name: "math3", ID: "103", Quantity: 2},
			{Name: "prog1", ID: "201", Quantity: 3},
			{Name: "prog2", ID: "202", Quantity: 3},
		},
		Users: []User{
			{Name: "mostafa", ID: "30301"},
			{Name: "ali", ID: "50501"},
			{Name: "noha", ID: "70701"},
			{Name: "ashraf", ID: "90901"},
		},
		Loans: []Loan{
			{User: "mostafa", Book: "math3"},
			{User: "noha", Book: "math3"},
		},
	}
}

// Apply registers every book and user and then records the opening loans.
// The first error stops the load.
func (f *File) Apply(mgr *library.Manager) error {
	for _, b := range f.Books {
		if _, err := mgr.AddBook(b.Name, b.ID, b.Quantity); err != nil {
			return fmt.Errorf("seed book %s: %w", b.Name, err)
		}
	}
	for _, u := range f.Users {
		if _, err := mgr.AddUser(u.Name, u.ID); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Name, err)
		}
	}
	for _, l := range f.Loans {
		if err := mgr.BorrowBook(l.User, l.Book); err != nil {
			return fmt.Errorf("seed loan of %s to %s: %w", l.Book, l.User, err)
		}
	}

	return nil
}
