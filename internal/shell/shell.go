// Package shell is the interactive adapter in front of the catalog core.
// It owns all prompting, parsing and retry policy; the core only ever sees
// validated strings and integers.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"librarian/library"
	"librarian/pkg/logger"
)

// Menu entries, 1-based in the prompt.
var menu = []string{
	"Add book",
	"Print library books",
	"Print books by prefix",
	"Add user",
	"Borrow book",
	"Return book",
	"Print users borrowed book",
	"Print users",
	"Exit",
}

const defaultTrials = 3

var errTrialsExhausted = errors.New("trials exhausted")

// Shell drives the menu loop against a Manager. Input and output are
// injected so the loop can run against a script in tests.
type Shell struct {
	mgr    *library.Manager
	sc     *bufio.Scanner
	out    io.Writer
	trials int
}

// Options tune the shell.
type Options struct {
	// Trials bounds how many attempts a user gets at entering a valid
	// user/book name pair. Zero means the default of 3.
	Trials int
}

// New builds a shell reading commands from in and writing to out.
func New(mgr *library.Manager, in io.Reader, out io.Writer, opts Options) *Shell {
	trials := opts.Trials
	if trials <= 0 {
		trials = defaultTrials
	}
	return &Shell{mgr: mgr, sc: bufio.NewScanner(in), out: out, trials: trials}
}

// Run loops over the menu until the user exits or input runs dry. Running
// out of input is a normal way to stop, not an error.
func (s *Shell) Run(ctx context.Context) error {
	for {
		choice, err := s.readChoice()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case 1:
			s.addBook(ctx)
		case 2:
			s.printBooks("")
		case 3:
			s.printBooksByPrefix()
		case 4:
			s.addUser(ctx)
		case 5:
			s.borrowBook(ctx)
		case 6:
			s.returnBook(ctx)
		case 7:
			s.printUsersWhoBorrowed()
		case 8:
			s.printUsers()
		case 9:
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
	}
}

func (s *Shell) readChoice() (int, error) {
	fmt.Fprintln(s.out, "Program options:")
	for i, item := range menu {
		fmt.Fprintf(s.out, "%d) %s\n", i+1, item)
	}
	prompt := fmt.Sprintf("Enter your choice from (1 to %d): ", len(menu))
	return s.readNumber(prompt, 1, len(menu))
}

// readNumber keeps prompting until it gets an integer inside [lo, hi].
func (s *Shell) readNumber(prompt string, lo, hi int) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input, enter a numeric value.")
			continue
		}
		if n < lo || n > hi {
			fmt.Fprintln(s.out, "Invalid range, try again.")
			continue
		}
		return n, nil
	}
}

func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.sc.Text()), nil
}

// readUserAndBook resolves a user name and a book name against the
// catalog, reprompting on unknown names up to the trial budget.
func (s *Shell) readUserAndBook() (string, string, error) {
	for trial := 0; trial < s.trials; trial++ {
		fmt.Fprintln(s.out, "Enter user name and book name")

		userName, err := s.readLine("User name: ")
		if err != nil {
			return "", "", err
		}
		if _, ok := s.mgr.FindUserByName(userName); !ok {
			fmt.Fprintln(s.out, "Invalid user name!")
			continue
		}

		bookName, err := s.readLine("Book name: ")
		if err != nil {
			return "", "", err
		}
		if _, ok := s.mgr.FindBookByName(bookName); !ok {
			fmt.Fprintln(s.out, "Invalid book name!")
			continue
		}

		return userName, bookName, nil
	}

	fmt.Fprintln(s.out, "Too many attempts, try again later.")
	return "", "", errTrialsExhausted
}

func (s *Shell) addBook(ctx context.Context) {
	fmt.Fprintln(s.out, "Enter book info:")
	name, err := s.readLine("Book name: ")
	if err != nil {
		return
	}
	id, err := s.readLine("Book id: ")
	if err != nil {
		return
	}
	qty, err := s.readNumber("Total quantity: ", 0, math.MaxInt)
	if err != nil {
		return
	}

	book, err := s.mgr.AddBook(name, id, qty)
	if err != nil {
		fmt.Fprintf(s.out, "Could not add book: %v\n", err)
		return
	}
	logger.Debug(ctx, "book added", zap.String("id", book.ID), zap.String("name", book.Name))
	fmt.Fprintf(s.out, "Added book %s (id %s)\n", book.Name, book.ID)
}

func (s *Shell) addUser(ctx context.Context) {
	fmt.Fprintln(s.out, "Enter user info:")
	name, err := s.readLine("User name: ")
	if err != nil {
		return
	}
	id, err := s.readLine("User id: ")
	if err != nil {
		return
	}

	user, err := s.mgr.AddUser(name, id)
	if err != nil {
		fmt.Fprintf(s.out, "Could not add user: %v\n", err)
		return
	}
	logger.Debug(ctx, "user added", zap.String("id", user.ID), zap.String("name", user.Name))
	fmt.Fprintf(s.out, "Added user %s (id %s)\n", user.Name, user.ID)
}

func (s *Shell) printBooks(prefix string) {
	books := s.mgr.BooksWithPrefix(prefix)
	if len(books) == 0 {
		fmt.Fprintln(s.out, "No books in library.")
		return
	}

	fmt.Fprintf(s.out, "%-20s %-10s %-15s %-10s\n", "Name", "ID", "Quantity", "Borrowed")
	fmt.Fprintln(s.out, strings.Repeat("-", 60))
	for _, b := range books {
		fmt.Fprintln(s.out, b.Describe())
	}
}

func (s *Shell) printBooksByPrefix() {
	prefix, err := s.readLine("Enter book name prefix: ")
	if err != nil {
		return
	}
	s.printBooks(prefix)
}

func (s *Shell) borrowBook(ctx context.Context) {
	userName, bookName, err := s.readUserAndBook()
	if err != nil {
		return
	}

	if err := s.mgr.BorrowBook(userName, bookName); err != nil {
		fmt.Fprintf(s.out, "Failed to borrow the book: %v\n", err)
		return
	}
	logger.Info(ctx, "book borrowed", zap.String("user", userName), zap.String("book", bookName))
	fmt.Fprintln(s.out, "Book borrowed successfully!")
}

func (s *Shell) returnBook(ctx context.Context) {
	userName, bookName, err := s.readUserAndBook()
	if err != nil {
		return
	}

	if err := s.mgr.ReturnBook(userName, bookName); err != nil {
		if errors.Is(err, library.ErrNotBorrowed) {
			fmt.Fprintln(s.out, "This user did not borrow this book!")
			return
		}
		fmt.Fprintf(s.out, "Failed to return the book: %v\n", err)
		return
	}
	logger.Info(ctx, "book returned", zap.String("user", userName), zap.String("book", bookName))
	fmt.Fprintln(s.out, "Book returned successfully!")
}

func (s *Shell) printUsersWhoBorrowed() {
	bookName, err := s.readLine("Book name: ")
	if err != nil {
		return
	}
	if _, ok := s.mgr.FindBookByName(bookName); !ok {
		fmt.Fprintln(s.out, "Invalid book name!")
		return
	}

	names := s.mgr.UsersWhoBorrowed(bookName)
	if len(names) == 0 {
		fmt.Fprintln(s.out, "No one borrowed this book")
		return
	}
	fmt.Fprintln(s.out, "List of users borrowed this book")
	for _, name := range names {
		fmt.Fprintln(s.out, name)
	}
}

func (s *Shell) printUsers() {
	users := s.mgr.Users()
	if len(users) == 0 {
		fmt.Fprintln(s.out, "No users registered.")
		return
	}

	fmt.Fprintf(s.out, "%-20s %-10s\n", "Name", "ID")
	fmt.Fprintln(s.out, strings.Repeat("-", 30))
	for _, u := range users {
		fmt.Fprintln(s.out, u.Describe())
	}
}
