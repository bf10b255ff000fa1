package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"librarian/internal/seed"
	"librarian/library"
)

func TestBuiltinApply(t *testing.T) {
	mgr := library.NewManager()
	require.NoError(t, seed.Builtin().Apply(mgr))

	require.Len(t, mgr.Books(), 6)
	require.Len(t, mgr.Users(), 4)

	math3, ok := mgr.FindBookByName("math3")
	require.True(t, ok)
	require.Equal(t, 2, math3.Borrowed())
	require.Equal(t, []string{"mostafa", "noha"}, mgr.UsersWhoBorrowed("math3"))
}

func TestLoadAndApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yml")
	doc := `books:
  - name: chem1
    id: "301"
    quantity: 2
users:
  - name: salma
    id: "11111"
loans:
  - user: salma
    book: chem1
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	f, err := seed.Load(path)
	require.NoError(t, err)

	mgr := library.NewManager()
	require.NoError(t, f.Apply(mgr))

	book, ok := mgr.FindBookByName("chem1")
	require.True(t, ok)
	require.Equal(t, "301", book.ID)
	require.Equal(t, 1, book.Borrowed())
	require.Equal(t, []string{"salma"}, mgr.UsersWhoBorrowed("chem1"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := seed.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestApplyFailsOnBadLoan(t *testing.T) {
	f := &seed.File{
		Books: []seed.Book{{Name: "b", ID: "1", Quantity: 1}},
		Loans: []seed.Loan{{User: "ghost", Book: "b"}},
	}

	mgr := library.NewManager()
	err := f.Apply(mgr)
	require.ErrorIs(t, err, library.ErrUnknownUser)
}

func TestApplyFailsOnDuplicateBookID(t *testing.T) {
	f := &seed.File{
		Books: []seed.Book{
			{Name: "b1", ID: "1", Quantity: 1},
			{Name: "b2", ID: "1", Quantity: 1},
		},
	}

	mgr := library.NewManager()
	require.ErrorIs(t, f.Apply(mgr), library.ErrDuplicateID)
}
