package library

import (
	"reflect"
	"testing"
)

func TestRecordBorrowIsSetLike(t *testing.T) {
	u := NewUser("mostafa", "30301")
	if !u.RecordBorrow("103") {
		t.Fatalf("first record should succeed")
	}
	if u.RecordBorrow("103") {
		t.Fatalf("second record of the same book should fail")
	}
	if got := u.BorrowedBookIDs(); len(got) != 1 {
		t.Fatalf("want one entry, got %v", got)
	}
}

// The entry removed must be the one that matched, regardless of its
// position or what the identifier happens to look like.
func TestRecordReturnRemovesMatchedEntry(t *testing.T) {
	u := NewUser("noha", "70701")
	u.RecordBorrow("100")
	u.RecordBorrow("103")
	u.RecordBorrow("201")

	if !u.RecordReturn("103") {
		t.Fatalf("return of held book should succeed")
	}
	want := []string{"100", "201"}
	if got := u.BorrowedBookIDs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}

	if u.RecordReturn("103") {
		t.Fatalf("second return of the same book should fail")
	}
}

func TestHasBorrowed(t *testing.T) {
	u := NewUser("ali", "50501")
	if u.HasBorrowed("100") {
		t.Fatalf("fresh user holds nothing")
	}
	u.RecordBorrow("100")
	if !u.HasBorrowed("100") {
		t.Fatalf("membership after borrow")
	}
}

func TestBorrowedBookIDsReturnsCopy(t *testing.T) {
	u := NewUser("ashraf", "90901")
	u.RecordBorrow("100")
	ids := u.BorrowedBookIDs()
	ids[0] = "mutated"
	if !u.HasBorrowed("100") {
		t.Fatalf("caller mutation must not reach the user's state")
	}
}
