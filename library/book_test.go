package library

import (
	"errors"
	"testing"
)

func TestNewBookRejectsNegativeQuantity(t *testing.T) {
	if _, err := NewBook("math1", "102", -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("want ErrInvalidQuantity, got %v", err)
	}
}

func TestNewBookAllowsZeroQuantity(t *testing.T) {
	b, err := NewBook("rare", "1", 0)
	if err != nil {
		t.Fatalf("new book: %v", err)
	}
	if b.Borrow() {
		t.Fatalf("borrow from zero-copy book should fail")
	}
}

func TestBorrowExhaustsCopies(t *testing.T) {
	b, err := NewBook("math3", "103", 2)
	if err != nil {
		t.Fatalf("new book: %v", err)
	}

	if !b.Borrow() || !b.Borrow() {
		t.Fatalf("first two borrows should succeed")
	}
	if b.Borrow() {
		t.Fatalf("third borrow should fail, all copies out")
	}
	if b.Borrowed() != 2 || b.Available() != 0 {
		t.Fatalf("counters wrong: borrowed=%d available=%d", b.Borrowed(), b.Available())
	}
}

func TestReturnCopyOnIdleBook(t *testing.T) {
	b, _ := NewBook("prog1", "201", 3)
	if b.ReturnCopy() {
		t.Fatalf("return with nothing out should fail")
	}
	if b.Borrowed() != 0 {
		t.Fatalf("failed return must not move the counter")
	}
}

func TestBorrowReturnRoundTrip(t *testing.T) {
	b, _ := NewBook("prog2", "202", 3)
	before := b.Borrowed()

	if !b.Borrow() {
		t.Fatalf("borrow should succeed")
	}
	if !b.ReturnCopy() {
		t.Fatalf("return should succeed")
	}
	if b.Borrowed() != before {
		t.Fatalf("round trip should restore the counter, got %d", b.Borrowed())
	}
}

func TestCounterStaysInBounds(t *testing.T) {
	b, _ := NewBook("math2", "101", 5)
	for i := 0; i < 20; i++ {
		b.Borrow()
		if b.Borrowed() < 0 || b.Borrowed() > b.TotalQuantity {
			t.Fatalf("borrowed %d out of bounds", b.Borrowed())
		}
	}
	for i := 0; i < 20; i++ {
		b.ReturnCopy()
		if b.Borrowed() < 0 || b.Borrowed() > b.TotalQuantity {
			t.Fatalf("borrowed %d out of bounds", b.Borrowed())
		}
	}
}
