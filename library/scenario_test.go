package library_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"circulation/library"
)

// fakeClock is a settable calendar for end-to-end scenarios. Advancing it
// stands in for days passing between sessions.
type fakeClock struct {
	today time.Time
}

func (c *fakeClock) Today() time.Time { return c.today }

func (c *fakeClock) DueDate(loanPeriodDays int) time.Time {
	return c.today.AddDate(0, 0, loanPeriodDays)
}

func (c *fakeClock) DaysOverdue(due time.Time) int {
	return int(c.today.Sub(due).Hours() / 24)
}

func (c *fakeClock) advance(days int) {
	c.today = c.today.AddDate(0, 0, days)
}

func TestLoanLimitBoundaryScenario(t *testing.T) {
	// With a loan limit of 3, the policy check alone never blocks the
	// patron at the limit: 3 > 3 is false. The pending-loan ceiling is
	// enforced by the caller (the borrowing UI), not by the library.
	clock := &fakeClock{today: commitDay}
	lib := newLibrary(clock)
	patron := lib.AddPatron("Mustermann", "Max", "max.mustermann@example.com", "198765432")

	commitLoan(t, lib, addBook(lib, 1), patron)
	commitLoan(t, lib, addBook(lib, 2), patron)
	assert.Equal(t, 2, patron.NumberOfCurrentLoans())
	assert.True(t, lib.PatronCanBorrow(patron))

	third, err := lib.IssueLoan(addBook(lib, 3), patron)
	assert.NoError(t, err)
	assert.NoError(t, lib.CommitLoan(third))
	assert.Equal(t, 3, patron.NumberOfCurrentLoans())
	assert.True(t, lib.PatronCanBorrow(patron))
	assert.True(t, lib.PatronWillReachLoanMax(patron, 0))

	// A 4th commit still goes through the policy check; afterwards the
	// patron is over the limit and restricted.
	fourth, err := lib.IssueLoan(addBook(lib, 4), patron)
	assert.NoError(t, err)
	assert.NoError(t, lib.CommitLoan(fourth))
	assert.Equal(t, 4, patron.NumberOfCurrentLoans())
	assert.False(t, lib.PatronCanBorrow(patron))
	assert.Equal(t, library.Restricted, patron.State())
}

func TestOverdueSweepScenario(t *testing.T) {
	clock := &fakeClock{today: commitDay}
	lib := newLibrary(clock)
	book := addBook(lib, 1)
	patron := lib.AddPatron("Mustermann", "Max", "max.mustermann@example.com", "198765432")

	loan := commitLoan(t, lib, book, patron)
	assert.Equal(t, commitDay.AddDate(0, 0, 14), loan.DueDate())

	clock.advance(15)
	lib.CheckCurrentLoansOverDue()

	assert.True(t, loan.IsOverDue())
	assert.True(t, patron.HasOverDueLoans())
	assert.False(t, lib.PatronCanBorrow(patron))
	assert.Equal(t, library.Restricted, patron.State())
}

func TestDamagedReturnAndRepairScenario(t *testing.T) {
	clock := &fakeClock{today: commitDay}
	lib := newLibrary(clock)
	book := addBook(lib, 1)
	patron := lib.AddPatron("Mustermann", "Max", "max.mustermann@example.com", "198765432")

	loan := commitLoan(t, lib, book, patron)

	// Returned 2 days late and damaged: overdue fine plus damage fee.
	clock.advance(16)
	lib.CheckCurrentLoansOverDue()
	assert.True(t, loan.IsOverDue())

	assert.NoError(t, lib.DischargeLoan(loan, true))
	wantFine := 2*library.DefaultPolicy().FinePerDay + library.DefaultPolicy().DamageFee
	assert.Equal(t, wantFine, patron.FinesPayable())

	// The damaged book is off the shelf until repaired.
	assert.True(t, book.IsDamaged())
	assert.True(t, errors.Is(book.BorrowFromLibrary(), library.ErrInvalidState))

	assert.NoError(t, lib.RepairBook(book))
	assert.True(t, book.IsAvailable())

	// Settle the fines, then the book circulates again.
	change, err := lib.PayFine(patron, wantFine)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, change)
	assert.Equal(t, library.CanBorrow, patron.State())

	next, err := lib.IssueLoan(book, patron)
	assert.NoError(t, err)
	assert.NoError(t, lib.CommitLoan(next))
	assert.True(t, book.IsOnLoan())

	assert.True(t, errors.Is(lib.RepairBook(book), library.ErrInvalidState))
}

func TestReturnedBookCirculatesAgain(t *testing.T) {
	clock := &fakeClock{today: commitDay}
	lib := newLibrary(clock)
	book := addBook(lib, 1)
	first := lib.AddPatron("Mustermann", "Max", "max.mustermann@example.com", "198765432")
	second := lib.AddPatron("Doe", "Jane", "jane.doe@example.com", "12345")

	loan := commitLoan(t, lib, book, first)
	assert.NoError(t, lib.DischargeLoan(loan, false))

	next := commitLoan(t, lib, book, second)

	assert.Equal(t, 2, next.ID())
	assert.Same(t, next, lib.CurrentLoanForBook(book.ID()))
	assert.Equal(t, 0, first.NumberOfCurrentLoans())
	assert.Equal(t, 1, second.NumberOfCurrentLoans())
}
