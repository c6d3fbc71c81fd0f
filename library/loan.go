package library

import (
	"time"

	"github.com/pkg/errors"
)

// LoanState is the lifecycle position of a borrowing transaction.
type LoanState string

const (
	LoanPending    LoanState = "PENDING"
	LoanCurrent    LoanState = "CURRENT"
	LoanOverDue    LoanState = "OVER_DUE"
	LoanDischarged LoanState = "DISCHARGED"
)

// Loan links one book to one patron for a single borrowing transaction.
// A loan starts PENDING with no id; the id and due date arrive on commit.
type Loan struct {
	id      int
	book    *Book
	patron  *Patron
	dueDate time.Time
	state   LoanState
}

// NewLoan returns a PENDING loan for the given book and patron. Both
// references are required.
func NewLoan(book *Book, patron *Patron) (*Loan, error) {
	if book == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "new loan: book is nil")
	}
	if patron == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "new loan: patron is nil")
	}
	return &Loan{book: book, patron: patron, state: LoanPending}, nil
}

func (l *Loan) ID() int            { return l.id }
func (l *Loan) Book() *Book        { return l.book }
func (l *Loan) Patron() *Patron    { return l.patron }
func (l *Loan) DueDate() time.Time { return l.dueDate }
func (l *Loan) State() LoanState   { return l.state }

func (l *Loan) IsPending() bool    { return l.state == LoanPending }
func (l *Loan) IsCurrent() bool    { return l.state == LoanCurrent }
func (l *Loan) IsOverDue() bool    { return l.state == LoanOverDue }
func (l *Loan) IsDischarged() bool { return l.state == LoanDischarged }

// Commit moves the loan PENDING -> CURRENT, assigning its id and due date,
// then borrows the book and registers the loan with the patron. If either
// side effect fails the earlier ones are compensated, so a failed commit
// leaves loan, book, and patron exactly as they were.
func (l *Loan) Commit(id int, dueDate time.Time) error {
	if l.state != LoanPending {
		return errors.Wrapf(ErrInvalidState, "loan %d: commit: state is %s", l.id, l.state)
	}

	l.id = id
	l.dueDate = dueDate
	l.state = LoanCurrent

	if err := l.book.BorrowFromLibrary(); err != nil {
		l.rollbackCommit()
		return errors.Wrapf(err, "loan %d: commit", id)
	}

	if err := l.patron.TakeOutLoan(l); err != nil {
		_ = l.book.ReturnToLibrary(false)
		l.rollbackCommit()
		return errors.Wrapf(err, "loan %d: commit", id)
	}

	return nil
}

func (l *Loan) rollbackCommit() {
	l.id = 0
	l.dueDate = time.Time{}
	l.state = LoanPending
}

// CheckOverDue reports whether the loan is overdue as of currentDate,
// moving CURRENT -> OVER_DUE when the due date has passed. An already
// overdue loan stays overdue; pending and discharged loans never become
// overdue.
func (l *Loan) CheckOverDue(currentDate time.Time) bool {
	switch l.state {
	case LoanCurrent:
		if currentDate.After(l.dueDate) {
			l.state = LoanOverDue
			return true
		}
		return false
	case LoanOverDue:
		return true
	default:
		return false
	}
}

// Discharge ends the loan regardless of overdue status, returning the book
// to the shelf (damaged or not) and clearing the loan from the patron's
// record. Only a current or overdue loan can be discharged.
func (l *Loan) Discharge(isDamaged bool) error {
	if l.state != LoanCurrent && l.state != LoanOverDue {
		return errors.Wrapf(ErrInvalidState, "loan %d: discharge: state is %s", l.id, l.state)
	}

	if err := l.book.ReturnToLibrary(isDamaged); err != nil {
		return errors.Wrapf(err, "loan %d: discharge", l.id)
	}
	if err := l.patron.DischargeLoan(l); err != nil {
		return errors.Wrapf(err, "loan %d: discharge", l.id)
	}

	l.state = LoanDischarged
	return nil
}
