package library

import (
	"sort"

	"github.com/pkg/errors"
)

// BorrowingState is a patron's eligibility flag. It is derived by the
// library's policy checks, never set by the patron itself.
type BorrowingState string

const (
	CanBorrow  BorrowingState = "CAN_BORROW"
	Restricted BorrowingState = "RESTRICTED"
)

// Patron is a registered member. The loans map holds only the loans the
// patron currently has out, keyed by loan id.
type Patron struct {
	id        int
	lastName  string
	firstName string
	email     string
	phone     string
	loans     map[int]*Loan
	fines     float64
	state     BorrowingState
}

// NewPatron returns a patron with no loans, no fines, and borrowing allowed.
func NewPatron(lastName, firstName, email, phone string, id int) *Patron {
	return &Patron{
		id:        id,
		lastName:  lastName,
		firstName: firstName,
		email:     email,
		phone:     phone,
		loans:     make(map[int]*Loan),
		state:     CanBorrow,
	}
}

func (p *Patron) ID() int               { return p.id }
func (p *Patron) LastName() string      { return p.lastName }
func (p *Patron) FirstName() string     { return p.firstName }
func (p *Patron) Email() string         { return p.email }
func (p *Patron) Phone() string         { return p.phone }
func (p *Patron) FinesPayable() float64 { return p.fines }

func (p *Patron) State() BorrowingState { return p.state }
func (p *Patron) IsRestricted() bool    { return p.state == Restricted }

// NumberOfCurrentLoans counts the loans the patron holds right now.
func (p *Patron) NumberOfCurrentLoans() int {
	return len(p.loans)
}

// Loans returns a snapshot of the held loans, ordered by loan id. Mutating
// the slice does not affect the patron.
func (p *Patron) Loans() []*Loan {
	out := make([]*Loan, 0, len(p.loans))
	for _, l := range p.loans {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// HasOverDueLoans reports whether any held loan is overdue. Every loan is
// asked, there is no early return on the first hit.
func (p *Patron) HasOverDueLoans() bool {
	overdue := false
	for _, l := range p.loans {
		if l.IsOverDue() {
			overdue = true
		}
	}
	return overdue
}

// TakeOutLoan registers a committed loan with the patron. The loan must be
// current, the patron must not be restricted, and the loan id must not
// already be held.
func (p *Patron) TakeOutLoan(loan *Loan) error {
	if loan == nil {
		return errors.Wrapf(ErrInvalidArgument, "patron %d: take out loan: loan is nil", p.id)
	}
	if p.state == Restricted {
		return errors.Wrapf(ErrPolicyViolation, "patron %d: take out loan %d: borrowing restricted", p.id, loan.ID())
	}
	if _, held := p.loans[loan.ID()]; held {
		return errors.Wrapf(ErrPolicyViolation, "patron %d: loan %d already held", p.id, loan.ID())
	}
	if !loan.IsCurrent() {
		return errors.Wrapf(ErrInvalidState, "patron %d: take out loan %d: loan is %s", p.id, loan.ID(), loan.State())
	}
	p.loans[loan.ID()] = loan
	return nil
}

// DischargeLoan removes a held loan from the patron's record.
func (p *Patron) DischargeLoan(loan *Loan) error {
	if loan == nil {
		return errors.Wrapf(ErrInvalidArgument, "patron %d: discharge loan: loan is nil", p.id)
	}
	if _, held := p.loans[loan.ID()]; !held {
		return errors.Wrapf(ErrInvalidState, "patron %d: discharge loan %d: not held", p.id, loan.ID())
	}
	delete(p.loans, loan.ID())
	return nil
}

// IncurFine adds amount to the fines payable.
func (p *Patron) IncurFine(amount float64) error {
	if amount < 0 {
		return errors.Wrapf(ErrInvalidArgument, "patron %d: incur fine: negative amount %.2f", p.id, amount)
	}
	p.fines += amount
	return nil
}

// PayFine reduces the fines payable by up to amount and returns any
// overpayment as change.
func (p *Patron) PayFine(amount float64) (float64, error) {
	if amount < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "patron %d: pay fine: negative amount %.2f", p.id, amount)
	}
	change := 0.0
	if amount > p.fines {
		change = amount - p.fines
		p.fines = 0
	} else {
		p.fines -= amount
	}
	return change, nil
}

// RestrictBorrowing and AllowBorrowing set the eligibility flag directly.
// Policy lives in the library, which calls these after re-evaluating.
func (p *Patron) RestrictBorrowing() { p.state = Restricted }
func (p *Patron) AllowBorrowing()    { p.state = CanBorrow }
