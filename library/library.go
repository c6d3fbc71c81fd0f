package library

import (
	"sort"

	"github.com/pkg/errors"
)

// Policy holds the fixed lending rules. The zero value is not usable, start
// from DefaultPolicy.
type Policy struct {
	// LoanLimit is the number of simultaneous loans the lending checks
	// compare against.
	LoanLimit int
	// MaxFinesOwed is the fines balance at which borrowing is blocked.
	MaxFinesOwed float64
	// LoanPeriod is the length of a loan in days.
	LoanPeriod int
	// FinePerDay is charged for each whole day a discharged loan is
	// overdue.
	FinePerDay float64
	// DamageFee is charged when a book comes back damaged.
	DamageFee float64
}

// DefaultPolicy returns the standard lending rules.
func DefaultPolicy() Policy {
	return Policy{
		LoanLimit:    3,
		MaxFinesOwed: 10.0,
		LoanPeriod:   14,
		FinePerDay:   1.0,
		DamageFee:    5.0,
	}
}

// Library is the circulation aggregate: the sole owner of the book, patron,
// and loan registries and of the lending policy. It is not safe for
// concurrent use; callers needing that must add their own synchronization.
type Library struct {
	policy Policy
	clock  Clock

	bookFactory   BookFactory
	patronFactory PatronFactory
	loanFactory   LoanFactory

	nextBookID   int
	nextPatronID int
	nextLoanID   int

	catalog      map[int]*Book
	patrons      map[int]*Patron
	loans        map[int]*Loan
	currentLoans map[int]*Loan // keyed by book id
	damagedBooks map[int]*Book
}

// New returns an empty library. All collaborators are required.
func New(books BookFactory, patrons PatronFactory, loans LoanFactory, clock Clock, policy Policy) *Library {
	return &Library{
		policy:        policy,
		clock:         clock,
		bookFactory:   books,
		patronFactory: patrons,
		loanFactory:   loans,
		nextBookID:    1,
		nextPatronID:  1,
		nextLoanID:    1,
		catalog:       make(map[int]*Book),
		patrons:       make(map[int]*Patron),
		loans:         make(map[int]*Loan),
		currentLoans:  make(map[int]*Loan),
		damagedBooks:  make(map[int]*Book),
	}
}

// AddBook catalogs a new book under the next book id.
func (lib *Library) AddBook(author, title, callNumber string) *Book {
	id := lib.nextBookID
	lib.nextBookID++

	book := lib.bookFactory.MakeBook(author, title, callNumber, id)
	lib.catalog[id] = book
	return book
}

// AddPatron registers a new patron under the next patron id.
func (lib *Library) AddPatron(lastName, firstName, email, phone string) *Patron {
	id := lib.nextPatronID
	lib.nextPatronID++

	patron := lib.patronFactory.MakePatron(lastName, firstName, email, phone, id)
	lib.patrons[id] = patron
	return patron
}

// BookByID returns the catalogued book, or nil when the id is unknown.
func (lib *Library) BookByID(bookID int) *Book {
	return lib.catalog[bookID]
}

// PatronByID returns the registered patron, or nil when the id is unknown.
func (lib *Library) PatronByID(patronID int) *Patron {
	return lib.patrons[patronID]
}

// CurrentLoanForBook returns the active loan holding the book, or nil when
// the book is not out.
func (lib *Library) CurrentLoanForBook(bookID int) *Loan {
	return lib.currentLoans[bookID]
}

// Books returns a snapshot of the catalog ordered by book id.
func (lib *Library) Books() []*Book {
	out := make([]*Book, 0, len(lib.catalog))
	for _, b := range lib.catalog {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Patrons returns a snapshot of the patron registry ordered by patron id.
func (lib *Library) Patrons() []*Patron {
	out := make([]*Patron, 0, len(lib.patrons))
	for _, p := range lib.patrons {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// CurrentLoans returns a snapshot of the active loans ordered by loan id.
func (lib *Library) CurrentLoans() []*Loan {
	out := make([]*Loan, 0, len(lib.currentLoans))
	for _, l := range lib.currentLoans {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// AllLoans returns a snapshot of every loan ever committed, ordered by
// loan id.
func (lib *Library) AllLoans() []*Loan {
	out := make([]*Loan, 0, len(lib.loans))
	for _, l := range lib.loans {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// PatronWillReachLoanMax reports whether committing numberOfPendingLoans
// more loans would land the patron exactly on the loan limit. Note the
// exact-equality comparison: overshooting the limit in one step reports
// false. Kept as the policy has always behaved.
func (lib *Library) PatronWillReachLoanMax(patron *Patron, numberOfPendingLoans int) bool {
	return patron.NumberOfCurrentLoans()+numberOfPendingLoans == lib.policy.LoanLimit
}

// PatronCanBorrow reports whether lending policy allows the patron a new
// loan: not over the loan limit, fines below the cap, and nothing overdue.
// The loan count check is strictly greater-than, so a patron sitting
// exactly on the limit still passes. Kept as the policy has always behaved.
func (lib *Library) PatronCanBorrow(patron *Patron) bool {
	if patron.NumberOfCurrentLoans() > lib.policy.LoanLimit {
		return false
	}
	if patron.FinesPayable() >= lib.policy.MaxFinesOwed {
		return false
	}
	if patron.HasOverDueLoans() {
		return false
	}
	return true
}

func (lib *Library) setPatronBorrowingRestrictions(patron *Patron) {
	if !lib.PatronCanBorrow(patron) {
		patron.RestrictBorrowing()
	} else {
		patron.AllowBorrowing()
	}
}

// IssueLoan constructs a pending loan for the book and patron. Nothing is
// registered or mutated, so a caller can batch several pending loans and
// commit them one by one.
func (lib *Library) IssueLoan(book *Book, patron *Patron) (*Loan, error) {
	loan, err := lib.loanFactory.MakeLoan(book, patron)
	if err != nil {
		return nil, errors.Wrap(err, "issue loan")
	}
	return loan, nil
}

// CommitLoan assigns the next loan id and a due date, commits the loan
// (which borrows the book and registers the loan with the patron), records
// it in the loan registries, and re-evaluates the patron's restriction.
// A failed commit registers nothing.
func (lib *Library) CommitLoan(loan *Loan) error {
	if loan == nil {
		return errors.Wrap(ErrInvalidArgument, "commit loan: loan is nil")
	}

	dueDate := lib.clock.DueDate(lib.policy.LoanPeriod)
	loanID := lib.nextLoanID

	if err := loan.Commit(loanID, dueDate); err != nil {
		return errors.Wrap(err, "commit loan")
	}
	lib.nextLoanID++

	lib.loans[loanID] = loan
	lib.currentLoans[loan.Book().ID()] = loan

	lib.setPatronBorrowingRestrictions(loan.Patron())
	return nil
}

// OverDueFine returns the fine owed on the loan: whole days overdue times
// the daily rate, zero for a loan that is not overdue.
func (lib *Library) OverDueFine(loan *Loan) float64 {
	if !loan.IsOverDue() {
		return 0
	}
	days := lib.clock.DaysOverdue(loan.DueDate())
	return float64(days) * lib.policy.FinePerDay
}

// DischargeLoan returns the book on the loan. The patron incurs the overdue
// fine, plus the damage fee when the book comes back damaged, in which case
// the book is also registered as damaged. The loan leaves the current-loans
// registry and the patron's restriction is re-evaluated.
func (lib *Library) DischargeLoan(loan *Loan, isDamaged bool) error {
	if loan == nil {
		return errors.Wrap(ErrInvalidArgument, "discharge loan: loan is nil")
	}

	patron := loan.Patron()
	book := loan.Book()

	fine := lib.OverDueFine(loan)

	if err := loan.Discharge(isDamaged); err != nil {
		return errors.Wrap(err, "discharge loan")
	}

	if err := patron.IncurFine(fine); err != nil {
		return errors.Wrap(err, "discharge loan")
	}
	if isDamaged {
		if err := patron.IncurFine(lib.policy.DamageFee); err != nil {
			return errors.Wrap(err, "discharge loan")
		}
		lib.damagedBooks[book.ID()] = book
	}

	delete(lib.currentLoans, book.ID())
	lib.setPatronBorrowingRestrictions(patron)
	return nil
}

// CheckCurrentLoansOverDue sweeps every active loan against today's date.
// Each loan found overdue has its patron's restriction re-evaluated. This
// is the only bulk driver of overdue transitions; nothing runs it
// automatically.
func (lib *Library) CheckCurrentLoansOverDue() {
	today := lib.clock.Today()
	for _, loan := range lib.currentLoans {
		if loan.CheckOverDue(today) {
			lib.setPatronBorrowingRestrictions(loan.Patron())
		}
	}
}

// RepairBook repairs a book previously returned damaged, making it
// borrowable again. A book not registered as damaged cannot be repaired.
func (lib *Library) RepairBook(book *Book) error {
	if book == nil {
		return errors.Wrap(ErrInvalidArgument, "repair book: book is nil")
	}
	if _, damaged := lib.damagedBooks[book.ID()]; !damaged {
		return errors.Wrapf(ErrInvalidState, "repair book %d: not registered as damaged", book.ID())
	}
	if err := book.Repair(); err != nil {
		return errors.Wrap(err, "repair book")
	}
	delete(lib.damagedBooks, book.ID())
	return nil
}

// PayFine takes a payment against the patron's fines, returns any change,
// and re-evaluates the patron's restriction.
func (lib *Library) PayFine(patron *Patron, amount float64) (float64, error) {
	if patron == nil {
		return 0, errors.Wrap(ErrInvalidArgument, "pay fine: patron is nil")
	}
	change, err := patron.PayFine(amount)
	if err != nil {
		return 0, errors.Wrap(err, "pay fine")
	}
	lib.setPatronBorrowingRestrictions(patron)
	return change, nil
}
