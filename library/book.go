package library

import "github.com/pkg/errors"

// BookState is the physical availability of a catalogued book.
type BookState string

const (
	BookAvailable BookState = "AVAILABLE"
	BookOnLoan    BookState = "ON_LOAN"
	BookDamaged   BookState = "DAMAGED"
)

// Book is a single physical copy in the catalog. Its state is mutated only
// through loan transitions and the repair workflow.
type Book struct {
	id         int
	author     string
	title      string
	callNumber string
	state      BookState
}

// NewBook returns an AVAILABLE book with the given catalog attributes.
func NewBook(author, title, callNumber string, id int) *Book {
	return &Book{
		id:         id,
		author:     author,
		title:      title,
		callNumber: callNumber,
		state:      BookAvailable,
	}
}

func (b *Book) ID() int            { return b.id }
func (b *Book) Author() string     { return b.author }
func (b *Book) Title() string      { return b.title }
func (b *Book) CallNumber() string { return b.callNumber }

func (b *Book) IsAvailable() bool { return b.state == BookAvailable }
func (b *Book) IsOnLoan() bool    { return b.state == BookOnLoan }
func (b *Book) IsDamaged() bool   { return b.state == BookDamaged }

// BorrowFromLibrary moves the book AVAILABLE -> ON_LOAN. A damaged or
// already lent book cannot be borrowed.
func (b *Book) BorrowFromLibrary() error {
	if b.state != BookAvailable {
		return errors.Wrapf(ErrInvalidState, "book %d: borrow: state is %s", b.id, b.state)
	}
	b.state = BookOnLoan
	return nil
}

// ReturnToLibrary ends the book's time on loan, moving it back to AVAILABLE
// or, when it comes back damaged, to DAMAGED.
func (b *Book) ReturnToLibrary(isDamaged bool) error {
	if b.state != BookOnLoan {
		return errors.Wrapf(ErrInvalidState, "book %d: return: state is %s", b.id, b.state)
	}
	if isDamaged {
		b.state = BookDamaged
	} else {
		b.state = BookAvailable
	}
	return nil
}

// Repair moves the book DAMAGED -> AVAILABLE. The library gates this on the
// book being registered as damaged; the book itself only checks its state.
func (b *Book) Repair() error {
	if b.state != BookDamaged {
		return errors.Wrapf(ErrInvalidState, "book %d: repair: state is %s", b.id, b.state)
	}
	b.state = BookAvailable
	return nil
}
