package library

// The factory collaborators construct entities on behalf of the library.
// They exist so tests can substitute canned entities via mocks.

// BookFactory makes catalog entries.
type BookFactory interface {
	MakeBook(author, title, callNumber string, id int) *Book
}

// PatronFactory makes patron records.
type PatronFactory interface {
	MakePatron(lastName, firstName, email, phone string, id int) *Patron
}

// LoanFactory makes pending loans. A nil book or patron is rejected.
type LoanFactory interface {
	MakeLoan(book *Book, patron *Patron) (*Loan, error)
}

// BookHelper is the default BookFactory.
type BookHelper struct{}

func (BookHelper) MakeBook(author, title, callNumber string, id int) *Book {
	return NewBook(author, title, callNumber, id)
}

// PatronHelper is the default PatronFactory.
type PatronHelper struct{}

func (PatronHelper) MakePatron(lastName, firstName, email, phone string, id int) *Patron {
	return NewPatron(lastName, firstName, email, phone, id)
}

// LoanHelper is the default LoanFactory.
type LoanHelper struct{}

func (LoanHelper) MakeLoan(book *Book, patron *Patron) (*Loan, error) {
	return NewLoan(book, patron)
}
