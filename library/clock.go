package library

import "time"

// Clock supplies the library's notion of time. It is injected so overdue
// checks and fine calculations can be tested with a frozen or advanced date.
type Clock interface {
	// Today returns the current date.
	Today() time.Time
	// DueDate returns the date a loan committed today falls due.
	DueDate(loanPeriodDays int) time.Time
	// DaysOverdue returns the number of whole days between due and today.
	// Partial days truncate, so a loan less than 24 hours late counts as
	// zero days.
	DaysOverdue(due time.Time) int
}

type systemClock struct{}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Today() time.Time {
	return time.Now()
}

func (c systemClock) DueDate(loanPeriodDays int) time.Time {
	return c.Today().AddDate(0, 0, loanPeriodDays)
}

func (c systemClock) DaysOverdue(due time.Time) int {
	return int(c.Today().Sub(due).Hours() / 24)
}
