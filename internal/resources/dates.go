// Package resources maps stored records (with their eagerly loaded
// relations) onto the stable shapes the frontend consumes. Projections are
// pure: they only read what the caller already attached.
package resources

import "time"

const dateLayout = "2006-01-02"

// DateOnly renders a calendar date without a time component.
func DateOnly(t time.Time) string {
	return t.Format(dateLayout)
}

// DateOnlyPtr renders an optional calendar date, keeping null as null rather
// than an empty string.
func DateOnlyPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// DateOnlyToDisplay re-renders a YYYY-MM-DD value in the dashboard overview's
// "Jan 02, 2006" style.
func DateOnlyToDisplay(value string) (string, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return value, err
	}
	return t.Format("Jan 02, 2006"), nil
}
