// Package greeting picks a time-of-day greeting and appends it to a page.
package greeting

import "time"

const (
	Morning   = "Good Morning"
	Afternoon = "Good Afternoon"
	Evening   = "Good Evening"
)

// ForHour maps an hour of the day to its greeting.
// [0,12) is morning, [12,20] afternoon and the rest of the day evening.
func ForHour(hour int) string {
	switch {
	case hour < 12:
		return Morning
	case hour <= 20:
		return Afternoon
	default:
		return Evening
	}
}

// Greeting returns the greeting for the wall-clock hour of now.
func Greeting(now time.Time) string { return ForHour(now.Hour()) }

// Page is anything a greeting can be appended to.
type Page interface {
	AppendParagraph(text string)
}

// Widget renders greetings onto a page using its own clock.
type Widget struct {
	clock func() time.Time
	page  Page
}

// NewWidget returns a widget writing to page. A nil clock means time.Now.
func NewWidget(page Page, clock func() time.Time) *Widget {
	if clock == nil {
		clock = time.Now
	}
	return &Widget{clock: clock, page: page}
}

// Render appends one paragraph with the current greeting and returns its text.
// Every call appends a new paragraph, even when the text is unchanged.
func (w *Widget) Render() string {
	text := Greeting(w.clock())
	w.page.AppendParagraph(text)
	return text
}

// Clock returns a clock reporting time in the named IANA zone.
// An empty name means the local zone.
func Clock(zone string) (func() time.Time, error) {
	if zone == "" {
		return time.Now, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	return func() time.Time { return time.Now().In(loc) }, nil
}
