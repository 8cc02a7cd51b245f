package booking

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidSlot   = errors.New("time is not in the slot catalog")
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrNoteTooLong   = errors.New("note exceeds maximum length")
)

const (
	// DateLayout is the only accepted lesson-date format.
	DateLayout = "2006-01-02"

	MaxNoteLength = 500
)

// Date is a calendar day in the tutor's timezone, stored as YYYY-MM-DD.
type Date struct {
	value string
}

func NewDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	// time.Parse normalizes overflow ("2025-02-30" parses to March); reject it.
	if t.Format(DateLayout) != s {
		return Date{}, ErrInvalidDate
	}
	return Date{value: s}, nil
}

func (d Date) String() string {
	return d.value
}

func (d Date) Time() time.Time {
	t, _ := time.Parse(DateLayout, d.value)
	return t
}

// Note is the student's optional free-text annotation.
type Note struct {
	value string
}

func NewNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	// The limit is in characters, not bytes.
	if utf8.RuneCountInString(s) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: s}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
