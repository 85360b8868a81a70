package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrNameTooShort     = errors.New("name must be at least 2 characters")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrGuestsOutOfRange = errors.New("guests must be between 1 and 10")
	ErrGuestsMissing    = errors.New("guests is required")
	ErrUnparsableSlot   = errors.New("time slot is not a valid date-time")
	ErrSlotInPast       = errors.New("time slot must be in the future")
)

const (
	MinGuests = 1
	MaxGuests = 10

	minNameLength = 2
)

// Mirrors the address syntax enforced on the signup form: exactly one "@",
// non-whitespace local and domain parts, at least one dot in the domain.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type GuestName struct {
	value string
}

func NewGuestName(s string) (GuestName, error) {
	s = strings.TrimSpace(s)
	if len(s) < minNameLength {
		return GuestName{}, ErrNameTooShort
	}
	return GuestName{value: s}, nil
}

func (n GuestName) Value() string {
	return n.value
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Truncated identifier safe to put in logs.
func (e Email) Redacted() string {
	at := strings.IndexByte(e.value, '@')
	if at <= 1 {
		return "***"
	}
	return e.value[:2] + "***" + e.value[at:]
}

type GuestCount struct {
	value int
}

func NewGuestCount(n *int) (GuestCount, error) {
	if n == nil {
		return GuestCount{}, ErrGuestsMissing
	}
	if *n < MinGuests || *n > MaxGuests {
		return GuestCount{}, ErrGuestsOutOfRange
	}
	return GuestCount{value: *n}, nil
}

func (g GuestCount) Value() int {
	return g.value
}

// TimeSlot is the date-time instant a party is seated at, held at minute
// precision in UTC.
type TimeSlot struct {
	value time.Time
}

// Accepted layouts, most specific first. The reservation form submits
// "2006-01-02T15:04"; API clients may send RFC 3339.
var slotLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func ParseTimeSlot(s string) (TimeSlot, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeSlot{}, ErrUnparsableSlot
	}
	for _, layout := range slotLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return NewTimeSlot(t), nil
		}
	}
	return TimeSlot{}, ErrUnparsableSlot
}

func NewTimeSlot(t time.Time) TimeSlot {
	return TimeSlot{value: t.UTC().Truncate(time.Minute)}
}

func (ts TimeSlot) Time() time.Time {
	return ts.value
}

func (ts TimeSlot) String() string {
	return ts.value.Format(time.RFC3339)
}

// ValidateFutureAt rejects slots at or before the given instant.
func (ts TimeSlot) ValidateFutureAt(now time.Time) error {
	if !ts.value.After(now) {
		return ErrSlotInPast
	}
	return nil
}

type Phone struct {
	value string
}

func NewPhone(s *string) Phone {
	if s == nil {
		return Phone{}
	}
	return Phone{value: strings.TrimSpace(*s)}
}

func (p Phone) IsEmpty() bool {
	return p.value == ""
}

func (p Phone) Value() *string {
	if p.value == "" {
		return nil
	}
	v := p.value
	return &v
}
