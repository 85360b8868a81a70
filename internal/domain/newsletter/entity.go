package newsletter

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidEmail = errors.New("invalid email format")

// Same syntax rule as the reservation form enforces.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

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

// Subscriber is a newsletter list entry. Name is optional; email is
// unique at the store level.
type Subscriber struct {
	id        uuid.UUID
	name      *string
	email     Email
	createdAt time.Time
}

func NewSubscriber(name *string, email Email) *Subscriber {
	var trimmed *string
	if name != nil {
		if v := strings.TrimSpace(*name); v != "" {
			trimmed = &v
		}
	}

	return &Subscriber{
		id:    uuid.New(),
		name:  trimmed,
		email: email,
	}
}

func ReconstructSubscriber(id uuid.UUID, name *string, email Email, createdAt time.Time) *Subscriber {
	return &Subscriber{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
	}
}

func (s *Subscriber) ID() uuid.UUID        { return s.id }
func (s *Subscriber) Name() *string        { return s.name }
func (s *Subscriber) Email() Email         { return s.email }
func (s *Subscriber) CreatedAt() time.Time { return s.createdAt }
