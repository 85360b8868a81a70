//go:build unit

package booking_test

import (
	"testing"
	"time"

	"cafe-fausse/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid name", input: "Ana Gomez", want: "Ana Gomez"},
		{name: "two characters is the minimum", input: "Al", want: "Al"},
		{name: "surrounding whitespace is trimmed", input: "  Ana  ", want: "Ana"},
		{name: "single character", input: "A", errIs: booking.ErrNameTooShort},
		{name: "whitespace only", input: "   ", errIs: booking.ErrNameTooShort},
		{name: "empty", input: "", errIs: booking.ErrNameTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := booking.NewGuestName(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid email", input: "ana@example.com", want: "ana@example.com"},
		{name: "lowercased", input: "Ana@Example.COM", want: "ana@example.com"},
		{name: "trimmed", input: "  ana@example.com ", want: "ana@example.com"},
		{name: "missing at sign", input: "not-an-email", errIs: booking.ErrInvalidEmail},
		{name: "missing domain dot", input: "ana@example", errIs: booking.ErrInvalidEmail},
		{name: "whitespace inside", input: "ana @example.com", errIs: booking.ErrInvalidEmail},
		{name: "double at sign", input: "ana@@example.com", errIs: booking.ErrInvalidEmail},
		{name: "empty", input: "", errIs: booking.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := booking.NewEmail(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestEmailRedacted(t *testing.T) {
	email, err := booking.NewEmail("ana.gomez@example.com")
	require.NoError(t, err)

	redacted := email.Redacted()
	assert.Equal(t, "an***@example.com", redacted)
	assert.NotContains(t, redacted, "ana.gomez")
}

func TestNewGuestCount(t *testing.T) {
	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name  string
		input *int
		errIs error
	}{
		{name: "minimum", input: intPtr(1)},
		{name: "maximum", input: intPtr(10)},
		{name: "zero", input: intPtr(0), errIs: booking.ErrGuestsOutOfRange},
		{name: "negative", input: intPtr(-3), errIs: booking.ErrGuestsOutOfRange},
		{name: "above maximum", input: intPtr(11), errIs: booking.ErrGuestsOutOfRange},
		{name: "missing", input: nil, errIs: booking.ErrGuestsMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := booking.NewGuestCount(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, *tt.input, got.Value())
		})
	}
}

func TestParseTimeSlot(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		errIs error
	}{
		{
			name:  "form layout without seconds",
			input: "2030-12-24T19:00",
			want:  time.Date(2030, 12, 24, 19, 0, 0, 0, time.UTC),
		},
		{
			name:  "layout with seconds",
			input: "2030-12-24T19:00:30",
			want:  time.Date(2030, 12, 24, 19, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with offset normalized to utc",
			input: "2030-12-24T19:00:00+02:00",
			want:  time.Date(2030, 12, 24, 17, 0, 0, 0, time.UTC),
		},
		{name: "garbage", input: "not-a-date", errIs: booking.ErrUnparsableSlot},
		{name: "date only", input: "2030-12-24", errIs: booking.ErrUnparsableSlot},
		{name: "empty", input: "", errIs: booking.ErrUnparsableSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := booking.ParseTimeSlot(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Time().Equal(tt.want), "got %v, want %v", got.Time(), tt.want)
		})
	}
}

func TestTimeSlotValidateFutureAt(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("future slot is accepted", func(t *testing.T) {
		slot := booking.NewTimeSlot(now.Add(time.Hour))
		assert.NoError(t, slot.ValidateFutureAt(now))
	})

	t.Run("past slot is rejected", func(t *testing.T) {
		slot := booking.NewTimeSlot(now.Add(-time.Hour))
		assert.ErrorIs(t, slot.ValidateFutureAt(now), booking.ErrSlotInPast)
	})

	t.Run("slot equal to now is rejected", func(t *testing.T) {
		slot := booking.NewTimeSlot(now)
		assert.ErrorIs(t, slot.ValidateFutureAt(now), booking.ErrSlotInPast)
	})
}

func TestNewPhone(t *testing.T) {
	t.Run("nil yields empty phone", func(t *testing.T) {
		p := booking.NewPhone(nil)
		assert.True(t, p.IsEmpty())
		assert.Nil(t, p.Value())
	})

	t.Run("blank yields empty phone", func(t *testing.T) {
		blank := "   "
		p := booking.NewPhone(&blank)
		assert.True(t, p.IsEmpty())
		assert.Nil(t, p.Value())
	})

	t.Run("value is trimmed and kept", func(t *testing.T) {
		raw := " +1 555 0100 "
		p := booking.NewPhone(&raw)
		require.NotNil(t, p.Value())
		assert.Equal(t, "+1 555 0100", *p.Value())
	})
}
