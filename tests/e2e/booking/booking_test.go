//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"cafe-fausse/internal/handler/dto/response"
	"cafe-fausse/tests/common/builder"
	"cafe-fausse/tests/common/httptest"
	"cafe-fausse/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	newsletterURL   = "/api/newsletter"
	overviewURL     = "/api/admin/overview"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// =============================================================================
// TestCreateReservation - Reservation API tests
// =============================================================================

func (s *BookingSuite) TestCreateReservation() {
	s.Run("Normal case: reservation is created and persisted", func() {
		t := s.T()

		body := builder.NewReservationBuilder().WithPhone("+1 555 0100").BuildRequestBody()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, "")
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.ReservationCreatedResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, "Reservation created.", created.Message)
		require.GreaterOrEqual(t, created.TableNumber, 1)
		require.LessOrEqual(t, created.TableNumber, 30)

		var count int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM reservations WHERE email = $1", "ana@example.com").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("Duplicate: same email and slot is rejected with 409", func() {
		t := s.T()

		body := builder.NewReservationBuilder().BuildRequestBody()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, "")
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, "")
		require.Equal(t, http.StatusConflict, w.Code)
		require.Contains(t, w.Body.String(), "A reservation already exists for this email and time slot.")
	})

	s.Run("Validation: bad input is rejected with 400", func() {
		t := s.T()

		body := builder.NewReservationBuilder().WithEmail("bad-email").BuildRequestBody()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Invalid email address.")
	})

	s.Run("Opt-in: reservation subscribes the guest to the newsletter", func() {
		t := s.T()

		body := builder.NewReservationBuilder().WithNewsletterOptIn().BuildRequestBody()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, "")
		require.Equal(t, http.StatusCreated, w.Code)

		var count int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM newsletter_subscribers WHERE email = $1", "ana@example.com").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})
}

// =============================================================================
// TestConcurrentBooking - capacity under a parallel burst
// =============================================================================

func (s *BookingSuite) TestConcurrentBooking() {
	s.Run("Burst: exactly 30 of 35 parallel requests succeed", func() {
		t := s.T()

		const requests = 35
		codes := make([]int, requests)
		tables := make([]int, requests)

		var wg sync.WaitGroup
		for i := range requests {
			wg.Add(1)
			go func() {
				defer wg.Done()
				body := builder.NewReservationBuilder().
					WithEmail(fmt.Sprintf("guest%d@example.com", i)).
					BuildRequestBody()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, "")
				codes[i] = w.Code

				if w.Code == http.StatusCreated {
					var created response.ReservationCreatedResponse
					httptest.DecodeResponseBody(t, w.Body, &created)
					tables[i] = created.TableNumber
				}
			}()
		}
		wg.Wait()

		var succeeded, full int
		seen := make(map[int]struct{})
		for i, code := range codes {
			switch code {
			case http.StatusCreated:
				succeeded++
				_, taken := seen[tables[i]]
				require.False(t, taken, "table %d assigned twice", tables[i])
				seen[tables[i]] = struct{}{}
			case http.StatusConflict:
				full++
			default:
				t.Fatalf("unexpected status %d for request %d", code, i)
			}
		}

		require.Equal(t, 30, succeeded)
		require.Equal(t, 5, full)
	})
}

// =============================================================================
// TestNewsletter - signup API tests
// =============================================================================

func (s *BookingSuite) TestNewsletter() {
	s.Run("Normal case: signup then idempotent repeat", func() {
		t := s.T()

		body := map[string]any{"name": "Ana Gomez", "email": "ana@example.com"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, newsletterURL, body, "")
		require.Equal(t, http.StatusCreated, w.Code)
		require.Contains(t, w.Body.String(), "Subscribed successfully.")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, newsletterURL, body, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Already subscribed.")

		var count int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM newsletter_subscribers").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("Validation: invalid email is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, newsletterURL,
			map[string]any{"email": "nope"}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestAdminOverview - admin report tests
// =============================================================================

func (s *BookingSuite) TestAdminOverview() {
	s.Run("Auth: requests without the key are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, overviewURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, overviewURL, nil, "wrong-key")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Content: reservations sorted by slot, subscribers newest first", func() {
		t := s.T()

		for _, slot := range []string{"2030-12-24T21:00", "2030-12-24T19:00"} {
			body := builder.NewReservationBuilder().WithTimeSlot(slot).BuildRequestBody()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, "")
			require.Equal(t, http.StatusCreated, w.Code)
		}

		for _, email := range []string{"first@example.com", "second@example.com"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, newsletterURL,
				map[string]any{"email": email}, "")
			require.Equal(t, http.StatusCreated, w.Code)
			time.Sleep(10 * time.Millisecond) // distinct created_at for a stable order
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, overviewURL, nil, s.Config.Admin.Key)
		require.Equal(t, http.StatusOK, w.Code)

		var overview response.OverviewResponse
		httptest.DecodeResponseBody(t, w.Body, &overview)

		require.Len(t, overview.Reservations, 2)
		require.Equal(t, "2030-12-24T19:00:00Z", overview.Reservations[0].TimeSlot)
		require.Equal(t, "2030-12-24T21:00:00Z", overview.Reservations[1].TimeSlot)

		require.Len(t, overview.Subscribers, 2)
		require.Equal(t, "second@example.com", overview.Subscribers[0].Email)
		require.Equal(t, "first@example.com", overview.Subscribers[1].Email)
	})
}
