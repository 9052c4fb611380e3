package service

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travelbooking/internal/apperror"
	"travelbooking/internal/model"
	"travelbooking/internal/notify"
	"travelbooking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	confirmed []model.Booking
	cancelled []model.Booking
	err       error
}

func (n *recordingNotifier) BookingConfirmed(_ int, b model.Booking) error {
	n.confirmed = append(n.confirmed, b)
	return n.err
}

func (n *recordingNotifier) BookingCancelled(_ int, b model.Booking) error {
	n.cancelled = append(n.cancelled, b)
	return n.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBookingService(n *recordingNotifier) *BookingService {
	destinations := NewDestinationService(repository.NewDestinationRepository(repository.DefaultDestinations()))
	return NewBookingService(repository.NewBookingRepository(), destinations, n, discardLogger())
}

func booking(country, city, hotel string) model.Booking {
	from := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return model.Booking{Country: country, City: city, Hotel: hotel, FromDate: model.NewDateTime(from), ToDate: model.NewDateTime(from.AddDate(0, 0, 5))}
}

func account(username, password string) model.Account {
	return model.Account{
		Name:     model.Name{Given: "John", Family: "Smith"},
		Username: username,
		Password: &password,
	}
}

func assertAppError(t *testing.T, err error, status int, message string) {
	t.Helper()
	appErr, ok := apperror.From(err)
	require.True(t, ok, "expected apperror, got %v", err)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, message, appErr.Message)
}

func TestAuthService_CheckCredentials(t *testing.T) {
	repo := repository.NewAccountRepository()
	repo.Register(account("alice", "wonderland"))
	auth := NewAuthService(repo)

	acc, err := auth.CheckCredentials("alice", "wonderland")
	require.NoError(t, err)
	assert.Equal(t, "alice", acc.Username)
	assert.Nil(t, acc.Password)

	_, err = auth.CheckCredentials("alice", "wrong")
	assert.ErrorIs(t, err, ErrBadPassword)
	assertAppError(t, err, http.StatusUnauthorized, "Bad password")

	_, err = auth.CheckCredentials("bob", "wonderland")
	assert.ErrorIs(t, err, ErrUsernameNotFound)
	assertAppError(t, err, http.StatusUnauthorized, "Username cannot be found")
}

func TestUserService_RegisterAndGet(t *testing.T) {
	repo := repository.NewAccountRepository()
	users := NewUserService(repo, discardLogger())

	for i, name := range []string{"a", "b", "c"} {
		in := account(name, "pw")
		spoofed := 99
		in.ID = &spoofed
		assert.Equal(t, i, users.Register(in))
	}

	acc, err := users.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "b", acc.Username)
	require.NotNil(t, acc.ID)
	assert.Equal(t, 1, *acc.ID)
	assert.Nil(t, acc.Password)

	stored, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.True(t, stored.PasswordMatches("pw"), "stored password must survive redaction")

	_, err = users.GetByID(3)
	assertAppError(t, err, http.StatusNotFound, "User having ID = 3 cannot be found")
}

func TestBookingService_CreateBooking(t *testing.T) {
	n := &recordingNotifier{}
	svc := newBookingService(n)

	got, err := svc.CreateBooking(0, booking("Hungary", "Budapest", "Hilton"))
	require.NoError(t, err)
	assert.Equal(t, "Hungary", got.Country)
	assert.Equal(t, "Budapest", got.City)
	assert.Equal(t, "Hilton", got.Hotel)
	require.Len(t, n.confirmed, 1)
	assert.Equal(t, got, n.confirmed[0])

	other, err := svc.CreateBooking(1, booking("Spain", "Barcelona", "Hilton"))
	require.NoError(t, err)
	assert.NotEqual(t, got.ID, other.ID)
}

func TestBookingService_CreateBookingValidation(t *testing.T) {
	cases := []struct {
		country, city, hotel string
		message              string
	}{
		{"Atlantis", "Budapest", "Hilton", "Invalid country"},
		{"Hungary", "Paris", "Hilton", "Invalid city"},
		{"Hungary", "Budapest", "Motel 6", "Invalid hotel"},
	}
	for _, c := range cases {
		t.Run(c.message, func(t *testing.T) {
			n := &recordingNotifier{}
			svc := newBookingService(n)

			_, err := svc.CreateBooking(0, booking(c.country, c.city, c.hotel))
			assertAppError(t, err, http.StatusBadRequest, c.message)
			assert.Empty(t, n.confirmed)

			_, err = svc.ListBookings(0)
			assertAppError(t, err, http.StatusNotFound, "User having ID = 0 has no bookings")
		})
	}
}

func TestBookingService_DeleteOnlyBookingThenList(t *testing.T) {
	n := &recordingNotifier{}
	svc := newBookingService(n)

	b, err := svc.CreateBooking(4, booking("Germany", "Berlin", "Park Inn"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(4, b.ID))
	require.Len(t, n.cancelled, 1)
	assert.Equal(t, b, n.cancelled[0])

	_, err = svc.ListBookings(4)
	assertAppError(t, err, http.StatusNotFound, "User having ID = 4 has no bookings")

	_, err = svc.GetBooking(4, b.ID)
	assert.Equal(t, http.StatusNotFound, mustAppError(t, err).Status)

	err = svc.DeleteBooking(4, b.ID)
	assert.Equal(t, http.StatusNotFound, mustAppError(t, err).Status)
}

func TestBookingService_IDsNeverReused(t *testing.T) {
	svc := newBookingService(&recordingNotifier{})

	first, err := svc.CreateBooking(1, booking("Ireland", "Belfast", "The Merchant"))
	require.NoError(t, err)
	require.NoError(t, svc.DeleteBooking(1, first.ID))
	second, err := svc.CreateBooking(1, booking("Ireland", "Belfast", "The Merchant"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	list, err := svc.ListBookings(1)
	require.NoError(t, err)
	assert.Equal(t, map[int]model.Booking{second.ID: second}, list)
}

func TestBookingService_NotifierFailureDoesNotFailRequest(t *testing.T) {
	svc := newBookingService(&recordingNotifier{err: errors.New("offline")})

	b, err := svc.CreateBooking(1, booking("France", "Bordeaux", "Hotel Des Quinconces"))
	require.NoError(t, err)
	assert.NoError(t, svc.DeleteBooking(1, b.ID))
}

func mustAppError(t *testing.T, err error) *apperror.Error {
	t.Helper()
	appErr, ok := apperror.From(err)
	require.True(t, ok, "expected apperror, got %v", err)
	return appErr
}

func TestBookingService_SlowTelegramIsBoundedByTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/getMe") {
			io.WriteString(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Bookings","username":"bookings_bot"}}`)
			return
		}
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	tg, err := notify.NewTelegramNotifierAt(srv.URL+"/bot%s/%s", "token", 1001, 50*time.Millisecond)
	require.NoError(t, err)
	destinations := NewDestinationService(repository.NewDestinationRepository(repository.DefaultDestinations()))
	svc := NewBookingService(repository.NewBookingRepository(), destinations, tg, discardLogger())

	start := time.Now()
	b, err := svc.CreateBooking(1, booking("Hungary", "Budapest", "Hilton"))
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)

	start = time.Now()
	require.NoError(t, svc.DeleteBooking(1, b.ID))
	assert.Less(t, time.Since(start), time.Second)
}

func TestUserService_RegisterLogsAccountCount(t *testing.T) {
	var buf bytes.Buffer
	users := NewUserService(repository.NewAccountRepository(), slog.New(slog.NewTextHandler(&buf, nil)))

	users.Register(account("a", "pw"))
	users.Register(account("b", "pw"))

	assert.Contains(t, buf.String(), `account="John Smith (1)"`)
	assert.Contains(t, buf.String(), "total_accounts=2")
}
