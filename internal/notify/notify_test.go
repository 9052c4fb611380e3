package notify

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travelbooking/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func testBooking() model.Booking {
	from := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	return model.Booking{
		ID: 3, Country: "Spain", City: "Barcelona", Hotel: "Hyatt Regency",
		FromDate: model.NewDateTime(from), ToDate: model.NewDateTime(from.AddDate(0, 0, 2)),
	}
}

func TestTelegramNotifier_BookingConfirmed(t *testing.T) {
	bot := &fakeSender{}
	n := newTelegramNotifier(bot, 1001)

	require.NoError(t, n.BookingConfirmed(7, testBooking()))
	require.Len(t, bot.sent, 1)

	msg := bot.sent[0]
	assert.Equal(t, int64(1001), msg.ChatID)
	assert.Equal(t, "Markdown", msg.ParseMode)
	assert.Contains(t, msg.Text, "#3")
	assert.Contains(t, msg.Text, "User: 7")
	assert.Contains(t, msg.Text, "Hyatt Regency, Barcelona, Spain")
	assert.Contains(t, msg.Text, "2026-05-10 - 2026-05-12")
}

func TestTelegramNotifier_BookingCancelled(t *testing.T) {
	bot := &fakeSender{}
	n := newTelegramNotifier(bot, 1001)

	require.NoError(t, n.BookingCancelled(7, testBooking()))
	require.Len(t, bot.sent, 1)
	assert.Contains(t, bot.sent[0].Text, "Booking cancelled")
}

func TestTelegramNotifier_SendError(t *testing.T) {
	cause := errors.New("telegram is down")
	n := newTelegramNotifier(&fakeSender{err: cause}, 1001)

	assert.ErrorIs(t, n.BookingConfirmed(7, testBooking()), cause)
}

// fakeTelegram отвечает на getMe сразу, а на остальные методы - после задержки delay.
func fakeTelegram(t *testing.T, delay time.Duration) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/getMe") {
			io.WriteString(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Bookings","username":"bookings_bot"}}`)
			return
		}
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
		io.WriteString(w, `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":1001,"type":"group"}}}`)
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/bot%s/%s"
}

func TestTelegramNotifier_SendsThroughBotAPI(t *testing.T) {
	n, err := NewTelegramNotifierAt(fakeTelegram(t, 0), "token", 1001, time.Second)
	require.NoError(t, err)

	assert.NoError(t, n.BookingConfirmed(7, testBooking()))
}

func TestTelegramNotifier_SlowAPITimesOut(t *testing.T) {
	n, err := NewTelegramNotifierAt(fakeTelegram(t, 2*time.Second), "token", 1001, 50*time.Millisecond)
	require.NoError(t, err)

	start := time.Now()
	err = n.BookingConfirmed(7, testBooking())
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
