// Package notify отправляет уведомления о бронированиях во внешние каналы.
package notify

import (
	"fmt"
	"net/http"
	"time"

	"travelbooking/internal/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier получает события жизненного цикла бронирований.
type Notifier interface {
	BookingConfirmed(userID int, booking model.Booking) error
	BookingCancelled(userID int, booking model.Booking) error
}

// Nop ничего не отправляет. Используется, когда уведомления не настроены.
type Nop struct{}

func (Nop) BookingConfirmed(int, model.Booking) error { return nil }
func (Nop) BookingCancelled(int, model.Booking) error { return nil }

// sender - часть tgbotapi.BotAPI, которая нужна для отправки сообщений.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier публикует уведомления в заданный чат Telegram.
type TelegramNotifier struct {
	bot    sender
	chatID int64
}

// NewTelegramNotifier подключается к Bot API с указанным токеном.
// Каждый запрос к Telegram ограничен таймаутом timeout.
func NewTelegramNotifier(token string, chatID int64, timeout time.Duration) (*TelegramNotifier, error) {
	return NewTelegramNotifierAt(tgbotapi.APIEndpoint, token, chatID, timeout)
}

// NewTelegramNotifierAt подключается к Bot API по адресу endpoint (формат tgbotapi.APIEndpoint).
func NewTelegramNotifierAt(endpoint, token string, chatID int64, timeout time.Duration) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации бота: %w", err)
	}
	return newTelegramNotifier(bot, chatID), nil
}

func newTelegramNotifier(bot sender, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

// BookingConfirmed сообщает о новом бронировании.
func (n *TelegramNotifier) BookingConfirmed(userID int, booking model.Booking) error {
	text := fmt.Sprintf(
		"*Booking confirmed* #%d\nUser: %d\n%s, %s, %s\n%s - %s",
		booking.ID, userID, booking.Hotel, booking.City, booking.Country,
		booking.FromDate.Format("2006-01-02"), booking.ToDate.Format("2006-01-02"),
	)
	return n.send(text)
}

// BookingCancelled сообщает об удалении бронирования.
func (n *TelegramNotifier) BookingCancelled(userID int, booking model.Booking) error {
	text := fmt.Sprintf("*Booking cancelled* #%d\nUser: %d\n%s, %s, %s",
		booking.ID, userID, booking.Hotel, booking.City, booking.Country)
	return n.send(text)
}

func (n *TelegramNotifier) send(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("не удалось отправить уведомление: %w", err)
	}
	return nil
}
