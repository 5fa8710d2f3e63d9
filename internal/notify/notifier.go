package notify

import (
	"fmt"
	"log"

	"intraday_bot/internal/modules/config"

	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Notifier interface {
	Send(msg string)
	Sendf(format string, args ...any)
}

// New: телеграм, если задан токен, иначе stdout-заглушка.
func New(cfg *config.Config) (Notifier, error) {
	if cfg.Telegram.Token == "" {
		return NewStdout(), nil
	}
	return NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
}

// Telegram — пассивный нотифайер: только исходящие сообщения о сделках.
type Telegram struct {
	bot    *tgbot.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	b, err := tgbot.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{
		bot:    b,
		chatID: chatID,
	}, nil
}

func (t *Telegram) Send(msg string) {
	if t == nil || t.bot == nil || t.chatID == 0 {
		return
	}
	_, _ = t.bot.Send(tgbot.NewMessage(t.chatID, msg))
}

func (t *Telegram) Sendf(format string, args ...any) { t.Send(fmt.Sprintf(format, args...)) }

// Stdout — заглушка, всё логирует.
type Stdout struct{}

func NewStdout() *Stdout { return &Stdout{} }

func (s *Stdout) Send(msg string) { log.Println(msg) }

func (s *Stdout) Sendf(format string, args ...any) { log.Printf(format, args...) }
