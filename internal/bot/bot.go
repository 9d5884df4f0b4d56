// Package bot is the Telegram front-end. It plays the role of the page
// layer: every view re-fetches from the API, every failure degrades to a
// chat message, and a session invalidated by the transport resets the chat
// back to the login prompt.
package bot

import (
	"encoding/json"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/moneywise/client-go/internal/service"
	"github.com/moneywise/client-go/internal/session"
)

// chatState is the per-chat UI state machine.
type chatState struct {
	Awaiting           string // "login", "register", "amount", "new_category"
	SelectedCategoryID string
	CategoryType       string // "income" or "expense"
}

type Bot struct {
	api     *tgbotapi.BotAPI
	auth    *session.Manager
	store   *session.Store
	tracker *service.Tracker
	log     *logrus.Logger

	mu       sync.Mutex
	states   map[int64]*chatState
	lastChat int64
}

func New(token string, auth *session.Manager, store *session.Store, tracker *service.Tracker, log *logrus.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		auth:    auth,
		store:   store,
		tracker: tracker,
		log:     log,
		states:  make(map[int64]*chatState),
	}, nil
}

// Start runs the long-polling loop until the updates channel closes. A
// second goroutine watches for transport-triggered session invalidation.
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	go b.watchSession()

	updates := b.api.GetUpdatesChan(u)
	for update := range updates {
		b.handleUpdate(update)
	}

	return nil
}

// HandleWebhook processes a single webhook-delivered update.
func (b *Bot) HandleWebhook(body []byte) error {
	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		return err
	}
	b.handleUpdate(update)
	return nil
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message == nil && update.CallbackQuery == nil {
		return
	}

	var chatID int64
	switch {
	case update.Message != nil:
		chatID = update.Message.Chat.ID
	default:
		chatID = update.CallbackQuery.Message.Chat.ID
	}
	b.rememberChat(chatID)

	if update.Message != nil && update.Message.IsCommand() {
		b.handleCommand(update.Message)
		return
	}
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
		return
	}
	b.handleMessage(update.Message)
}

// watchSession consumes the store's expiry signal and moves the chat back
// to the login prompt. Routing policy lives here, not in the HTTP layer.
func (b *Bot) watchSession() {
	for range b.store.Expired() {
		b.log.Warn("session invalidated by server")
		chatID := b.currentChat()
		if chatID == 0 {
			continue
		}
		b.resetState(chatID)
		b.send(tgbotapi.NewMessage(chatID, "Your session has expired. Use /login to sign in again."))
	}
}

func (b *Bot) rememberChat(chatID int64) {
	b.mu.Lock()
	b.lastChat = chatID
	b.mu.Unlock()
}

func (b *Bot) currentChat() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastChat
}

func (b *Bot) state(chatID int64) (*chatState, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	state, ok := b.states[chatID]
	return state, ok
}

func (b *Bot) setState(chatID int64, state *chatState) {
	b.mu.Lock()
	b.states[chatID] = state
	b.mu.Unlock()
}

func (b *Bot) resetState(chatID int64) {
	b.mu.Lock()
	delete(b.states, chatID)
	b.mu.Unlock()
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.log.WithError(err).Error("send telegram message")
	}
}

func (b *Bot) sendError(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, "❌ "+text))
}
