package session

import (
	"encoding/json"
	"sync"

	"github.com/moneywise/client-go/internal/model"
)

// Persisted entry keys. These two entries are the whole session contract:
// refresh token and expiry from the login payload are surfaced to the
// caller but never persisted.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Store is the sole writer of persisted session state. Reads and writes are
// serialized with a mutex; a concurrent login racing a 401-triggered
// invalidation resolves as last writer wins.
type Store struct {
	mu      sync.Mutex
	storage Storage
	expired chan struct{}
}

func NewStore(storage Storage) *Store {
	return &Store{
		storage: storage,
		expired: make(chan struct{}, 1),
	}
}

// SaveLogin persists the access token and user synchronously. On error
// nothing is considered written and prior state is untouched.
func (s *Store) SaveLogin(token string, user *model.User) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(keyToken, token); err != nil {
		return err
	}
	return s.storage.Set(keyUser, string(encoded))
}

// Token returns the persisted access token, empty when anonymous.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok, err := s.storage.Get(keyToken)
	if err != nil || !ok {
		return ""
	}
	return token
}

// CurrentUser returns the persisted user record, or nil when absent or
// unparsable. It never fails.
func (s *Store) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.storage.Get(keyUser)
	if err != nil || !ok {
		return nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// Authenticated reports whether a token is currently persisted.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// Clear removes both persisted entries. Logout completes locally without
// any server call.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.storage.Delete(keyToken)
	_ = s.storage.Delete(keyUser)
}

// Invalidate clears the session and signals Expired. Wired as the API
// client's unauthorized hook so that a 401 from any call ends the session
// exactly like an explicit logout, while routing stays with the front-end.
func (s *Store) Invalidate() {
	s.Clear()
	select {
	case s.expired <- struct{}{}:
	default:
	}
}

// Expired delivers a coalesced signal each time the session is invalidated
// by the transport layer. Front-end controllers consume it to move their UI
// back to the login state.
func (s *Store) Expired() <-chan struct{} {
	return s.expired
}

// Close releases the underlying storage.
func (s *Store) Close() error {
	return s.storage.Close()
}
