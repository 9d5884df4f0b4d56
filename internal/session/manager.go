package session

import (
	"context"

	"github.com/moneywise/client-go/internal/api"
	"github.com/moneywise/client-go/internal/model"
)

// Manager drives the auth lifecycle: anonymous → authenticating →
// authenticated, and back to anonymous on logout or invalidation. It is the
// only code path that turns a successful auth response into persisted
// state.
type Manager struct {
	client *api.Client
	store  *Store
}

func NewManager(client *api.Client, store *Store) *Manager {
	return &Manager{client: client, store: store}
}

// Login authenticates and persists the session before returning. On any
// failure no state is written.
func (m *Manager) Login(ctx context.Context, email, password string) (*model.User, error) {
	payload, err := m.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := m.store.SaveLogin(payload.AccessToken, &payload.User); err != nil {
		return nil, err
	}
	return &payload.User, nil
}

// Register creates an account and persists the session identically to
// Login. The account cannot log in again until the email is verified.
func (m *Manager) Register(ctx context.Context, params api.RegisterParams) (*model.User, error) {
	payload, err := m.client.Register(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := m.store.SaveLogin(payload.AccessToken, &payload.User); err != nil {
		return nil, err
	}
	return &payload.User, nil
}

// VerifyEmail redeems a verification token extracted from an emailed link.
func (m *Manager) VerifyEmail(ctx context.Context, token string) error {
	return m.client.VerifyEmail(ctx, token)
}

// Logout clears persisted state unconditionally; no server call is needed.
func (m *Manager) Logout() {
	m.store.Clear()
}

// CurrentUser is a pure read of the persisted user record.
func (m *Manager) CurrentUser() *model.User {
	return m.store.CurrentUser()
}

// Authenticated reports whether a session token is persisted.
func (m *Manager) Authenticated() bool {
	return m.store.Authenticated()
}
