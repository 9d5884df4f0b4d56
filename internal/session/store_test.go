package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneywise/client-go/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:        "u1",
		Email:     "a@b.com",
		FirstName: "A",
		LastName:  "B",
		Currency:  "USD",
	}
}

func TestStoreLifecycle(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	assert.Empty(t, store.Token())
	assert.Nil(t, store.CurrentUser())
	assert.False(t, store.Authenticated())

	require.NoError(t, store.SaveLogin("T1", testUser()))

	assert.Equal(t, "T1", store.Token())
	assert.True(t, store.Authenticated())
	user := store.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "a@b.com", user.Email)

	store.Clear()
	assert.Empty(t, store.Token())
	assert.Nil(t, store.CurrentUser())
}

func TestCurrentUserUnparsableYieldsNil(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(keyUser, "{not json"))
	require.NoError(t, storage.Set(keyToken, "T1"))

	store := NewStore(storage)
	assert.Nil(t, store.CurrentUser(), "corrupt user record must read as anonymous, not panic")
	assert.Equal(t, "T1", store.Token())
}

func TestInvalidateClearsAndSignals(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	require.NoError(t, store.SaveLogin("T1", testUser()))

	store.Invalidate()

	assert.Empty(t, store.Token())
	assert.Nil(t, store.CurrentUser())
	select {
	case <-store.Expired():
	default:
		t.Fatal("expected an expiry signal")
	}

	// Repeated invalidations coalesce instead of blocking.
	store.Invalidate()
	store.Invalidate()
	select {
	case <-store.Expired():
	default:
		t.Fatal("expected a coalesced expiry signal")
	}
}

func TestSQLiteStoragePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.db")

	storage, err := OpenSQLite(path)
	require.NoError(t, err)
	store := NewStore(storage)
	require.NoError(t, store.SaveLogin("T1", testUser()))
	require.NoError(t, store.Close())

	storage, err = OpenSQLite(path)
	require.NoError(t, err)
	reopened := NewStore(storage)
	defer reopened.Close()

	assert.Equal(t, "T1", reopened.Token())
	user := reopened.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
}

func TestSQLiteStorageOverwriteAndDelete(t *testing.T) {
	storage, err := OpenSQLite(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer storage.Close()

	require.NoError(t, storage.Set("token", "old"))
	require.NoError(t, storage.Set("token", "new"))

	value, ok, err := storage.Get("token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", value)

	require.NoError(t, storage.Delete("token"))
	_, ok, err = storage.Get("token")
	require.NoError(t, err)
	assert.False(t, ok)
}
