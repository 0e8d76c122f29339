// Package session owns the admin credential: the single source of truth for
// "am I authenticated, and with what token". A Store is handed to the API
// client at construction time, so tests can inject isolated sessions.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/aaywp/portal/internal/client/storage"
	"github.com/aaywp/portal/internal/common"
	"github.com/aaywp/portal/internal/dbx"
)

// Store holds the bearer token. Token returns "" with a nil error when no
// credential is stored.
type Store interface {
	Token(ctx context.Context) (string, error)
	Subject(ctx context.Context) (string, error)
	Save(ctx context.Context, token, subject string) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the credential in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	token   string
	subject string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Token(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *MemoryStore) Subject(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.subject, nil
}

func (m *MemoryStore) Save(_ context.Context, token, subject string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.subject = token, subject
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.subject = "", ""
	return nil
}

// PersistentStore keeps the credential in the local SQLite slots table, under
// common.CredentialSlot.
type PersistentStore struct {
	db *sql.DB
}

func NewPersistentStore(db *sql.DB) *PersistentStore {
	return &PersistentStore{db: db}
}

func (p *PersistentStore) Token(ctx context.Context) (string, error) {
	return p.read(ctx, common.CredentialSlot)
}

func (p *PersistentStore) Subject(ctx context.Context) (string, error) {
	return p.read(ctx, common.CredentialSubjectSlot)
}

// Save writes token and subject in one transaction.
func (p *PersistentStore) Save(ctx context.Context, token, subject string) error {
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		slots := storage.NewSQLiteSlots(tx)
		if err := slots.Set(ctx, common.CredentialSlot, []byte(token)); err != nil {
			return err
		}
		return slots.Set(ctx, common.CredentialSubjectSlot, []byte(subject))
	})
}

func (p *PersistentStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		slots := storage.NewSQLiteSlots(tx)
		if err := slots.Delete(ctx, common.CredentialSlot); err != nil {
			return err
		}
		return slots.Delete(ctx, common.CredentialSubjectSlot)
	})
}

func (p *PersistentStore) read(ctx context.Context, key string) (string, error) {
	v, err := storage.NewSQLiteSlots(p.db).Get(ctx, key)
	if errors.Is(err, common.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}
	return string(v), nil
}
