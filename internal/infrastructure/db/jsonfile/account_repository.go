package jsonfile

import (
	"context"
	"sync"
	"time"

	"github.com/taskhive/taskhive/internal/core/domain"
)

type accountRecord struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AccountRepository is the default credential store: one JSON file keyed by
// username. Writers hold the exclusive lock across both the in-memory update
// and the file rewrite, so two concurrent creates of the same username can
// never both succeed.
type AccountRepository struct {
	path     string
	mu       sync.RWMutex
	accounts map[string]accountRecord
}

func NewAccountRepository(path string) (*AccountRepository, error) {
	r := &AccountRepository{
		path:     path,
		accounts: make(map[string]accountRecord),
	}
	if err := readFile(path, &r.accounts); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Username]; exists {
		return domain.ErrUserExists
	}

	r.accounts[account.Username] = accountRecord{
		Username:     account.Username,
		PasswordHash: account.PasswordHash,
		Role:         account.Role,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
	if err := r.persistLocked(); err != nil {
		delete(r.accounts, account.Username)
		return err
	}
	return nil
}

func (r *AccountRepository) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.accounts[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return recordToAccount(record), nil
}

func (r *AccountRepository) UpdatePassword(_ context.Context, username, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.accounts[username]
	if !ok {
		return domain.ErrUserNotFound
	}

	previous := record
	record.PasswordHash = passwordHash
	record.UpdatedAt = time.Now().UTC()
	r.accounts[username] = record

	if err := r.persistLocked(); err != nil {
		r.accounts[username] = previous
		return err
	}
	return nil
}

func (r *AccountRepository) CountByRole(_ context.Context, role string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, record := range r.accounts {
		if record.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *AccountRepository) Ping(context.Context) error {
	return pingDir(r.path)
}

func (r *AccountRepository) persistLocked() error {
	return writeFile(r.path, r.accounts, 0o600)
}

func recordToAccount(record accountRecord) *domain.Account {
	return &domain.Account{
		Username:     record.Username,
		PasswordHash: record.PasswordHash,
		Role:         record.Role,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}
