package storage

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/payscope/internal/client/models"
	"github.com/dmitrijs2005/payscope/internal/common"
	"github.com/dmitrijs2005/payscope/internal/dbx"
)

// TokenStore persists the access/refresh token pair.
//
// Tokens returns an empty pair (not an error) when nothing is stored.
type TokenStore interface {
	Tokens(ctx context.Context) (models.TokenPair, error)
	SetTokens(ctx context.Context, pair models.TokenPair) error
	Clear(ctx context.Context) error
}

// SQLiteTokenStore keeps the pair in the metadata table.
type SQLiteTokenStore struct {
	db *sql.DB
}

func NewSQLiteTokenStore(db *sql.DB) *SQLiteTokenStore {
	return &SQLiteTokenStore{db: db}
}

func (s *SQLiteTokenStore) Tokens(ctx context.Context) (models.TokenPair, error) {
	repo := NewMetadataRepository(s.db)

	access, err := repo.Get(ctx, common.AccessTokenKey)
	if err != nil {
		return models.TokenPair{}, err
	}
	refresh, err := repo.Get(ctx, common.RefreshTokenKey)
	if err != nil {
		return models.TokenPair{}, err
	}
	return models.TokenPair{AccessToken: string(access), RefreshToken: string(refresh)}, nil
}

// SetTokens writes both tokens atomically. An empty refresh token removes
// the stored one.
func (s *SQLiteTokenStore) SetTokens(ctx context.Context, pair models.TokenPair) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewMetadataRepository(tx)
		if err := repo.Set(ctx, common.AccessTokenKey, []byte(pair.AccessToken)); err != nil {
			return err
		}
		if pair.RefreshToken == "" {
			return repo.Delete(ctx, common.RefreshTokenKey)
		}
		return repo.Set(ctx, common.RefreshTokenKey, []byte(pair.RefreshToken))
	})
}

func (s *SQLiteTokenStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return NewMetadataRepository(tx).Delete(ctx, common.AccessTokenKey, common.RefreshTokenKey)
	})
}

// MemoryTokenStore is a TokenStore that lives in process memory.
type MemoryTokenStore struct {
	mu   sync.RWMutex
	pair models.TokenPair
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Tokens(context.Context) (models.TokenPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pair, nil
}

func (s *MemoryTokenStore) SetTokens(_ context.Context, pair models.TokenPair) error {
	s.mu.Lock()
	s.pair = pair
	s.mu.Unlock()
	return nil
}

func (s *MemoryTokenStore) Clear(context.Context) error {
	s.mu.Lock()
	s.pair = models.TokenPair{}
	s.mu.Unlock()
	return nil
}
