package storage

import (
	"context"

	"dexseed/internal/model"
)

// Store is the token and pair persistence used by the seeders.
type Store interface {
	InsertTokens(ctx context.Context, tokens []model.Token) error
	InsertPairs(ctx context.Context, pairs []model.Pair) error
	// FindTokens returns tokens by role, projected to the fields pairs need.
	FindTokens(ctx context.Context, quote bool) ([]model.Token, error)
	Close(ctx context.Context) error
}
