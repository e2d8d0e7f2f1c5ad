package seed

import (
	"context"

	"dexseed/internal/model"
)

type fakeStore struct {
	tokens     []model.Token
	pairs      []model.Pair
	tokenBatch int
	pairBatch  int
	findErr    error
	insertErr  error
	closed     bool
}

func (f *fakeStore) InsertTokens(_ context.Context, tokens []model.Token) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.tokenBatch++
	f.tokens = append(f.tokens, tokens...)
	return nil
}

func (f *fakeStore) InsertPairs(_ context.Context, pairs []model.Pair) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.pairBatch++
	f.pairs = append(f.pairs, pairs...)
	return nil
}

func (f *fakeStore) FindTokens(_ context.Context, quote bool) ([]model.Token, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]model.Token, 0)
	for _, token := range f.tokens {
		if token.Quote == quote {
			out = append(out, token)
		}
	}
	return out, nil
}

func (f *fakeStore) Close(_ context.Context) error {
	f.closed = true
	return nil
}
