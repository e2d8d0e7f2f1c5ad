package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dexseed/internal/model"
)

//go:embed schema.sql
var schemaSQL string

// Store provides Postgres persistence for tokens and pairs.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close(_ context.Context) error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// EnsureSchema creates the tokens and pairs tables if missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schemaSQL)
	return err
}

// InsertTokens inserts tokens in one batch. Rows are never deduplicated.
func (s *Store) InsertTokens(ctx context.Context, tokens []model.Token) error {
	if len(tokens) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, token := range tokens {
		batch.Queue(`
			INSERT INTO tokens (
				symbol, contract_address, decimals, quote, make_fee, take_fee, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
			token.Symbol,
			token.ContractAddress,
			token.Decimals,
			token.Quote,
			token.MakeFee,
			token.TakeFee,
			token.CreatedAt,
		)
	}
	return s.sendBatch(ctx, batch, len(tokens))
}

// InsertPairs inserts pairs in one batch. Rows are never deduplicated.
func (s *Store) InsertPairs(ctx context.Context, pairs []model.Pair) error {
	if len(pairs) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range pairs {
		batch.Queue(`
			INSERT INTO pairs (
				base_token_symbol, base_token_address, base_token_decimals,
				quote_token_symbol, quote_token_address, quote_token_decimals,
				price_multiplier, active, make_fee, take_fee, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		`,
			p.BaseTokenSymbol,
			p.BaseTokenAddress,
			p.BaseTokenDecimals,
			p.QuoteTokenSymbol,
			p.QuoteTokenAddress,
			p.QuoteTokenDecimals,
			p.PriceMultiplier,
			p.Active,
			p.MakeFee,
			p.TakeFee,
			p.CreatedAt,
		)
	}
	return s.sendBatch(ctx, batch, len(pairs))
}

// FindTokens returns tokens with the given quote flag.
func (s *Store) FindTokens(ctx context.Context, quote bool) ([]model.Token, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT symbol, contract_address, decimals, make_fee, take_fee
		FROM tokens
		WHERE quote = $1
		ORDER BY id
	`, quote)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := make([]model.Token, 0)
	for rows.Next() {
		token := model.Token{Quote: quote}
		var makeFee, takeFee *float64
		if err := rows.Scan(&token.Symbol, &token.ContractAddress, &token.Decimals, &makeFee, &takeFee); err != nil {
			return nil, err
		}
		if quote {
			token.MakeFee = makeFee
			token.TakeFee = takeFee
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}

func (s *Store) sendBatch(ctx context.Context, batch *pgx.Batch, n int) error {
	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < n; i++ {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
