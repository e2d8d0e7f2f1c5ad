package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"dexseed/internal/artifacts"
	"dexseed/internal/config"
	"dexseed/internal/model"
	"dexseed/internal/storage"
)

// maxDecimals is the largest value an ERC20 uint8 decimals() can return.
const maxDecimals = 255

// DecimalsSource reports a token's on-chain decimals.
type DecimalsSource interface {
	TokenDecimals(ctx context.Context, token common.Address) (uint8, error)
}

// TokenConfig holds runtime settings for the token seeder.
type TokenConfig struct {
	Network       config.Network
	IncludeQuotes bool
	DryRun        bool
	Dump          string
	Now           func() time.Time
	Rand          *rand.Rand
}

// Result summarises one seeding run.
type Result struct {
	Built    int
	Inserted int
}

// TokenSeeder writes the configured tokens of one network to the store.
type TokenSeeder struct {
	cfg      TokenConfig
	store    storage.Store
	resolver *artifacts.Resolver
	verifier DecimalsSource
	stamp    *stamper
	logger   *zap.Logger
}

// NewTokenSeeder builds a TokenSeeder. resolver and verifier may be nil.
func NewTokenSeeder(cfg TokenConfig, store storage.Store, resolver *artifacts.Resolver, verifier DecimalsSource, logger *zap.Logger) *TokenSeeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenSeeder{
		cfg:      cfg,
		store:    store,
		resolver: resolver,
		verifier: verifier,
		stamp:    newStamper(cfg.Now, cfg.Rand),
		logger:   logger,
	}
}

// Run builds the token records and inserts them in one batch.
func (s *TokenSeeder) Run(ctx context.Context) (Result, error) {
	if s.store == nil && !s.cfg.DryRun {
		return Result{}, Wrap(KindConfig, "seed tokens", fmt.Errorf("store is nil"))
	}

	tokens, err := BuildTokens(s.cfg.Network, s.resolver, s.cfg.IncludeQuotes, s.stamp.next)
	if err != nil {
		return Result{}, err
	}
	result := Result{Built: len(tokens)}

	if s.verifier != nil {
		if err := VerifyDecimals(ctx, s.verifier, tokens); err != nil {
			return result, err
		}
		s.logger.Info("decimals verified", zap.Int("tokens", len(tokens)))
	}

	for _, token := range tokens {
		s.logger.Debug("token",
			zap.String("symbol", token.Symbol),
			zap.String("address", token.ContractAddress),
			zap.Int("decimals", token.Decimals),
			zap.Bool("quote", token.Quote),
		)
	}

	if s.cfg.Dump != "" {
		if err := storage.NewJsonlStorage(s.cfg.Dump, false).PutTokens(tokens); err != nil {
			return result, Wrap(KindInsert, "dump tokens", err)
		}
	}

	if s.cfg.DryRun {
		s.logger.Info("dry run, skipping insert", zap.Int("tokens", len(tokens)))
		return result, nil
	}

	if err := s.store.InsertTokens(ctx, tokens); err != nil {
		return result, Wrap(KindInsert, "insert tokens", err)
	}
	result.Inserted = len(tokens)

	s.logger.Info("tokens inserted", zap.Int("count", result.Inserted), zap.String("network", s.cfg.Network.Name))
	return result, nil
}

// BuildTokens returns one record per base symbol, in configured order, plus
// the quote symbols when includeQuotes is set.
func BuildTokens(network config.Network, resolver *artifacts.Resolver, includeQuotes bool, stamp func() time.Time) ([]model.Token, error) {
	size := len(network.BaseTokens)
	if includeQuotes {
		size += len(network.QuoteTokens)
	}
	tokens := make([]model.Token, 0, size)

	for _, symbol := range network.BaseTokens {
		token, err := buildToken(network, resolver, symbol, false)
		if err != nil {
			return nil, err
		}
		token.CreatedAt = stamp()
		tokens = append(tokens, token)
	}

	if !includeQuotes {
		return tokens, nil
	}

	for _, symbol := range network.QuoteTokens {
		token, err := buildToken(network, resolver, symbol, true)
		if err != nil {
			return nil, err
		}
		token.CreatedAt = stamp()
		tokens = append(tokens, token)
	}

	return tokens, nil
}

func buildToken(network config.Network, resolver *artifacts.Resolver, symbol string, quote bool) (model.Token, error) {
	const op = "build tokens"

	spec, ok := network.Token(symbol)
	if !ok {
		return model.Token{}, Wrap(KindConfig, op, fmt.Errorf("token %s missing from %s token table", symbol, network.Name))
	}

	if spec.Decimals < 0 || spec.Decimals > maxDecimals {
		return model.Token{}, Wrap(KindConfig, op, fmt.Errorf("token %s decimals %d outside 0..%d", symbol, spec.Decimals, maxDecimals))
	}

	raw := spec.Address
	if raw == "" && resolver.Enabled() {
		addr, err := resolver.Address(symbol, network.ID)
		if err != nil {
			return model.Token{}, Wrap(KindConfig, op, err)
		}
		raw = addr
	}
	if raw == "" {
		return model.Token{}, Wrap(KindConfig, op, fmt.Errorf("no contract address for %s on %s", symbol, network.Name))
	}

	address, err := ChecksumAddress(raw)
	if err != nil {
		return model.Token{}, Wrap(KindAddress, op, fmt.Errorf("%s: %w", symbol, err))
	}

	token := model.Token{
		Symbol:          symbol,
		ContractAddress: address,
		Decimals:        spec.Decimals,
		Quote:           quote,
	}
	if quote {
		if spec.MakeFee == nil || spec.TakeFee == nil {
			return model.Token{}, Wrap(KindConfig, op, fmt.Errorf("quote token %s requires make-fee and take-fee", symbol))
		}
		token.MakeFee = spec.MakeFee
		token.TakeFee = spec.TakeFee
	}
	return token, nil
}

// VerifyDecimals checks each token's decimals against the chain.
func VerifyDecimals(ctx context.Context, source DecimalsSource, tokens []model.Token) error {
	const op = "verify decimals"
	for _, token := range tokens {
		onChain, err := source.TokenDecimals(ctx, common.HexToAddress(token.ContractAddress))
		if err != nil {
			return Wrap(KindVerify, op, fmt.Errorf("%s: %w", token.Symbol, err))
		}
		if int(onChain) != token.Decimals {
			return Wrap(KindVerify, op, fmt.Errorf("%s: configured decimals %d, chain reports %d", token.Symbol, token.Decimals, onChain))
		}
	}
	return nil
}
