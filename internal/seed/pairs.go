package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"dexseed/internal/model"
	"dexseed/internal/storage"
)

// PairConfig holds runtime settings for the pair seeder.
type PairConfig struct {
	DryRun bool
	Dump   string
	Now    func() time.Time
	Rand   *rand.Rand
}

// PairSeeder derives pairs from the seeded tokens and writes them to the store.
type PairSeeder struct {
	cfg    PairConfig
	store  storage.Store
	stamp  *stamper
	logger *zap.Logger
}

func NewPairSeeder(cfg PairConfig, store storage.Store, logger *zap.Logger) *PairSeeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PairSeeder{
		cfg:    cfg,
		store:  store,
		stamp:  newStamper(cfg.Now, cfg.Rand),
		logger: logger,
	}
}

// Run reads base and quote tokens, builds their cross product, and inserts it
// in one batch. Existing pairs are not checked, so reruns duplicate them.
func (s *PairSeeder) Run(ctx context.Context) (Result, error) {
	if s.store == nil {
		return Result{}, Wrap(KindConfig, "seed pairs", fmt.Errorf("store is nil"))
	}

	bases, err := s.store.FindTokens(ctx, false)
	if err != nil {
		return Result{}, Wrap(KindQuery, "find base tokens", err)
	}
	quotes, err := s.store.FindTokens(ctx, true)
	if err != nil {
		return Result{}, Wrap(KindQuery, "find quote tokens", err)
	}

	pairs, err := BuildPairs(bases, quotes, s.stamp.next)
	if err != nil {
		return Result{}, err
	}
	result := Result{Built: len(pairs)}

	s.logger.Info("pairs built",
		zap.Int("base_tokens", len(bases)),
		zap.Int("quote_tokens", len(quotes)),
		zap.Int("pairs", len(pairs)),
	)
	for _, pair := range pairs {
		s.logger.Info("pair",
			zap.String("pair", pair.Key()),
			zap.String("base_address", pair.BaseTokenAddress),
			zap.Int("base_decimals", pair.BaseTokenDecimals),
			zap.String("quote_address", pair.QuoteTokenAddress),
			zap.Int("quote_decimals", pair.QuoteTokenDecimals),
			zap.String("price_multiplier", pair.PriceMultiplier),
			zap.Bool("active", pair.Active),
			zap.Float64p("make_fee", pair.MakeFee),
			zap.Float64p("take_fee", pair.TakeFee),
			zap.Time("created_at", pair.CreatedAt),
		)
	}

	if s.cfg.Dump != "" {
		if err := storage.NewJsonlStorage(s.cfg.Dump, false).PutPairs(pairs); err != nil {
			return result, Wrap(KindInsert, "dump pairs", err)
		}
	}

	if len(pairs) == 0 {
		s.logger.Info("nothing to insert")
		return result, nil
	}
	if s.cfg.DryRun {
		s.logger.Info("dry run, skipping insert", zap.Int("pairs", len(pairs)))
		return result, nil
	}

	if err := s.store.InsertPairs(ctx, pairs); err != nil {
		return result, Wrap(KindInsert, "insert pairs", err)
	}
	result.Inserted = len(pairs)

	s.logger.Info("pairs inserted", zap.Int("count", result.Inserted))
	return result, nil
}

// BuildPairs returns quote x base pairs, quotes in the outer loop.
func BuildPairs(bases, quotes []model.Token, stamp func() time.Time) ([]model.Pair, error) {
	const op = "build pairs"

	pairs := make([]model.Pair, 0, len(bases)*len(quotes))
	for _, quote := range quotes {
		quoteAddress, err := ChecksumAddress(quote.ContractAddress)
		if err != nil {
			return nil, Wrap(KindAddress, op, fmt.Errorf("quote %s: %w", quote.Symbol, err))
		}

		for _, base := range bases {
			baseAddress, err := ChecksumAddress(base.ContractAddress)
			if err != nil {
				return nil, Wrap(KindAddress, op, fmt.Errorf("base %s: %w", base.Symbol, err))
			}

			pairs = append(pairs, model.Pair{
				BaseTokenSymbol:    base.Symbol,
				BaseTokenAddress:   baseAddress,
				BaseTokenDecimals:  base.Decimals,
				QuoteTokenSymbol:   quote.Symbol,
				QuoteTokenAddress:  quoteAddress,
				QuoteTokenDecimals: quote.Decimals,
				PriceMultiplier:    PriceMultiplier(base.Decimals, quote.Decimals),
				Active:             true,
				MakeFee:            quote.MakeFee,
				TakeFee:            quote.TakeFee,
				CreatedAt:          stamp(),
			})
		}
	}
	return pairs, nil
}
