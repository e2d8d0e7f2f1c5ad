package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dexseed/internal/model"
)

const (
	TokensCollection = "tokens"
	PairsCollection  = "pairs"
)

// Store provides MongoDB persistence for tokens and pairs.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewStore(ctx context.Context, uri, dbName string) (*Store, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo uri is required")
	}
	if dbName == "" {
		return nil, fmt.Errorf("db name is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// InsertTokens writes tokens in one unordered InsertMany.
func (s *Store) InsertTokens(ctx context.Context, tokens []model.Token) error {
	if len(tokens) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(tokens))
	for _, token := range tokens {
		docs = append(docs, token)
	}
	return s.insertMany(ctx, TokensCollection, docs)
}

// InsertPairs writes pairs in one unordered InsertMany.
func (s *Store) InsertPairs(ctx context.Context, pairs []model.Pair) error {
	if len(pairs) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(pairs))
	for _, pair := range pairs {
		docs = append(docs, pair)
	}
	return s.insertMany(ctx, PairsCollection, docs)
}

// FindTokens returns tokens with the given quote flag.
func (s *Store) FindTokens(ctx context.Context, quote bool) ([]model.Token, error) {
	opts := options.Find().SetProjection(tokenProjection(quote))
	cursor, err := s.db.Collection(TokensCollection).Find(ctx, tokenFilter(quote), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tokens := make([]model.Token, 0)
	if err := cursor.All(ctx, &tokens); err != nil {
		return nil, fmt.Errorf("decode tokens: %w", err)
	}
	return tokens, nil
}

func (s *Store) insertMany(ctx context.Context, collection string, docs []interface{}) error {
	_, err := s.db.Collection(collection).InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

func tokenFilter(quote bool) bson.D {
	return bson.D{{Key: "quote", Value: quote}}
}

func tokenProjection(quote bool) bson.D {
	projection := bson.D{
		{Key: "_id", Value: 0},
		{Key: "symbol", Value: 1},
		{Key: "contractAddress", Value: 1},
		{Key: "decimals", Value: 1},
		{Key: "quote", Value: 1},
	}
	if quote {
		projection = append(projection,
			bson.E{Key: "makeFee", Value: 1},
			bson.E{Key: "takeFee", Value: 1},
		)
	}
	return projection
}
