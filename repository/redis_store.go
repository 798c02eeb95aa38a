package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hecs-calculator/domain"
)

const storeKeyPrefix = "hecs:"

// RedisStore keeps each document as JSON under hecs:<collection>:<id> and
// indexes ids per collection in a sorted set scored by creation time.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func indexKey(collection string) string {
	return storeKeyPrefix + collection
}

func documentKey(collection, id string) string {
	return storeKeyPrefix + collection + ":" + id
}

func (r *RedisStore) saveDocument(
	ctx context.Context,
	collection, id string,
	createdAt time.Time,
	doc any,
) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s document: %w", collection, err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, documentKey(collection, id), payload, 0)
	pipe.ZAdd(ctx, indexKey(collection), redis.Z{
		Score:  float64(createdAt.UnixMilli()),
		Member: id,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("saving %s document: %w", collection, err)
	}
	return nil
}

func (r *RedisStore) SaveCalculation(ctx context.Context, record domain.CalculationRecord) error {
	return r.saveDocument(ctx, CollectionCalculations, record.ID, record.CreatedAt, record)
}

func (r *RedisStore) SaveTaxCalculation(ctx context.Context, calc domain.TaxCalculation) error {
	return r.saveDocument(ctx, CollectionTaxCalculations, calc.ID, calc.CreatedAt, calc)
}

func (r *RedisStore) SaveFeedback(ctx context.Context, fb domain.Feedback) error {
	return r.saveDocument(ctx, CollectionFeedback, fb.ID, fb.CreatedAt, fb)
}

func (r *RedisStore) RecentCalculations(ctx context.Context, limit int) ([]domain.CalculationRecord, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	ids, err := r.client.ZRevRange(ctx, indexKey(CollectionCalculations), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("listing calculations: %w", err)
	}
	if len(ids) == 0 {
		return []domain.CalculationRecord{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = documentKey(CollectionCalculations, id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("loading calculations: %w", err)
	}

	records := make([]domain.CalculationRecord, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// indexed but the document is gone
			continue
		}
		var record domain.CalculationRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("decoding calculation %s: %w", ids[i], err)
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *RedisStore) Count(ctx context.Context, collection string) (int64, error) {
	if !validCollection(collection) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	return r.client.ZCard(ctx, indexKey(collection)).Result()
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
