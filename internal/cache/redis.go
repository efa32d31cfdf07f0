package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
)

const (
	sliderKey  = "slider"
	catalogKey = "medicines"
)

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r *RedisCache) GetCart(ctx context.Context, buyerEmail string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := r.get(ctx, cartKey(buyerEmail), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RedisCache) SetCart(ctx context.Context, buyerEmail string, items []domain.CartItem) error {
	return r.set(ctx, cartKey(buyerEmail), items)
}

func (r *RedisCache) DeleteCart(ctx context.Context, buyerEmail string) error {
	return r.delete(ctx, cartKey(buyerEmail))
}

func (r *RedisCache) GetSlider(ctx context.Context) ([]domain.SliderItem, error) {
	var items []domain.SliderItem
	if err := r.get(ctx, sliderKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RedisCache) SetSlider(ctx context.Context, items []domain.SliderItem) error {
	return r.set(ctx, sliderKey, items)
}

func (r *RedisCache) DeleteSlider(ctx context.Context) error {
	return r.delete(ctx, sliderKey)
}

func (r *RedisCache) GetCatalog(ctx context.Context) ([]domain.Medicine, error) {
	var meds []domain.Medicine
	if err := r.get(ctx, catalogKey, &meds); err != nil {
		return nil, err
	}
	return meds, nil
}

func (r *RedisCache) SetCatalog(ctx context.Context, meds []domain.Medicine) error {
	return r.set(ctx, catalogKey, meds)
}

func (r *RedisCache) DeleteCatalog(ctx context.Context) error {
	return r.delete(ctx, catalogKey)
}

func (r *RedisCache) get(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal cached value failed: %w", err)
	}
	return nil
}

func (r *RedisCache) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cached value failed: %w", err)
	}

	// Jitter spreads expiry so hot keys don't all refill at once.
	jitter := time.Duration(rand.Intn(5)) * time.Minute
	if err := r.client.Set(ctx, key, data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCache) delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cartKey(buyerEmail string) string {
	return fmt.Sprintf("cart:%s", buyerEmail)
}
