package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockHashClient struct {
	data       map[string]map[string]string
	lastExpire time.Duration
	hgetErr    error
	hsetErr    error
}

func newMockHashClient() *mockHashClient {
	return &mockHashClient{data: make(map[string]map[string]string)}
}

func (m *mockHashClient) HGet(ctx context.Context, key, field string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if m.hgetErr != nil {
		cmd.SetErr(m.hgetErr)
		return cmd
	}
	fields, ok := m.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	value, ok := fields[field]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(value)
	return cmd
}

func (m *mockHashClient) HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if m.hsetErr != nil {
		cmd.SetErr(m.hsetErr)
		return cmd
	}
	fields, ok := m.data[key]
	if !ok {
		fields = make(map[string]string)
		m.data[key] = fields
	}
	for i := 0; i+1 < len(values); i += 2 {
		fields[values[i].(string)] = values[i+1].(string)
	}
	cmd.SetVal(int64(len(values) / 2))
	return cmd
}

func (m *mockHashClient) Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx)
	m.lastExpire = ttl
	cmd.SetVal(true)
	return cmd
}

func TestNewRedisStoreAlwaysUsable(t *testing.T) {
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: "localhost:6379"}), 0)
	if store == nil {
		t.Fatalf("constructor must never return nil")
	}
	if store.ttl != 24*time.Hour {
		t.Fatalf("expected default ttl of 24h, got %v", store.ttl)
	}
	if store.client == nil {
		t.Fatalf("store must hold the client it was given")
	}
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newMockHashClient()
	store := &RedisStore{client: client, prefix: "support:session:", ttl: time.Hour}

	err := store.SetSlots(ctx, "s1", map[string]string{
		SlotCurrentEmotion: "stress",
		SlotSentimentScore: "-0.65",
	})
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if client.lastExpire != time.Hour {
		t.Fatalf("expected ttl refresh of 1h, got %v", client.lastExpire)
	}

	value, ok, err := store.GetSlot(ctx, "s1", SlotCurrentEmotion)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if value != "stress" {
		t.Fatalf("expected stress, got %q", value)
	}
}

func TestRedisStoreMissingSlot(t *testing.T) {
	store := &RedisStore{client: newMockHashClient(), prefix: "support:session:", ttl: time.Hour}

	_, ok, err := store.GetSlot(context.Background(), "s1", SlotCurrentEmotion)
	if err != nil {
		t.Fatalf("redis.Nil must not surface as an error, got %v", err)
	}
	if ok {
		t.Fatalf("expected missing slot")
	}
}

func TestRedisStoreErrorsPropagate(t *testing.T) {
	client := newMockHashClient()
	client.hgetErr = errors.New("connection refused")
	client.hsetErr = errors.New("connection refused")
	store := &RedisStore{client: client, prefix: "support:session:", ttl: time.Hour}

	if _, _, err := store.GetSlot(context.Background(), "s1", SlotCurrentEmotion); err == nil {
		t.Fatalf("expected get error")
	}
	if err := store.SetSlots(context.Background(), "s1", map[string]string{"a": "b"}); err == nil {
		t.Fatalf("expected set error")
	}
}

func TestRedisStoreEmptySlotsNoop(t *testing.T) {
	client := newMockHashClient()
	client.hsetErr = errors.New("must not be called")
	store := &RedisStore{client: client, prefix: "support:session:", ttl: time.Hour}

	if err := store.SetSlots(context.Background(), "s1", nil); err != nil {
		t.Fatalf("empty set must be a no-op, got %v", err)
	}
}
