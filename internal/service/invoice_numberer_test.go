package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gps-tracking-be/internal/dto"
	"gps-tracking-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSeed(values map[string]int) SequenceSeed {
	return func(_ context.Context, yearPrefix string) (int, error) {
		return values[yearPrefix], nil
	}
}

func TestLocalNumberer_SeedsOncePerYear(t *testing.T) {
	calls := 0
	seed := func(_ context.Context, yearPrefix string) (int, error) {
		calls++
		if yearPrefix == "FACT-2024-" {
			return 41, nil
		}
		return 0, nil
	}
	n := NewLocalInvoiceNumberer("FACT", seed)
	ctx := context.Background()
	d2024 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	first, err := n.Next(ctx, d2024)
	require.NoError(t, err)
	second, err := n.Next(ctx, d2024)
	require.NoError(t, err)
	other, err := n.Next(ctx, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "FACT-2024-0042", first)
	assert.Equal(t, "FACT-2024-0043", second)
	assert.Equal(t, "FACT-2025-0001", other)
	assert.Equal(t, 2, calls)
}

func TestLocalNumberer_SeedError(t *testing.T) {
	n := NewLocalInvoiceNumberer("FACT", func(context.Context, string) (int, error) {
		return 0, errors.New("db down")
	})
	_, err := n.Next(context.Background(), time.Now())
	assert.Error(t, err)
}

func TestLocalNumberer_ConcurrentCallsAreUnique(t *testing.T) {
	n := NewLocalInvoiceNumberer("FACT", fixedSeed(nil))
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num, err := n.Next(context.Background(), date)
			if err != nil {
				return
			}
			mu.Lock()
			seen[num] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 50)
}

func TestStoredSequenceSeed_ContinuesFromDatabase(t *testing.T) {
	env := newTestEnv(t)
	client := env.client(t, "Atlas")
	for i := 0; i < 3; i++ {
		_, err := env.invoices.Create(env.ctx, &dto.CreateInvoiceRequest{
			ClientId: client.Id,
			Items:    []dto.InvoiceItemRequest{{Description: "x", Quantity: 1, UnitPrice: dec("1")}},
		})
		require.NoError(t, err)
	}

	// A fresh numberer, as after a restart, picks up after the stored maximum.
	restarted := NewLocalInvoiceNumberer("FACT", StoredSequenceSeed(env.uow))
	num, err := restarted.Next(env.ctx, testToday)
	require.NoError(t, err)
	assert.Equal(t, "FACT-2024-0004", num)
}

func TestRedisNumberer_FallsBackWhenUnreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	n := NewRedisInvoiceNumberer(rdb, "FACT", fixedSeed(map[string]int{"FACT-2024-": 7}), logger.NewNopLogger())
	date := time.Date(2024, 9, 9, 0, 0, 0, 0, time.UTC)

	first, err := n.Next(context.Background(), date)
	require.NoError(t, err)
	second, err := n.Next(context.Background(), date)
	require.NoError(t, err)

	assert.Equal(t, "FACT-2024-0008", first)
	assert.Equal(t, "FACT-2024-0009", second)
}
