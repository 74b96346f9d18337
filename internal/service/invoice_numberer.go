package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gps-tracking-be/internal/pkg/logger"
	"gps-tracking-be/internal/repository/unitofwork"
	"gps-tracking-be/pkg/ledger"

	"github.com/redis/go-redis/v9"
)

// InvoiceNumberer hands out the next invoice number for the year of date.
// It must be called outside any open unit of work.
type InvoiceNumberer interface {
	Next(ctx context.Context, date time.Time) (string, error)
}

// SequenceSeed returns the highest sequence value already stored for yearPrefix.
type SequenceSeed func(ctx context.Context, yearPrefix string) (int, error)

// StoredSequenceSeed reads the highest stored invoice number.
func StoredSequenceSeed(uowFactory unitofwork.RepositoryFactory) SequenceSeed {
	return func(ctx context.Context, yearPrefix string) (int, error) {
		uow := uowFactory.NewUnitOfWork(ctx)
		latest, err := uow.InvoiceRepository().LatestNumber(ctx, yearPrefix)
		if err != nil {
			return 0, err
		}
		n, _ := ledger.InvoiceSequence(latest)
		return n, nil
	}
}

type localInvoiceNumberer struct {
	mu     sync.Mutex
	prefix string
	last   map[int]int
	seed   SequenceSeed
}

func NewLocalInvoiceNumberer(prefix string, seed SequenceSeed) InvoiceNumberer {
	return newLocalInvoiceNumberer(prefix, seed)
}

func newLocalInvoiceNumberer(prefix string, seed SequenceSeed) *localInvoiceNumberer {
	return &localInvoiceNumberer{
		prefix: prefix,
		last:   make(map[int]int),
		seed:   seed,
	}
}

func (n *localInvoiceNumberer) Next(ctx context.Context, date time.Time) (string, error) {
	year := date.Year()

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.last[year]; !ok {
		v, err := n.seed(ctx, ledger.InvoiceYearPrefix(n.prefix, year))
		if err != nil {
			return "", fmt.Errorf("seed invoice sequence: %w", err)
		}
		n.last[year] = v
	}
	n.last[year]++

	return ledger.InvoiceNumber(n.prefix, year, n.last[year]), nil
}

type redisInvoiceNumberer struct {
	rdb      *redis.Client
	prefix   string
	seed     SequenceSeed
	seeded   sync.Map
	fallback *localInvoiceNumberer
	logger   logger.ILogger
}

// NewRedisInvoiceNumberer keeps the sequence in Redis with INCR so several
// processes share it. Redis errors fall back to an in-process counter.
func NewRedisInvoiceNumberer(rdb *redis.Client, prefix string, seed SequenceSeed, log logger.ILogger) InvoiceNumberer {
	return &redisInvoiceNumberer{
		rdb:      rdb,
		prefix:   prefix,
		seed:     seed,
		fallback: newLocalInvoiceNumberer(prefix, seed),
		logger:   log,
	}
}

func (n *redisInvoiceNumberer) key(year int) string {
	return fmt.Sprintf("invoice_seq:%s:%d", n.prefix, year)
}

func (n *redisInvoiceNumberer) Next(ctx context.Context, date time.Time) (string, error) {
	year := date.Year()
	key := n.key(year)

	if _, ok := n.seeded.Load(key); !ok {
		v, err := n.seed(ctx, ledger.InvoiceYearPrefix(n.prefix, year))
		if err != nil {
			return "", fmt.Errorf("seed invoice sequence: %w", err)
		}
		if err := n.rdb.SetNX(ctx, key, v, 0).Err(); err != nil {
			return n.fallbackNext(ctx, date, err)
		}
		n.seeded.Store(key, struct{}{})
	}

	seq, err := n.rdb.Incr(ctx, key).Result()
	if err != nil {
		return n.fallbackNext(ctx, date, err)
	}

	return ledger.InvoiceNumber(n.prefix, year, int(seq)), nil
}

func (n *redisInvoiceNumberer) fallbackNext(ctx context.Context, date time.Time, cause error) (string, error) {
	n.logger.Warn("INVOICE", "Redis sequence unavailable, using local counter", map[string]interface{}{
		"error": cause.Error(),
	})
	return n.fallback.Next(ctx, date)
}
