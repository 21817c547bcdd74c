package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/incial/stockflow/internal/config"
	"github.com/incial/stockflow/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	reportPivotKeyPrefix   = "report:pivot"
	reportSummaryKeyPrefix = "report:summary"
	reportScanBatchSize    = 100
)

// ReportCache memoizes report computations. Keys carry the entry store
// revision plus a filter hash, so a cached value can never outlive the
// inputs it was computed from. It is a performance layer only; every miss
// is recomputed from the store.
type ReportCache interface {
	GetPivot(ctx context.Context, revision uint64, filter domain.ReportFilter) (*domain.PivotReport, bool, error)
	SetPivot(ctx context.Context, revision uint64, filter domain.ReportFilter, report *domain.PivotReport) error
	GetSummary(ctx context.Context, revision uint64, filter domain.ReportFilter) (*domain.Summary, bool, error)
	SetSummary(ctx context.Context, revision uint64, filter domain.ReportFilter, summary domain.Summary) error
	InvalidateAll(ctx context.Context) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

// NewReportCache returns the redis-backed cache when caching is enabled,
// otherwise a noop.
func NewReportCache(cfg config.CacheConfig) (ReportCache, error) {
	if !cfg.Enabled {
		return &noopReportCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisReportCache{client: client, ttl: ttl}, nil
}

func NewNoopReportCache() ReportCache {
	return &noopReportCache{}
}

func (c *redisReportCache) GetPivot(ctx context.Context, revision uint64, filter domain.ReportFilter) (*domain.PivotReport, bool, error) {
	key := buildReportKey(reportPivotKeyPrefix, revision, filter)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var report domain.PivotReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, false, fmt.Errorf("decode pivot cache: %w", err)
	}

	return &report, true, nil
}

func (c *redisReportCache) SetPivot(ctx context.Context, revision uint64, filter domain.ReportFilter, report *domain.PivotReport) error {
	key := buildReportKey(reportPivotKeyPrefix, revision, filter)
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode pivot cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisReportCache) GetSummary(ctx context.Context, revision uint64, filter domain.ReportFilter) (*domain.Summary, bool, error) {
	key := buildReportKey(reportSummaryKeyPrefix, revision, filter)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var summary domain.Summary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, false, fmt.Errorf("decode summary cache: %w", err)
	}

	return &summary, true, nil
}

func (c *redisReportCache) SetSummary(ctx context.Context, revision uint64, filter domain.ReportFilter, summary domain.Summary) error {
	key := buildReportKey(reportSummaryKeyPrefix, revision, filter)
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode summary cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisReportCache) InvalidateAll(ctx context.Context) error {
	if err := deleteKeysWithPrefix(ctx, c.client, reportPivotKeyPrefix, reportScanBatchSize); err != nil {
		return err
	}
	return deleteKeysWithPrefix(ctx, c.client, reportSummaryKeyPrefix, reportScanBatchSize)
}

func (n *noopReportCache) GetPivot(ctx context.Context, revision uint64, filter domain.ReportFilter) (*domain.PivotReport, bool, error) {
	return nil, false, nil
}

func (n *noopReportCache) SetPivot(ctx context.Context, revision uint64, filter domain.ReportFilter, report *domain.PivotReport) error {
	return nil
}

func (n *noopReportCache) GetSummary(ctx context.Context, revision uint64, filter domain.ReportFilter) (*domain.Summary, bool, error) {
	return nil, false, nil
}

func (n *noopReportCache) SetSummary(ctx context.Context, revision uint64, filter domain.ReportFilter, summary domain.Summary) error {
	return nil
}

func (n *noopReportCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildReportKey(prefix string, revision uint64, filter domain.ReportFilter) string {
	return fmt.Sprintf("%s:%d:%s", prefix, revision, reportFilterHash(filter))
}

func reportFilterHash(filter domain.ReportFilter) string {
	var parts []string
	if filter.OutletID != "" {
		parts = append(parts, "outlet="+strings.TrimSpace(filter.OutletID))
	}
	if filter.Date != "" {
		parts = append(parts, "date="+strings.TrimSpace(filter.Date))
	}
	if len(parts) == 0 {
		return "default"
	}

	raw := strings.Join(parts, "|")
	sum := sha1.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}
