package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/analysis"
	"github.com/sirupsen/logrus"
)

// CachedAnalysisRepository is a read-through cache in front of the
// persistent repository. Reports are immutable once stored, so there
// is no invalidation path beyond the TTL.
type CachedAnalysisRepository struct {
	inner  analysis.Repository
	cache  Client
	logger *logrus.Logger
	ttl    time.Duration
}

func NewCachedAnalysisRepository(
	inner analysis.Repository,
	cache Client,
	logger *logrus.Logger,
	ttl time.Duration,
) analysis.Repository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedAnalysisRepository{
		inner:  inner,
		cache:  cache,
		logger: logger,
		ttl:    ttl,
	}
}

func (r *CachedAnalysisRepository) Save(ctx context.Context, stored *analysis.StoredResult) error {
	if err := r.inner.Save(ctx, stored); err != nil {
		return err
	}
	r.put(ctx, stored)
	return nil
}

func (r *CachedAnalysisRepository) Get(ctx context.Context, id string) (*analysis.StoredResult, error) {
	key := fmt.Sprintf(AnalysisKeyPattern, id)
	if raw, err := r.cache.Get(ctx, key); err == nil {
		var stored analysis.StoredResult
		if err := json.Unmarshal([]byte(raw), &stored); err == nil {
			return &stored, nil
		}
		// Corrupt cache entries are dropped, not served.
		_ = r.cache.Delete(ctx, key)
	}

	stored, err := r.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	r.put(ctx, stored)
	return stored, nil
}

// put is best-effort: a cache failure never fails the operation.
func (r *CachedAnalysisRepository) put(ctx context.Context, stored *analysis.StoredResult) {
	payload, err := json.Marshal(stored)
	if err != nil {
		return
	}
	key := fmt.Sprintf(AnalysisKeyPattern, stored.ID)
	if err := r.cache.Set(ctx, key, string(payload), r.ttl); err != nil {
		r.logger.WithError(err).WithField("analysis_id", stored.ID).Warn("failed to cache analysis")
	}
}
