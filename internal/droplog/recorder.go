// Package droplog writes an asynchronous audit trail of resolved drops.
package droplog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/samber/lo"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/logger"
	"github.com/osse101/WorldLoot_Go/internal/metrics"
	"github.com/osse101/WorldLoot_Go/internal/worker"
)

// Repository persists drop records
type Repository interface {
	InsertDrops(ctx context.Context, records []domain.DropRecord) error
}

// Reader lists persisted drop records
type Reader interface {
	ListDrops(ctx context.Context, characterID int64, limit int) ([]domain.DropRecord, error)
}

// Recorder accepts resolved drops for auditing. Record never blocks the caller.
type Recorder interface {
	Record(ctx context.Context, kind domain.BoxKind, boxID int, characterID int64, items []*domain.ResolvedItem)
}

type recorder struct {
	repo Repository
	pool *worker.Pool
	now  func() time.Time
}

// NewRecorder creates a Recorder that hands records to pool for insertion
func NewRecorder(repo Repository, pool *worker.Pool) Recorder {
	return &recorder{
		repo: repo,
		pool: pool,
		now:  time.Now,
	}
}

func (r *recorder) Record(ctx context.Context, kind domain.BoxKind, boxID int, characterID int64, items []*domain.ResolvedItem) {
	if len(items) == 0 {
		return
	}

	requestID, _ := logger.GetRequestID(ctx)
	createdAt := r.now().UTC()
	records := lo.Map(items, func(item *domain.ResolvedItem, _ int) domain.DropRecord {
		return domain.DropRecord{
			ItemUID:     item.UID,
			BoxKind:     kind,
			BoxID:       boxID,
			CharacterID: characterID,
			ItemID:      item.ItemID,
			Rarity:      item.Rarity,
			Amount:      item.Amount,
			RequestID:   requestID,
			CreatedAt:   createdAt,
		}
	})

	if err := r.pool.TryEnqueue(&insertJob{repo: r.repo, records: records}); err != nil {
		metrics.DropLogRecords.WithLabelValues(metrics.OutcomeRejected).Add(float64(len(records)))
		logger.FromContext(ctx).Warn(LogMsgQueueFull, LogFieldKind, kind, LogFieldBox, boxID, LogFieldRecords, len(records), LogFieldError, err)
		return
	}
	metrics.DropLogRecords.WithLabelValues(metrics.OutcomeQueued).Add(float64(len(records)))
}

type insertJob struct {
	repo    Repository
	records []domain.DropRecord
}

func (j *insertJob) Process(ctx context.Context) error {
	err := retry.Do(
		func() error {
			return j.repo.InsertDrops(ctx, j.records)
		},
		retry.Context(ctx),
		retry.Attempts(InsertAttempts),
		retry.Delay(InsertDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, context.Canceled)
		}),
		retry.OnRetry(func(n uint, err error) {
			logger.FromContext(ctx).Debug(LogMsgRetrying, LogFieldAttempt, n+1, LogFieldError, err)
		}),
	)
	if err != nil {
		metrics.DropLogRecords.WithLabelValues(metrics.OutcomeFailure).Add(float64(len(j.records)))
		return fmt.Errorf("%s: %w", LogMsgInsertFailed, err)
	}

	metrics.DropLogRecords.WithLabelValues(metrics.OutcomeSuccess).Add(float64(len(j.records)))
	return nil
}

type nopRecorder struct{}

// NewNopRecorder returns a Recorder that discards everything, used when no
// database is configured.
func NewNopRecorder() Recorder {
	return nopRecorder{}
}

func (nopRecorder) Record(context.Context, domain.BoxKind, int, int64, []*domain.ResolvedItem) {}
