package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/quizhub/quizhub-backend/internal/config"
	"github.com/quizhub/quizhub-backend/internal/model"
	"github.com/quizhub/quizhub-backend/internal/repository"
	"github.com/quizhub/quizhub-backend/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	scoreBatchSize    = 50
	scoreBatchTimeout = 2 * time.Second
	scorePollTimeout  = 1 * time.Second
)

// ScoreWorker drains the score queue: graded attempts are persisted in
// batches and credited to the leaderboards. Grading itself already happened
// in the request path; this keeps attempt submission latency independent of
// database write load.
type ScoreWorker struct {
	attemptRepo *repository.AttemptRepository
	leaderboard *service.LeaderboardService
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewScoreWorker creates a new ScoreWorker.
func NewScoreWorker(attemptRepo *repository.AttemptRepository, leaderboard *service.LeaderboardService, rdb *redis.Client, log zerolog.Logger) *ScoreWorker {
	return &ScoreWorker{
		attemptRepo: attemptRepo,
		leaderboard: leaderboard,
		rdb:         rdb,
		log:         log.With().Str("component", "score_worker").Logger(),
	}
}

// Start runs the consume loop until ctx is cancelled. The remaining batch is
// flushed on shutdown.
func (w *ScoreWorker) Start(ctx context.Context) {
	w.log.Info().Msg("ScoreWorker started")

	batch := make([]model.ScoreMessage, 0, scoreBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= scoreBatchSize || time.Since(lastFlush) >= scoreBatchTimeout) {
			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested, flushing remaining batch")
			w.flushSafe(context.Background(), batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, scorePollTimeout, config.WorkerKey.ScoreQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}
			if len(item) < 2 {
				continue
			}

			var msg model.ScoreMessage
			if err := json.Unmarshal([]byte(item[1]), &msg); err != nil {
				w.log.Error().Err(err).Str("payload", item[1]).Msg("Malformed score message dropped")
				continue
			}
			batch = append(batch, msg)
		}
	}
}

// flushSafe persists the batch with a bounded timeout so shutdown cannot
// hang on a slow database.
func (w *ScoreWorker) flushSafe(ctx context.Context, batch []model.ScoreMessage) {
	if len(batch) == 0 {
		return
	}

	flushCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	attempts := make([]*model.QuizAttempt, 0, len(batch))
	for i := range batch {
		attempts = append(attempts, &batch[i].Attempt)
	}
	if err := w.attemptRepo.CreateBatch(flushCtx, attempts); err != nil {
		w.log.Error().Err(err).Int("count", len(attempts)).Msg("Attempt batch insert failed")
		return
	}

	for i := range batch {
		msg := &batch[i]
		if err := w.leaderboard.AddScore(flushCtx, msg.Attempt.UserID, msg.Category, msg.Attempt.Score); err != nil {
			w.log.Error().Err(err).Int("user_id", msg.Attempt.UserID).Msg("Leaderboard credit failed")
		}
	}

	w.log.Debug().Int("count", len(batch)).Msg("Score batch flushed")
}
