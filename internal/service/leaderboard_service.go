package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/quizhub/quizhub-backend/internal/config"
	"github.com/quizhub/quizhub-backend/internal/model"
	"github.com/quizhub/quizhub-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// LeaderboardService maintains standings in redis sorted sets, one per quiz
// category plus a global set. Scores accumulate across attempts.
type LeaderboardService struct {
	rdb      *redis.Client
	userRepo *repository.UserRepository
	size     int
	log      zerolog.Logger
}

// NewLeaderboardService creates a new LeaderboardService. size caps the
// number of rows returned by Top.
func NewLeaderboardService(rdb *redis.Client, userRepo *repository.UserRepository, size int, log zerolog.Logger) *LeaderboardService {
	if size <= 0 {
		size = 25
	}
	return &LeaderboardService{
		rdb:      rdb,
		userRepo: userRepo,
		size:     size,
		log:      log.With().Str("component", "leaderboard_service").Logger(),
	}
}

// AddScore credits points to the user on the category and global boards.
func (s *LeaderboardService) AddScore(ctx context.Context, userID int, category string, points float64) error {
	member := strconv.Itoa(userID)
	pipe := s.rdb.Pipeline()
	pipe.ZIncrBy(ctx, config.CacheKey.LeaderboardKey(category), points, member)
	pipe.ZIncrBy(ctx, config.CacheKey.GlobalLeaderboardKey(), points, member)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("increment leaderboard: %w", err)
	}
	return nil
}

// Top returns the highest-scoring users. An empty category selects the
// global board. Display names are hydrated from the user table; accounts
// deleted since scoring keep their row with a blank name filtered out.
func (s *LeaderboardService) Top(ctx context.Context, category string) ([]model.LeaderboardEntry, error) {
	key := config.CacheKey.GlobalLeaderboardKey()
	if category != "" {
		key = config.CacheKey.LeaderboardKey(category)
	}

	members, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(s.size)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	if len(members) == 0 {
		return []model.LeaderboardEntry{}, nil
	}

	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m.Member.(string))
		if err != nil {
			s.log.Warn().Interface("member", m.Member).Msg("Non-numeric leaderboard member skipped")
			continue
		}
		ids = append(ids, id)
	}

	names, err := s.userRepo.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve names: %w", err)
	}

	entries := make([]model.LeaderboardEntry, 0, len(members))
	rank := 1
	for _, m := range members {
		id, err := strconv.Atoi(m.Member.(string))
		if err != nil {
			continue
		}
		name, ok := names[id]
		if !ok {
			continue // account deleted
		}
		entries = append(entries, model.LeaderboardEntry{
			Rank:   rank,
			UserID: id,
			Name:   name,
			Score:  m.Score,
		})
		rank++
	}
	return entries, nil
}

// Rank returns the user's 1-based position on a board, or 0 when unranked.
func (s *LeaderboardService) Rank(ctx context.Context, userID int, category string) (int, error) {
	key := config.CacheKey.GlobalLeaderboardKey()
	if category != "" {
		key = config.CacheKey.LeaderboardKey(category)
	}
	rank, err := s.rdb.ZRevRank(ctx, key, strconv.Itoa(userID)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read rank: %w", err)
	}
	return int(rank) + 1, nil
}
