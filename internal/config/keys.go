package config

import "fmt"

// cacheKeys centralizes redis key construction so no two components drift.
type cacheKeys struct{}

// CacheKey builds redis cache and session keys.
var CacheKey cacheKeys

// QuizPayloadKey is the cached player payload of a published quiz.
func (cacheKeys) QuizPayloadKey(quizID string) string {
	return fmt.Sprintf("quiz:%s:payload", quizID)
}

// UserSessionKey holds the JTI of the user's active session.
func (cacheKeys) UserSessionKey(userID int) string {
	return fmt.Sprintf("user:%d:session", userID)
}

// LeaderboardKey is the sorted set of scores for one category.
func (cacheKeys) LeaderboardKey(category string) string {
	return fmt.Sprintf("leaderboard:category:%s", category)
}

// GlobalLeaderboardKey is the sorted set of scores across all categories.
func (cacheKeys) GlobalLeaderboardKey() string {
	return "leaderboard:global"
}

// workerKeys centralizes redis queue names consumed by background workers.
type workerKeys struct {
	// ScoreQueue carries graded attempt payloads awaiting persistence.
	ScoreQueue string
}

// WorkerKey exposes the background worker queue names.
var WorkerKey = workerKeys{
	ScoreQueue: "queue:persist_scores",
}
