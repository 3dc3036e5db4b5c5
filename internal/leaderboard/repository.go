package leaderboard

import (
	"context"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/thesrcielos/ScoreLeague/internal/apperrors"
	"github.com/thesrcielos/ScoreLeague/internal/match"
	"github.com/thesrcielos/ScoreLeague/pkg/db"
)

var ctx = context.Background()

type LeaderboardRepository interface {
	TopPlayers(limit int) ([]Entry, error)
	FriendsOf(userID uint) ([]Entry, error)
}

type RedisLeaderboardRepository struct {
	rdb *redis.Client
}

func NewRedisLeaderboardRepository(rdb *redis.Client) *RedisLeaderboardRepository {
	return &RedisLeaderboardRepository{rdb: rdb}
}

// Rebuild seeds the sorted set with every player's current balance so the
// relative increments applied by settlements start from a correct base.
// Called at boot and whenever the set is found empty.
func (r *RedisLeaderboardRepository) Rebuild() error {
	entries := []Entry{}
	err := db.DB.Table("users").
		Select("id, username, points").
		Scan(&entries).Error
	if err != nil {
		return apperrors.NewAppError(500, "error rebuilding leaderboard", err)
	}

	r.warmCache(entries)
	return nil
}

// TopPlayers reads the sorted set kept up to date by settlements. An empty
// set (cold start, cache flush) falls back to the database and rebuilds it.
func (r *RedisLeaderboardRepository) TopPlayers(limit int) ([]Entry, error) {
	members, err := r.rdb.ZRevRangeWithScores(ctx, match.LeaderboardKey, 0, int64(limit)-1).Result()
	if err != nil {
		log.Println("Error reading leaderboard cache:", err)
		return topPlayersFromDB(limit)
	}
	if len(members) == 0 {
		entries, errDB := topPlayersFromDB(limit)
		if errDB != nil {
			return nil, errDB
		}
		if err := r.Rebuild(); err != nil {
			log.Println("Error rebuilding leaderboard cache:", err)
		}
		return entries, nil
	}

	ids := make([]uint, 0, len(members))
	for _, member := range members {
		id, errConv := strconv.Atoi(member.Member.(string))
		if errConv != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	rows := []Entry{}
	errDB := db.DB.Table("users").
		Select("id, username, points").
		Where("id IN ?", ids).
		Scan(&rows).Error
	if errDB != nil {
		return nil, apperrors.NewAppError(500, "error fetching leaderboard players", errDB)
	}

	byID := make(map[uint]Entry, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		if entry, ok := byID[id]; ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (r *RedisLeaderboardRepository) FriendsOf(userID uint) ([]Entry, error) {
	entries := []Entry{}
	friendIDs := db.DB.Table("friends").
		Select("friend_id").
		Where("user_id = ?", userID)

	err := db.DB.Table("users").
		Select("id, username, points").
		Where("id = ? OR id IN (?)", userID, friendIDs).
		Order("points DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching friends leaderboard", err)
	}

	return entries, nil
}

func (r *RedisLeaderboardRepository) warmCache(entries []Entry) {
	members := make([]redis.Z, 0, len(entries))
	for _, entry := range entries {
		members = append(members, redis.Z{
			Score:  float64(entry.Points),
			Member: strconv.Itoa(int(entry.ID)),
		})
	}
	if len(members) == 0 {
		return
	}
	if err := r.rdb.ZAdd(ctx, match.LeaderboardKey, members...).Err(); err != nil {
		log.Println("Error warming leaderboard cache:", err)
	}
}

func topPlayersFromDB(limit int) ([]Entry, error) {
	entries := []Entry{}
	err := db.DB.Table("users").
		Select("id, username, points").
		Order("points DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching leaderboard", err)
	}

	return entries, nil
}
