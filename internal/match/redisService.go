package match

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

const FeedChannel = "match_feed"
const LeaderboardKey = "leaderboard"

// RedisEventPublisher pushes settled matches to the read side: the
// leaderboard sorted set and the live feed channel. Failures are logged
// and dropped, the settlement is already committed.
type RedisEventPublisher struct {
	db *redis.Client
}

func NewRedisEventPublisher(db *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{db: db}
}

func (r *RedisEventPublisher) PublishSettlement(event *SettlementEvent) {
	// relative increments commute, so publishers racing each other after
	// overlapping settlements cannot leave a stale score behind
	for _, p := range event.Players {
		member := strconv.Itoa(int(p.UserID))
		if err := r.db.ZIncrBy(ctx, LeaderboardKey, float64(p.PointsDelta), member).Err(); err != nil {
			log.Println("Error updating leaderboard:", err)
		}
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Println("Error serializing settlement event:", err)
		return
	}

	if err := r.db.Publish(ctx, FeedChannel, data).Err(); err != nil {
		log.Println("Error publishing settlement event:", err)
	}
}
