package match

import (
	"time"

	"github.com/thesrcielos/ScoreLeague/internal/user"
)

type Match struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Participant is one player's row in a settled match. The composite key
// keeps a player from appearing twice in the same match.
type Participant struct {
	MatchID     uint `gorm:"primaryKey" json:"matchId"`
	UserID      uint `gorm:"primaryKey;index:idx_match_players_user" json:"userId"`
	Score       int  `json:"score"`
	PointsDelta int  `json:"pointsDelta"`

	Match  Match     `gorm:"foreignKey:MatchID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Player user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Participant) TableName() string {
	return "match_players"
}

type PlayerScore struct {
	ID    uint `json:"id"`
	Score int  `json:"score"`
}

type MatchRequest struct {
	Players []PlayerScore `json:"players"`
}

type MatchResult struct {
	Reference string        `json:"reference"`
	MatchID   uint          `json:"matchId"`
	Players   []Participant `json:"players"`
}

type RecentMatch struct {
	MatchID     uint      `json:"matchId"`
	Score       int       `json:"score"`
	PointsDelta int       `json:"pointsDelta"`
	PlayedAt    time.Time `json:"playedAt"`
}

type SettledPlayer struct {
	UserID      uint `json:"userId"`
	Score       int  `json:"score"`
	PointsDelta int  `json:"pointsDelta"`
}

type SettlementEvent struct {
	Type    string          `json:"type"`
	MatchID uint            `json:"matchId"`
	Players []SettledPlayer `json:"players"`
}
