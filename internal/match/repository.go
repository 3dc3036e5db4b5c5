package match

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/thesrcielos/ScoreLeague/internal/apperrors"
	"github.com/thesrcielos/ScoreLeague/internal/user"
	"github.com/thesrcielos/ScoreLeague/pkg/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatchRepository interface {
	Settle(players []PlayerScore) (*MatchResult, []SettledPlayer, error)
	GetRecentMatches(userID uint, limit int) ([]RecentMatch, error)
	GetMatches() ([]Match, error)
}

type DBMatchRepository struct{}

func (r *DBMatchRepository) Settle(players []PlayerScore) (*MatchResult, []SettledPlayer, error) {
	return settleMatch(players)
}

func (r *DBMatchRepository) GetRecentMatches(userID uint, limit int) ([]RecentMatch, error) {
	return getRecentMatches(userID, limit)
}

func (r *DBMatchRepository) GetMatches() ([]Match, error) {
	return getMatches()
}

// settleMatch writes the match, its participant rows and every balance
// increment in one transaction. The increment is evaluated in the store
// (points = points + delta) so concurrent settlements on the same player
// never lose an update.
func settleMatch(players []PlayerScore) (*MatchResult, []SettledPlayer, error) {
	var m Match
	participants := make([]Participant, 0, len(players))
	settled := make([]SettledPlayer, 0, len(players))

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		for _, p := range players {
			delta := PointsDelta(p.Score)
			row := Participant{
				MatchID:     m.ID,
				UserID:      p.ID,
				Score:       p.Score,
				PointsDelta: delta,
			}
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return err
			}

			result := tx.Model(&user.User{}).
				Where("id = ?", p.ID).
				UpdateColumn("points", gorm.Expr("points + ?", delta))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("player %d not found", p.ID)
			}

			participants = append(participants, row)
			settled = append(settled, SettledPlayer{
				UserID:      p.ID,
				Score:       p.Score,
				PointsDelta: delta,
			})
		}
		return nil
	})
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "settlement failed", err)
	}

	result := &MatchResult{
		Reference: uuid.New().String()[:8],
		MatchID:   m.ID,
		Players:   participants,
	}
	return result, settled, nil
}

func getRecentMatches(userID uint, limit int) ([]RecentMatch, error) {
	matches := []RecentMatch{}
	err := db.DB.Table("match_players").
		Select("match_players.match_id, match_players.score, match_players.points_delta, matches.created_at AS played_at").
		Joins("JOIN matches ON matches.id = match_players.match_id").
		Where("match_players.user_id = ?", userID).
		Order("matches.created_at DESC").
		Limit(limit).
		Scan(&matches).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching matches", err)
	}

	return matches, nil
}

func getMatches() ([]Match, error) {
	matches := []Match{}
	if err := db.DB.Order("created_at DESC").Find(&matches).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error fetching matches", err)
	}

	return matches, nil
}
