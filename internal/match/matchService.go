package match

import (
	"fmt"

	"github.com/thesrcielos/ScoreLeague/internal/apperrors"
)

// PlayerRepository is the user-management lookup the engine validates
// participants against.
type PlayerRepository interface {
	PlayerExists(id uint) (bool, error)
}

// EventPublisher receives the settlement after commit for read-side
// fan-out (leaderboard cache, live feed). Best effort, never part of
// the transaction.
type EventPublisher interface {
	PublishSettlement(event *SettlementEvent)
}

type MatchService struct {
	repo    MatchRepository
	players PlayerRepository
	events  EventPublisher
}

func NewMatchService(repo MatchRepository, players PlayerRepository, events EventPublisher) *MatchService {
	return &MatchService{
		repo:    repo,
		players: players,
		events:  events,
	}
}

func (s *MatchService) Settle(request *MatchRequest) (*MatchResult, error) {
	if request == nil || len(request.Players) < 2 {
		return nil, apperrors.NewAppError(400, "a match needs at least two players", nil)
	}

	seen := make(map[uint]bool, len(request.Players))
	for _, p := range request.Players {
		if seen[p.ID] {
			return nil, apperrors.NewAppError(400, fmt.Sprintf("player %d appears twice in the match", p.ID), nil)
		}
		seen[p.ID] = true

		exists, err := s.players.PlayerExists(p.ID)
		if err != nil {
			return nil, apperrors.NewAppError(500, "error checking player", err)
		}
		if !exists {
			return nil, apperrors.NewAppError(400, fmt.Sprintf("player %d does not exist", p.ID), nil)
		}
	}

	result, settled, err := s.repo.Settle(request.Players)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.PublishSettlement(&SettlementEvent{
			Type:    "MATCH_SETTLED",
			MatchID: result.MatchID,
			Players: settled,
		})
	}

	return result, nil
}

func (s *MatchService) GetRecentMatches(userID uint, limit int) ([]RecentMatch, error) {
	if limit <= 0 {
		limit = 5
	}

	exists, err := s.players.PlayerExists(userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error checking player", err)
	}
	if !exists {
		return nil, apperrors.NewAppError(404, "player not found", nil)
	}

	return s.repo.GetRecentMatches(userID, limit)
}

func (s *MatchService) GetMatches() ([]Match, error) {
	return s.repo.GetMatches()
}
