package tournament

import (
	"github.com/thesrcielos/ScoreLeague/internal/apperrors"
)

type TournamentService struct {
	repo TournamentRepository
}

func NewTournamentService(repo TournamentRepository) *TournamentService {
	return &TournamentService{repo: repo}
}

func (t *TournamentService) CreateTournament(request *TournamentRequest) (*Tournament, error) {
	if request.Time == "" || request.Date == "" {
		return nil, apperrors.NewAppError(400, "time and date are required", nil)
	}
	if request.MaxPlayers < 2 {
		return nil, apperrors.NewAppError(400, "a tournament needs at least two players", nil)
	}

	tournament := &Tournament{
		Time:           request.Time,
		Date:           request.Date,
		MaxPlayers:     request.MaxPlayers,
		OrganizationID: request.OrganizationID,
	}
	return t.repo.CreateTournament(tournament)
}

func (t *TournamentService) GetTournaments() ([]Tournament, error) {
	return t.repo.GetTournaments()
}
