package tournament

import (
	"github.com/thesrcielos/ScoreLeague/internal/apperrors"
	"github.com/thesrcielos/ScoreLeague/pkg/db"
)

type TournamentRepository interface {
	CreateTournament(tournament *Tournament) (*Tournament, error)
	GetTournaments() ([]Tournament, error)
}

type DBTournamentRepository struct{}

func (r *DBTournamentRepository) CreateTournament(tournament *Tournament) (*Tournament, error) {
	return createTournament(tournament)
}

func (r *DBTournamentRepository) GetTournaments() ([]Tournament, error) {
	return getTournaments()
}

func createTournament(tournament *Tournament) (*Tournament, error) {
	if err := db.DB.Create(tournament).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error creating tournament", err)
	}

	return tournament, nil
}

func getTournaments() ([]Tournament, error) {
	tournaments := []Tournament{}
	if err := db.DB.Find(&tournaments).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error fetching tournaments", err)
	}

	return tournaments, nil
}
