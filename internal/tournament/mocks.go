package tournament

import (
	"github.com/stretchr/testify/mock"
)

type TournamentRepositoryMock struct {
	mock.Mock
}

func (m *TournamentRepositoryMock) CreateTournament(tournament *Tournament) (*Tournament, error) {
	args := m.Called(tournament)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Tournament), args.Error(1)
}

func (m *TournamentRepositoryMock) GetTournaments() ([]Tournament, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Tournament), args.Error(1)
}
