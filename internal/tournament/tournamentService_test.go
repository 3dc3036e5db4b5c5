package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTournamentService_CreateTournament(t *testing.T) {
	mockRepo := &TournamentRepositoryMock{}
	service := NewTournamentService(mockRepo)

	mockRepo.On("CreateTournament", mock.AnythingOfType("*tournament.Tournament")).
		Return(&Tournament{ID: 1, Time: "18:00", Date: "2026-09-15", MaxPlayers: 8}, nil)

	tournament, err := service.CreateTournament(&TournamentRequest{
		Time:       "18:00",
		Date:       "2026-09-15",
		MaxPlayers: 8,
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), tournament.ID)
	mockRepo.AssertExpectations(t)
}

func TestTournamentService_CreateTournament_Invalid(t *testing.T) {
	mockRepo := &TournamentRepositoryMock{}
	service := NewTournamentService(mockRepo)

	_, err := service.CreateTournament(&TournamentRequest{Time: "18:00", Date: "2026-09-15", MaxPlayers: 1})
	assert.Error(t, err)

	_, err = service.CreateTournament(&TournamentRequest{MaxPlayers: 8})
	assert.Error(t, err)

	mockRepo.AssertNotCalled(t, "CreateTournament")
}

func TestTournamentService_GetTournaments(t *testing.T) {
	mockRepo := &TournamentRepositoryMock{}
	service := NewTournamentService(mockRepo)

	tournaments := []Tournament{{ID: 1, Time: "18:00", Date: "2026-09-15", MaxPlayers: 8}}
	mockRepo.On("GetTournaments").Return(tournaments, nil)

	result, err := service.GetTournaments()
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	mockRepo.AssertExpectations(t)
}
