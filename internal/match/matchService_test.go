package match

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newServiceWithMocks() (*MatchService, *MatchRepositoryMock, *PlayerRepositoryMock, *EventPublisherMock) {
	repo := &MatchRepositoryMock{}
	players := &PlayerRepositoryMock{}
	events := &EventPublisherMock{}
	return NewMatchService(repo, players, events), repo, players, events
}

func TestMatchService_Settle(t *testing.T) {
	service, repo, players, events := newServiceWithMocks()

	request := &MatchRequest{Players: []PlayerScore{
		{ID: 1, Score: 2},
		{ID: 2, Score: 9},
	}}

	players.On("PlayerExists", uint(1)).Return(true, nil)
	players.On("PlayerExists", uint(2)).Return(true, nil)

	result := &MatchResult{
		Reference: "ab12cd34",
		MatchID:   10,
		Players: []Participant{
			{MatchID: 10, UserID: 1, Score: 2, PointsDelta: -3},
			{MatchID: 10, UserID: 2, Score: 9, PointsDelta: 2},
		},
	}
	settled := []SettledPlayer{
		{UserID: 1, Score: 2, PointsDelta: -3},
		{UserID: 2, Score: 9, PointsDelta: 2},
	}
	repo.On("Settle", request.Players).Return(result, settled, nil)
	events.On("PublishSettlement", mock.AnythingOfType("*match.SettlementEvent")).Return()

	got, err := service.Settle(request)
	assert.NoError(t, err)
	assert.Equal(t, uint(10), got.MatchID)
	assert.Equal(t, -3, got.Players[0].PointsDelta)
	assert.Equal(t, 2, got.Players[1].PointsDelta)

	repo.AssertExpectations(t)
	players.AssertExpectations(t)
	events.AssertExpectations(t)

	event := events.Calls[0].Arguments.Get(0).(*SettlementEvent)
	assert.Equal(t, "MATCH_SETTLED", event.Type)
	assert.Equal(t, uint(10), event.MatchID)
	assert.Len(t, event.Players, 2)
	// the published deltas drive the leaderboard increments
	assert.Equal(t, -3, event.Players[0].PointsDelta)
	assert.Equal(t, 2, event.Players[1].PointsDelta)
}

func TestMatchService_Settle_NotEnoughPlayers(t *testing.T) {
	service, repo, _, _ := newServiceWithMocks()

	_, err := service.Settle(&MatchRequest{Players: []PlayerScore{{ID: 1, Score: 5}}})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Settle")
}

func TestMatchService_Settle_DuplicatePlayer(t *testing.T) {
	service, repo, players, _ := newServiceWithMocks()

	players.On("PlayerExists", uint(1)).Return(true, nil)

	_, err := service.Settle(&MatchRequest{Players: []PlayerScore{
		{ID: 1, Score: 5},
		{ID: 1, Score: 8},
	}})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Settle")
}

func TestMatchService_Settle_UnknownPlayer(t *testing.T) {
	service, repo, players, _ := newServiceWithMocks()

	players.On("PlayerExists", uint(1)).Return(true, nil)
	players.On("PlayerExists", uint(99)).Return(false, nil)

	_, err := service.Settle(&MatchRequest{Players: []PlayerScore{
		{ID: 1, Score: 5},
		{ID: 99, Score: 8},
	}})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Settle")
}

func TestMatchService_Settle_RepositoryFailure(t *testing.T) {
	service, repo, players, events := newServiceWithMocks()

	players.On("PlayerExists", uint(1)).Return(true, nil)
	players.On("PlayerExists", uint(2)).Return(true, nil)
	repo.On("Settle", mock.Anything).Return(nil, nil, errors.New("tx aborted"))

	_, err := service.Settle(&MatchRequest{Players: []PlayerScore{
		{ID: 1, Score: 5},
		{ID: 2, Score: 8},
	}})
	assert.Error(t, err)
	events.AssertNotCalled(t, "PublishSettlement")
}

func TestMatchService_GetRecentMatches(t *testing.T) {
	service, repo, players, _ := newServiceWithMocks()

	players.On("PlayerExists", uint(1)).Return(true, nil)
	recent := []RecentMatch{
		{MatchID: 4, Score: 9, PointsDelta: 2},
		{MatchID: 3, Score: 2, PointsDelta: -3},
	}
	repo.On("GetRecentMatches", uint(1), 5).Return(recent, nil)

	matches, err := service.GetRecentMatches(1, 0)
	assert.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.Equal(t, uint(4), matches[0].MatchID)
	repo.AssertExpectations(t)
}

func TestMatchService_GetRecentMatches_UnknownPlayer(t *testing.T) {
	service, repo, players, _ := newServiceWithMocks()

	players.On("PlayerExists", uint(42)).Return(false, nil)

	_, err := service.GetRecentMatches(42, 5)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "GetRecentMatches")
}
