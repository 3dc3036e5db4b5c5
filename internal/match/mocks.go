package match

import (
	"github.com/stretchr/testify/mock"
)

type MatchRepositoryMock struct {
	mock.Mock
}

func (m *MatchRepositoryMock) Settle(players []PlayerScore) (*MatchResult, []SettledPlayer, error) {
	args := m.Called(players)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*MatchResult), args.Get(1).([]SettledPlayer), args.Error(2)
}

func (m *MatchRepositoryMock) GetRecentMatches(userID uint, limit int) ([]RecentMatch, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RecentMatch), args.Error(1)
}

func (m *MatchRepositoryMock) GetMatches() ([]Match, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Match), args.Error(1)
}

type PlayerRepositoryMock struct {
	mock.Mock
}

func (m *PlayerRepositoryMock) PlayerExists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type EventPublisherMock struct {
	mock.Mock
}

func (m *EventPublisherMock) PublishSettlement(event *SettlementEvent) {
	m.Called(event)
}
