package leaderboard

import (
	"github.com/stretchr/testify/mock"
)

type LeaderboardRepositoryMock struct {
	mock.Mock
}

func (m *LeaderboardRepositoryMock) TopPlayers(limit int) ([]Entry, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *LeaderboardRepositoryMock) FriendsOf(userID uint) ([]Entry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}
