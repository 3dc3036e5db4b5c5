package friends

import (
	"github.com/stretchr/testify/mock"
)

type FriendRepositoryMock struct {
	mock.Mock
}

func (m *FriendRepositoryMock) AddFriend(userID, friendID uint) error {
	args := m.Called(userID, friendID)
	return args.Error(0)
}

func (m *FriendRepositoryMock) RemoveFriend(userID, friendID uint) error {
	args := m.Called(userID, friendID)
	return args.Error(0)
}

func (m *FriendRepositoryMock) GetFriends(userID uint) ([]FriendInfo, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FriendInfo), args.Error(1)
}
