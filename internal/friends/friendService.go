package friends

import (
	"github.com/thesrcielos/ScoreLeague/internal/apperrors"
)

type FriendService struct {
	repo FriendRepository
}

func NewFriendService(repo FriendRepository) *FriendService {
	return &FriendService{repo: repo}
}

func (f *FriendService) AddFriend(request *FriendRequest) error {
	if request.UserID == request.FriendID {
		return apperrors.NewAppError(400, "a player cannot befriend themselves", nil)
	}
	if request.UserID == 0 || request.FriendID == 0 {
		return apperrors.NewAppError(400, "userId and friendId are required", nil)
	}

	return f.repo.AddFriend(request.UserID, request.FriendID)
}

func (f *FriendService) RemoveFriend(request *FriendRequest) error {
	if request.UserID == 0 || request.FriendID == 0 {
		return apperrors.NewAppError(400, "userId and friendId are required", nil)
	}

	return f.repo.RemoveFriend(request.UserID, request.FriendID)
}

func (f *FriendService) GetFriends(userID uint) ([]FriendInfo, error) {
	return f.repo.GetFriends(userID)
}
