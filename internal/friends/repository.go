package friends

import (
	"github.com/thesrcielos/ScoreLeague/internal/apperrors"
	"github.com/thesrcielos/ScoreLeague/pkg/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FriendRepository interface {
	AddFriend(userID, friendID uint) error
	RemoveFriend(userID, friendID uint) error
	GetFriends(userID uint) ([]FriendInfo, error)
}

type DBFriendRepository struct{}

func (r *DBFriendRepository) AddFriend(userID, friendID uint) error {
	return addFriend(userID, friendID)
}

func (r *DBFriendRepository) RemoveFriend(userID, friendID uint) error {
	return removeFriend(userID, friendID)
}

func (r *DBFriendRepository) GetFriends(userID uint) ([]FriendInfo, error) {
	return getFriends(userID)
}

// addFriend inserts both directed rows in one transaction. The conflict
// clause makes each insert a no-op when the row already exists, so retries
// and half-applied edges heal instead of failing.
func addFriend(userID, friendID uint) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		rows := []Friend{
			{UserID: userID, FriendID: friendID},
			{UserID: friendID, FriendID: userID},
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	})
	if err != nil {
		return apperrors.NewAppError(500, "error adding friend", err)
	}

	return nil
}

// removeFriend deletes both directions of the pair in a single statement,
// either both rows go or neither does.
func removeFriend(userID, friendID uint) error {
	err := db.DB.
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Delete(&Friend{}).Error
	if err != nil {
		return apperrors.NewAppError(500, "error removing friend", err)
	}

	return nil
}

func getFriends(userID uint) ([]FriendInfo, error) {
	friendsList := []FriendInfo{}
	err := db.DB.Table("friends").
		Select("users.id, users.username").
		Joins("JOIN users ON users.id = friends.friend_id").
		Where("friends.user_id = ?", userID).
		Scan(&friendsList).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching friends", err)
	}

	return friendsList, nil
}
