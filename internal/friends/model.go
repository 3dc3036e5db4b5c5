package friends

// Friend is one directed row of a mutual friendship. An edge between two
// players is always stored in both directions.
type Friend struct {
	UserID   uint `gorm:"primaryKey" json:"userId"`
	FriendID uint `gorm:"primaryKey" json:"friendId"`
}

type FriendRequest struct {
	UserID   uint `json:"userId"`
	FriendID uint `json:"friendId"`
}

type FriendInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
