package user

type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"uniqueIndex;not null" json:"username"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Password       string `json:"password,omitempty"`
	Points         int    `gorm:"not null;default:100" json:"points"`
	OrganizationID *uint  `json:"organizationId"`
	Role           string `gorm:"not null;default:user" json:"role"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Points         int    `json:"points"`
	OrganizationID *uint  `json:"organizationId"`
	Role           string `json:"role"`
}

type UserListItem struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	Points         int    `json:"points"`
	OrganizationID *uint  `json:"organizationId"`
	Role           string `json:"role"`
	Organization   string `json:"organization"`
}
