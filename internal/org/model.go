package org

type Organization struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type OrganizationRequest struct {
	Name string `json:"name"`
}

type MembershipRequest struct {
	UserID uint `json:"userId"`
	OrgID  uint `json:"orgId"`
}

type Member struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	Role     string `json:"role"`
}
