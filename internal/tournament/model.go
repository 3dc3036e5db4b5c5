package tournament

type Tournament struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Time           string `gorm:"not null" json:"time"`
	Date           string `gorm:"not null" json:"date"`
	MaxPlayers     int    `gorm:"not null" json:"maxPlayers"`
	OrganizationID *uint  `json:"organizationId"`
}

type TournamentRequest struct {
	Time           string `json:"time"`
	Date           string `json:"date"`
	MaxPlayers     int    `json:"maxPlayers"`
	OrganizationID *uint  `json:"organizationId"`
}
