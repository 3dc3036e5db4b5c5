package leaderboard

type LeaderboardService struct {
	repo LeaderboardRepository
}

func NewLeaderboardService(repo LeaderboardRepository) *LeaderboardService {
	return &LeaderboardService{repo: repo}
}

func (l *LeaderboardService) TopPlayers(limit int) ([]Entry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	return l.repo.TopPlayers(limit)
}

func (l *LeaderboardService) FriendsOf(userID uint) ([]Entry, error) {
	return l.repo.FriendsOf(userID)
}
