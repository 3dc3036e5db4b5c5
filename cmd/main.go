package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	api_middleware "github.com/thesrcielos/ScoreLeague/api/middleware"
	v1 "github.com/thesrcielos/ScoreLeague/api/v1"
	"github.com/thesrcielos/ScoreLeague/internal/apperrors"
	"github.com/thesrcielos/ScoreLeague/internal/friends"
	"github.com/thesrcielos/ScoreLeague/internal/leaderboard"
	"github.com/thesrcielos/ScoreLeague/internal/match"
	"github.com/thesrcielos/ScoreLeague/internal/org"
	"github.com/thesrcielos/ScoreLeague/internal/tournament"
	"github.com/thesrcielos/ScoreLeague/internal/user"
	"github.com/thesrcielos/ScoreLeague/pkg/db"
	"github.com/thesrcielos/ScoreLeague/websocket"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	db.Init()
	db.DB.AutoMigrate(
		&user.User{},
		&org.Organization{},
		&tournament.Tournament{},
		&match.Match{},
		&match.Participant{},
		&friends.Friend{},
	)

	userRepo := &user.DBUserRepository{}
	v1.UserService = user.NewUserService(userRepo)
	v1.MatchService = match.NewMatchService(
		&match.DBMatchRepository{},
		userRepo,
		match.NewRedisEventPublisher(db.Rdb),
	)
	v1.FriendService = friends.NewFriendService(&friends.DBFriendRepository{})
	v1.OrgService = org.NewOrgService(&org.DBOrgRepository{})
	v1.TournamentService = tournament.NewTournamentService(&tournament.DBTournamentRepository{})
	boardRepo := leaderboard.NewRedisLeaderboardRepository(db.Rdb)
	if err := boardRepo.Rebuild(); err != nil {
		log.Println("leaderboard cache rebuild failed:", err)
	}
	v1.LeaderboardService = leaderboard.NewLeaderboardService(boardRepo)

	e := echo.New()
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api/v1")
	v1.RegisterAuthRoutes(api.Group("/auth"))

	jwtMiddleware := api_middleware.SetupJWTMiddleware()

	users := api.Group("/users")
	users.Use(jwtMiddleware)
	v1.RegisterUserRoutes(users)

	matches := api.Group("/matches")
	matches.Use(jwtMiddleware)
	v1.RegisterMatchRoutes(matches)

	friendRoutes := api.Group("/friends")
	friendRoutes.Use(jwtMiddleware)
	v1.RegisterFriendRoutes(friendRoutes)

	orgs := api.Group("/organizations")
	orgs.Use(jwtMiddleware)
	v1.RegisterOrgRoutes(orgs)

	tournaments := api.Group("/tournaments")
	tournaments.Use(jwtMiddleware)
	v1.RegisterTournamentRoutes(tournaments)

	board := api.Group("/leaderboard")
	board.Use(jwtMiddleware)
	v1.RegisterLeaderboardRoutes(board)

	if err := websocket.SubscribeFeed(); err != nil {
		log.Println("match feed unavailable:", err)
	}
	e.GET("/feed", websocket.FeedHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

func httpErrorHandler(err error, c echo.Context) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if !c.Response().Committed {
			c.JSON(appErr.Code, echo.Map{"error": appErr.Message})
		}
		return
	}
	c.Echo().DefaultHTTPErrorHandler(err, c)
}
