package v1

import (
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/ScoreLeague/internal/leaderboard"
	"github.com/thesrcielos/ScoreLeague/internal/user"
)

var LeaderboardService *leaderboard.LeaderboardService

func RegisterLeaderboardRoutes(g *echo.Group) {
	g.GET("", GetLeaderboardHandler)
	g.GET("/friends", GetFriendsLeaderboardHandler)
}

func GetLeaderboardHandler(c echo.Context) error {
	limit := 0
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		limitInt, err := strconv.Atoi(limitParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
		}
		limit = limitInt
	}

	entries, err := LeaderboardService.TopPlayers(limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func GetFriendsLeaderboardHandler(c echo.Context) error {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	claims, ok := token.Claims.(*user.JwtCustomClaims)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}

	entries, err := LeaderboardService.FriendsOf(claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
