package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/ScoreLeague/internal/match"
)

const INVALID_REQUEST = "invalid request"

var MatchService *match.MatchService

func RegisterMatchRoutes(g *echo.Group) {
	g.POST("", SettleMatchHandler)
	g.GET("", GetMatchesHandler)
	g.GET("/:userId", GetRecentMatchesHandler)
}

func SettleMatchHandler(c echo.Context) error {
	var request match.MatchRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	result, err := MatchService.Settle(&request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"match": result,
	})
}

func GetMatchesHandler(c echo.Context) error {
	matches, err := MatchService.GetMatches()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"matches": matches,
	})
}

func GetRecentMatchesHandler(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	limit := 5
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		limitInt, errLimit := strconv.Atoi(limitParam)
		if errLimit != nil || limitInt <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
		}
		limit = limitInt
	}

	matches, errMatches := MatchService.GetRecentMatches(uint(userID), limit)
	if errMatches != nil {
		return errMatches
	}
	return c.JSON(http.StatusOK, echo.Map{
		"matches": matches,
	})
}
