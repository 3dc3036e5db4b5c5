package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/ScoreLeague/internal/tournament"
)

var TournamentService *tournament.TournamentService

func RegisterTournamentRoutes(g *echo.Group) {
	g.GET("", GetTournamentsHandler)
	g.POST("", CreateTournamentHandler)
}

func GetTournamentsHandler(c echo.Context) error {
	tournaments, err := TournamentService.GetTournaments()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tournaments)
}

func CreateTournamentHandler(c echo.Context) error {
	var request tournament.TournamentRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := TournamentService.CreateTournament(&request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}
