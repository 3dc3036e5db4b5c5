package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/ScoreLeague/internal/user"
)

var UserService *user.UserService

func RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", SignupHandler)
	g.POST("/login", LoginHandler)
}

func RegisterUserRoutes(g *echo.Group) {
	g.GET("", GetUsersHandler)
	g.GET("/:id", GetUserHandler)
}

func SignupHandler(c echo.Context) error {
	var request user.SignupRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	token, err := UserService.Signup(request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"token": token})
}

func LoginHandler(c echo.Context) error {
	var request user.LoginRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	token, err := UserService.Login(request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func GetUsersHandler(c echo.Context) error {
	users, err := UserService.GetUsers()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func GetUserHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	userRetrieved, errUser := UserService.GetUser(uint(id))
	if errUser != nil {
		return errUser
	}
	return c.JSON(http.StatusOK, userRetrieved)
}
