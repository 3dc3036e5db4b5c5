package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/ScoreLeague/internal/friends"
)

var FriendService *friends.FriendService

func RegisterFriendRoutes(g *echo.Group) {
	g.GET("/:userId", GetFriendsHandler)
	g.PUT("/add", AddFriendHandler)
	g.PUT("/remove", RemoveFriendHandler)
}

func GetFriendsHandler(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	friendsList, errFriends := FriendService.GetFriends(uint(userID))
	if errFriends != nil {
		return errFriends
	}
	return c.JSON(http.StatusOK, friendsList)
}

func AddFriendHandler(c echo.Context) error {
	var request friends.FriendRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	if err := FriendService.AddFriend(&request); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Friend added"})
}

func RemoveFriendHandler(c echo.Context) error {
	var request friends.FriendRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	if err := FriendService.RemoveFriend(&request); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Friend removed"})
}
