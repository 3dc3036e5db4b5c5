package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/ScoreLeague/internal/org"
)

var OrgService *org.OrgService

func RegisterOrgRoutes(g *echo.Group) {
	g.GET("", GetOrganizationsHandler)
	g.POST("", CreateOrganizationHandler)
	g.GET("/:id/users", GetOrgMembersHandler)
	g.PUT("/addUser", AddOrgUserHandler)
	g.PUT("/removeUser", RemoveOrgUserHandler)
}

func GetOrganizationsHandler(c echo.Context) error {
	organizations, err := OrgService.GetOrganizations()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, organizations)
}

func CreateOrganizationHandler(c echo.Context) error {
	var request org.OrganizationRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	organization, err := OrgService.CreateOrganization(&request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, organization)
}

func GetOrgMembersHandler(c echo.Context) error {
	orgID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid organization ID")
	}

	members, errMembers := OrgService.GetMembers(uint(orgID))
	if errMembers != nil {
		return errMembers
	}
	return c.JSON(http.StatusOK, members)
}

func AddOrgUserHandler(c echo.Context) error {
	var request org.MembershipRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	if err := OrgService.AddUser(&request); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User added to organization"})
}

func RemoveOrgUserHandler(c echo.Context) error {
	var request org.MembershipRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	if err := OrgService.RemoveUser(&request); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User removed from organization"})
}
