package org

import (
	"github.com/thesrcielos/ScoreLeague/internal/apperrors"
	"github.com/thesrcielos/ScoreLeague/internal/user"
	"github.com/thesrcielos/ScoreLeague/pkg/db"
)

type OrgRepository interface {
	CreateOrganization(name string) (*Organization, error)
	GetOrganizations() ([]Organization, error)
	AddUser(userID, orgID uint) error
	RemoveUser(userID uint) error
	GetMembers(orgID uint) ([]Member, error)
}

type DBOrgRepository struct{}

func (r *DBOrgRepository) CreateOrganization(name string) (*Organization, error) {
	return createOrganization(name)
}

func (r *DBOrgRepository) GetOrganizations() ([]Organization, error) {
	return getOrganizations()
}

func (r *DBOrgRepository) AddUser(userID, orgID uint) error {
	return addUser(userID, orgID)
}

func (r *DBOrgRepository) RemoveUser(userID uint) error {
	return removeUser(userID)
}

func (r *DBOrgRepository) GetMembers(orgID uint) ([]Member, error) {
	return getMembers(orgID)
}

func createOrganization(name string) (*Organization, error) {
	organization := Organization{Name: name}
	if err := db.DB.Create(&organization).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error creating organization", err)
	}

	return &organization, nil
}

func getOrganizations() ([]Organization, error) {
	organizations := []Organization{}
	if err := db.DB.Find(&organizations).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error fetching organizations", err)
	}

	return organizations, nil
}

func addUser(userID, orgID uint) error {
	result := db.DB.Model(&user.User{}).
		Where("id = ?", userID).
		Update("organization_id", orgID)
	if result.Error != nil {
		return apperrors.NewAppError(500, "error adding user to organization", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewAppError(404, "user not found", nil)
	}

	return nil
}

func removeUser(userID uint) error {
	result := db.DB.Model(&user.User{}).
		Where("id = ?", userID).
		Update("organization_id", nil)
	if result.Error != nil {
		return apperrors.NewAppError(500, "error removing user from organization", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewAppError(404, "user not found", nil)
	}

	return nil
}

func getMembers(orgID uint) ([]Member, error) {
	members := []Member{}
	err := db.DB.Table("users").
		Select("id, username, points, role").
		Where("organization_id = ?", orgID).
		Scan(&members).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching organization users", err)
	}

	return members, nil
}
