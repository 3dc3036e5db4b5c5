package org

import (
	"github.com/thesrcielos/ScoreLeague/internal/apperrors"
)

type OrgService struct {
	repo OrgRepository
}

func NewOrgService(repo OrgRepository) *OrgService {
	return &OrgService{repo: repo}
}

func (o *OrgService) CreateOrganization(request *OrganizationRequest) (*Organization, error) {
	if request.Name == "" {
		return nil, apperrors.NewAppError(400, "organization name is required", nil)
	}

	return o.repo.CreateOrganization(request.Name)
}

func (o *OrgService) GetOrganizations() ([]Organization, error) {
	return o.repo.GetOrganizations()
}

func (o *OrgService) AddUser(request *MembershipRequest) error {
	if request.UserID == 0 || request.OrgID == 0 {
		return apperrors.NewAppError(400, "userId and orgId are required", nil)
	}

	return o.repo.AddUser(request.UserID, request.OrgID)
}

func (o *OrgService) RemoveUser(request *MembershipRequest) error {
	if request.UserID == 0 {
		return apperrors.NewAppError(400, "userId is required", nil)
	}

	return o.repo.RemoveUser(request.UserID)
}

func (o *OrgService) GetMembers(orgID uint) ([]Member, error) {
	return o.repo.GetMembers(orgID)
}
