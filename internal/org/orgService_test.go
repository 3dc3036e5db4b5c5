package org

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrgService_CreateOrganization(t *testing.T) {
	mockRepo := &OrgRepositoryMock{}
	service := NewOrgService(mockRepo)

	mockRepo.On("CreateOrganization", "Tigers").Return(&Organization{ID: 1, Name: "Tigers"}, nil)

	organization, err := service.CreateOrganization(&OrganizationRequest{Name: "Tigers"})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), organization.ID)
	mockRepo.AssertExpectations(t)
}

func TestOrgService_CreateOrganization_EmptyName(t *testing.T) {
	mockRepo := &OrgRepositoryMock{}
	service := NewOrgService(mockRepo)

	_, err := service.CreateOrganization(&OrganizationRequest{})
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "CreateOrganization")
}

func TestOrgService_AddUser(t *testing.T) {
	mockRepo := &OrgRepositoryMock{}
	service := NewOrgService(mockRepo)

	mockRepo.On("AddUser", uint(2), uint(1)).Return(nil)

	err := service.AddUser(&MembershipRequest{UserID: 2, OrgID: 1})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestOrgService_RemoveUser(t *testing.T) {
	mockRepo := &OrgRepositoryMock{}
	service := NewOrgService(mockRepo)

	mockRepo.On("RemoveUser", uint(2)).Return(nil)

	err := service.RemoveUser(&MembershipRequest{UserID: 2})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestOrgService_GetMembers(t *testing.T) {
	mockRepo := &OrgRepositoryMock{}
	service := NewOrgService(mockRepo)

	members := []Member{{ID: 2, Username: "bob", Points: 100, Role: "user"}}
	mockRepo.On("GetMembers", uint(1)).Return(members, nil)

	result, err := service.GetMembers(1)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	mockRepo.AssertExpectations(t)
}
