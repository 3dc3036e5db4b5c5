package org

import (
	"github.com/stretchr/testify/mock"
)

type OrgRepositoryMock struct {
	mock.Mock
}

func (m *OrgRepositoryMock) CreateOrganization(name string) (*Organization, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Organization), args.Error(1)
}

func (m *OrgRepositoryMock) GetOrganizations() ([]Organization, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Organization), args.Error(1)
}

func (m *OrgRepositoryMock) AddUser(userID, orgID uint) error {
	args := m.Called(userID, orgID)
	return args.Error(0)
}

func (m *OrgRepositoryMock) RemoveUser(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *OrgRepositoryMock) GetMembers(orgID uint) ([]Member, error) {
	args := m.Called(orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Member), args.Error(1)
}
