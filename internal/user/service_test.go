package user

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockGenerateJWT is a helper to override GenerateJWT in tests
var mockGenerateJWT func(id uint) (string, error)

func TestMain(m *testing.M) {
	// Patch GenerateJWT for all tests
	orig := GenerateJWT
	GenerateJWT = func(id uint) (string, error) {
		if mockGenerateJWT != nil {
			return mockGenerateJWT(id)
		}
		return orig(id)
	}
	code := m.Run()
	GenerateJWT = orig
	os.Exit(code)
}

func TestUserService_Signup(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	created := &User{ID: 1, Username: "test", Email: "test@mail.com"}
	mockRepo.On("CreateUser", "test", "test@mail.com", "pass").Return(created, nil)
	mockGenerateJWT = func(id uint) (string, error) { return "token123", nil }

	token, err := service.Signup(SignupRequest{Username: "test", Email: "test@mail.com", Password: "pass"})
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Signup_MissingFields(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	_, err := service.Signup(SignupRequest{Username: "test"})
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "CreateUser")
}

func TestUserService_Signup_Error(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)
	mockRepo.On("CreateUser", "err", "err@mail.com", "fail").Return(nil, errors.New("fail"))

	_, err := service.Signup(SignupRequest{Username: "err", Email: "err@mail.com", Password: "fail"})
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Login(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	validated := &User{ID: 2, Username: "foo", Email: "foo@mail.com"}
	mockRepo.On("ValidateUser", "foo@mail.com", "bar").Return(validated, nil)
	mockGenerateJWT = func(id uint) (string, error) { return "tok456", nil }

	token, err := service.Login(LoginRequest{Email: "foo@mail.com", Password: "bar"})
	assert.NoError(t, err)
	assert.Equal(t, "tok456", token)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("ValidateUser", "foo@mail.com", "wrong").Return(nil, errors.New("bad password"))

	_, err := service.Login(LoginRequest{Email: "foo@mail.com", Password: "wrong"})
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUser(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	orgID := uint(7)
	mockRepo.On("GetUser", uint(3)).Return(&User{
		ID:             3,
		Username:       "alice",
		Email:          "alice@mail.com",
		Points:         104,
		OrganizationID: &orgID,
		Role:           "user",
	}, nil)

	resp, err := service.GetUser(3)
	assert.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, 104, resp.Points)
	assert.Equal(t, &orgID, resp.OrganizationID)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("GetUser", uint(99)).Return(nil, nil)

	_, err := service.GetUser(99)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUsers(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	users := []UserListItem{
		{ID: 1, Username: "alice", Points: 110, Organization: "Tigers"},
		{ID: 2, Username: "bob", Points: 95},
	}
	mockRepo.On("GetUsers").Return(users, nil)

	result, err := service.GetUsers()
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Tigers", result[0].Organization)
	mockRepo.AssertExpectations(t)
}
