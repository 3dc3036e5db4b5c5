package user

import (
	"errors"

	"github.com/thesrcielos/ScoreLeague/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (u *UserService) Signup(request SignupRequest) (string, error) {
	if request.Username == "" || request.Email == "" || request.Password == "" {
		return "", apperrors.NewAppError(400, "username, email and password are required", nil)
	}

	userRetrieved, err := u.repo.CreateUser(request.Username, request.Email, request.Password)
	if err != nil {
		return "", apperrors.NewAppError(400, "user already exists", err)
	}

	token, errJWT := GenerateJWT(userRetrieved.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) Login(request LoginRequest) (string, error) {
	userRetrieved, err := u.repo.ValidateUser(request.Email, request.Password)
	if err != nil {
		return "", apperrors.NewAppError(401, "invalid credentials", errors.New("invalid credentials"))
	}
	token, errJWT := GenerateJWT(userRetrieved.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) GetUser(id uint) (*UserResponse, error) {
	userRetrieved, err := u.repo.GetUser(id)
	if err != nil {
		return nil, err
	}

	if userRetrieved == nil {
		return nil, apperrors.NewAppError(404, "user not found", errors.New("user not found"))
	}

	response := &UserResponse{
		ID:             userRetrieved.ID,
		Username:       userRetrieved.Username,
		Email:          userRetrieved.Email,
		Points:         userRetrieved.Points,
		OrganizationID: userRetrieved.OrganizationID,
		Role:           userRetrieved.Role,
	}
	return response, nil
}

func (u *UserService) GetUsers() ([]UserListItem, error) {
	users, err := u.repo.GetUsers()
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching users", err)
	}

	return users, nil
}
