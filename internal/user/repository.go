package user

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/thesrcielos/ScoreLeague/pkg/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ctx = context.Background()

type UserRepository interface {
	CreateUser(username, email, password string) (*User, error)
	ValidateUser(email, password string) (*User, error)
	GetUser(id uint) (*User, error)
	PlayerExists(id uint) (bool, error)
	GetUsers() ([]UserListItem, error)
}

type DBUserRepository struct{}

func (r *DBUserRepository) CreateUser(username, email, password string) (*User, error) {
	return createUser(username, email, password)
}

func (r *DBUserRepository) ValidateUser(email, password string) (*User, error) {
	return validateUser(email, password)
}

func (r *DBUserRepository) GetUser(id uint) (*User, error) {
	return getUser(id)
}

func (r *DBUserRepository) PlayerExists(id uint) (bool, error) {
	return playerExists(id)
}

func (r *DBUserRepository) GetUsers() ([]UserListItem, error) {
	return getUsers()
}

func createUser(username, email, password string) (*User, error) {
	var exists User
	result := db.DB.Where("username = ? OR email = ?", username, email).First(&exists)
	if result.Error == nil {
		return nil, errors.New("user already exists")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return nil, err
	}
	newUser := User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Points:   100,
		Role:     "user",
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		return nil, err
	}

	// seed the leaderboard cache so later settlement increments apply on
	// top of the starting balance
	if db.Rdb != nil {
		member := redis.Z{Score: float64(newUser.Points), Member: strconv.Itoa(int(newUser.ID))}
		if err := db.Rdb.ZAdd(ctx, "leaderboard", member).Err(); err != nil {
			log.Println("Error seeding leaderboard:", err)
		}
	}

	return &newUser, nil
}

func validateUser(email, password string) (*User, error) {
	var u User
	result := db.DB.Where("email = ?", email).First(&u)
	if result.Error != nil {
		return nil, result.Error
	}
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func getUser(id uint) (*User, error) {
	var u User
	result := db.DB.First(&u, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &u, nil
}

func playerExists(id uint) (bool, error) {
	var count int64
	if err := db.DB.Model(&User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func getUsers() ([]UserListItem, error) {
	users := []UserListItem{}
	err := db.DB.Table("users").
		Select("users.id, users.username, users.points, users.organization_id, users.role, organizations.name AS organization").
		Joins("LEFT JOIN organizations ON organizations.id = users.organization_id").
		Scan(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}
