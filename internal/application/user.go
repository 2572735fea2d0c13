package application

import (
	"errors"
	"strings"
	"time"

	"github.com/leadradar/leadradar-api/internal/api/middleware"
	"github.com/leadradar/leadradar-api/internal/config"
	"github.com/leadradar/leadradar-api/internal/domain/account"
	"github.com/leadradar/leadradar-api/internal/domain/user"
	"github.com/leadradar/leadradar-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

// LoginUser checks the credentials and issues a session token. The email is
// matched case-insensitively.
func (s *UserService) LoginUser(email, password string) (user.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	ttl := time.Duration(config.SessionMaxAgeDays) * 24 * time.Hour
	token, err := middleware.GenerateToken(u.ID, u.AccountID, u.Email, ttl)
	if err != nil {
		return user.User{}, "", err
	}

	return u, token, nil
}

// RegisterAccount onboards a tenant: the account and its OWNER user are
// created in one transaction.
func (s *UserService) RegisterAccount(input user.RegisterInput) (user.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.Repos.User.GetUserByEmail(email); err == nil {
		return user.User{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, err
	}

	var owner user.User
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		acc := &account.Account{Name: input.AccountName}
		if err := tx.User.CreateAccount(acc); err != nil {
			return err
		}

		owner = user.User{
			AccountID:    acc.ID,
			Email:        email,
			Name:         input.Name,
			Role:         user.RoleOwner,
			PasswordHash: string(hashed),
		}
		return tx.User.SaveUser(&owner)
	})
	if err != nil {
		return user.User{}, err
	}

	return owner, nil
}

func (s *UserService) GetUser(id uint) (user.User, error) {
	return s.Repos.User.GetUserRawByID(id)
}
