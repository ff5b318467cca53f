// Package service implements account registration, lookup and credential
// verification. Lookups return the public projection; the full row with the
// password digest never leaves this package.
package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcmikius/TILApp/pkg/core/user/model"
	"github.com/mcmikius/TILApp/pkg/core/user/repository/dao"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password, so a caller can not probe which usernames exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	repo dao.UserRepository
}

func NewUserService(repo dao.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register hashes the password before anything is persisted and returns the
// public projection of the created account.
func (s *UserService) Register(ctx context.Context, name, username, password string) (model.Public, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.Public{}, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		Name:     name,
		Username: username,
		Password: string(hashed),
	}

	if err := s.repo.Create(ctx, &user); err != nil {
		return model.Public{}, err
	}

	return user.ToPublic(), nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (model.Public, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Public{}, err
	}
	return user.ToPublic(), nil
}

func (s *UserService) List(ctx context.Context) ([]model.Public, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	publics := make([]model.Public, 0, len(users))
	for i := range users {
		publics = append(publics, users[i].ToPublic())
	}
	return publics, nil
}

// Authenticate verifies the username/password pair against the stored digest.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (model.Public, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return model.Public{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return model.Public{}, ErrInvalidCredentials
	}

	return user.ToPublic(), nil
}
