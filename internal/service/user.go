package service

import (
	"context"
	"errors"
	"strings"

	"shopping-backend/internal/apperr"
	"shopping-backend/internal/auth"
	"shopping-backend/internal/dto"
	"shopping-backend/internal/repository"

	"gorm.io/gorm"
)

type UserService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
	tokens   auth.TokenProvider
}

func NewUserService(
	userRepo repository.UserRepository,
	tokens auth.TokenProvider,
) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if !validPassword(req.Password) {
		return nil, apperr.ErrInvalidPassword
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrInvalidEmail
		}
		return nil, ledgerErr(err)
	}

	if user.Password != req.Password {
		return nil, apperr.ErrInvalidPassword
	}

	accessToken, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{AccessToken: accessToken}, nil
}

// validPassword is the policy ^(?=.*[a-z]).{4,20}$ spelled out: 4 to 20
// characters with at least one lowercase letter. Go's regexp has no
// lookahead, so the two conditions are checked separately.
func validPassword(password string) bool {
	if len(password) < 4 || len(password) > 20 {
		return false
	}
	return strings.ContainsFunc(password, func(r rune) bool {
		return r >= 'a' && r <= 'z'
	})
}
