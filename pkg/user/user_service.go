package user

import (
	"Spendwise-Backend/domain"
	"Spendwise-Backend/entities"
	"Spendwise-Backend/pkg/jwt"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
		UpdateLanguage(ctx context.Context, req domain.UpdateLanguageRequest, userID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	email := strings.ToLower(req.Email)

	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	newUser := &entities.User{
		ID:                 uuid.New(),
		Name:               req.Name,
		Email:              email,
		Password:           string(hashedPassword),
		Role:               domain.RoleUser,
		LanguagePreference: "eng",
	}

	if err := s.userRepository.CreateUser(ctx, newUser); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:    newUser.ID.String(),
		Name:  newUser.Name,
		Email: newUser.Email,
		Role:  newUser.Role,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	foundUser, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if foundUser.Suspended {
		return domain.LoginResponse{}, domain.ErrUserSuspended
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(foundUser.ID.String(), foundUser.Role)

	return domain.LoginResponse{
		Token: token,
		Role:  foundUser.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	foundUser, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	return domain.MeResponse{
		ID:                 foundUser.ID.String(),
		Name:               foundUser.Name,
		Email:              foundUser.Email,
		Role:               foundUser.Role,
		LanguagePreference: foundUser.LanguagePreference,
	}, nil
}

func (s *userService) UpdateLanguage(ctx context.Context, req domain.UpdateLanguageRequest, userID string) error {
	foundUser, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	foundUser.LanguagePreference = req.Language
	return s.userRepository.UpdateUser(ctx, foundUser)
}
