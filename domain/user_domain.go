package domain

import (
	"errors"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "user profile retrieved successfully"
	MessageSuccessUpdateLanguage = "language updated successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to retrieve user profile"
	MessageFailedUpdateLanguage = "failed to update language"

	ErrEmailAlreadyExists = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrUserSuspended      = errors.New("user account suspended")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	MeResponse struct {
		ID                 string `json:"id"`
		Name               string `json:"name"`
		Email              string `json:"email"`
		Role               string `json:"role"`
		LanguagePreference string `json:"language_preference"`
	}

	UpdateLanguageRequest struct {
		Language string `json:"language" validate:"required"`
	}
)
