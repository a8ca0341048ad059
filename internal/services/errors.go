package services

import (
	"errors"

	"github.com/sbilibin2017/gw-water-quality/internal/models"
)

// Error variables
var (
	ErrWeakPassword       = errors.New("password must be at least 8 characters long and contain at least one special character")
	ErrInvalidUsername    = errors.New("username must not be empty")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidParameters  = models.ErrInvalidParameters
	ErrClassifier         = errors.New("classifier error")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
