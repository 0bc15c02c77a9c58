package user

import apperrors "github.com/civicteams/server/internal/utils/errors"

// Domain errors for the user directory.
var (
	ErrUserNotFound = apperrors.Define(apperrors.ErrNotFound, "user_not_found", "user not found")
	ErrEmailTaken   = apperrors.Define(apperrors.ErrConflict, "email_exists", "email already registered")
	ErrInvalidName  = apperrors.Define(apperrors.ErrValidation, "invalid_name", "name must be 1-100 characters")
	ErrInvalidEmail = apperrors.Define(apperrors.ErrValidation, "invalid_email", "email address is malformed")
	ErrInvalidRole  = apperrors.Define(apperrors.ErrValidation, "invalid_role", "role must be citizen or business")
)
