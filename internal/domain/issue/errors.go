package issue

import apperrors "github.com/civicteams/server/internal/utils/errors"

// Domain errors for the issue lifecycle.
var (
	ErrIssueNotFound = apperrors.Define(apperrors.ErrNotFound, "issue_not_found", "issue not found")

	// Report validation
	ErrDescriptionRequired = apperrors.Define(apperrors.ErrValidation, "description_required", "description is required")
	ErrDescriptionTooLong  = apperrors.Define(apperrors.ErrValidation, "description_too_long", "description is too long")
	ErrTitleTooLong        = apperrors.Define(apperrors.ErrValidation, "title_too_long", "title is too long")
	ErrLocationRequired    = apperrors.Define(apperrors.ErrValidation, "location_required", "location is required")
	ErrInvalidLocation     = apperrors.Define(apperrors.ErrValidation, "invalid_location", "location must be a point with finite longitude and latitude")
	ErrTooManyImages       = apperrors.Define(apperrors.ErrValidation, "too_many_images", "too many image references")
	ErrInvalidImageRef     = apperrors.Define(apperrors.ErrValidation, "invalid_image_ref", "image reference must be a non-empty storage key")
	ErrInvalidStatus       = apperrors.Define(apperrors.ErrValidation, "invalid_status", "unknown issue status")

	// Transitions
	ErrInvalidTransition = apperrors.Define(apperrors.ErrInvalidState, "invalid_transition", "issue status does not allow this transition")
	ErrIssueResolved     = apperrors.Define(apperrors.ErrTerminalState, "issue_resolved", "issue is resolved and can no longer change")
)
