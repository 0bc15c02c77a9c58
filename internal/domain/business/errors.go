package business

import apperrors "github.com/civicteams/server/internal/utils/errors"

// Domain errors for the business directory.
var (
	ErrBusinessNotFound = apperrors.Define(apperrors.ErrNotFound, "business_not_found", "business listing not found")
	ErrNotBusinessUser  = apperrors.Define(apperrors.ErrForbidden, "not_business_account", "only business accounts can own a listing")
	ErrListingExists    = apperrors.Define(apperrors.ErrConflict, "business_listing_exists", "account already has a business listing")

	// Listing validation
	ErrInvalidName         = apperrors.Define(apperrors.ErrValidation, "invalid_business_name", "name must be 1-100 characters")
	ErrDescriptionRequired = apperrors.Define(apperrors.ErrValidation, "description_required", "description is required")
	ErrDescriptionTooLong  = apperrors.Define(apperrors.ErrValidation, "description_too_long", "description is too long")
	ErrCategoryRequired    = apperrors.Define(apperrors.ErrValidation, "category_required", "category is required")
	ErrAddressRequired     = apperrors.Define(apperrors.ErrValidation, "address_required", "address is required")
	ErrPhoneRequired       = apperrors.Define(apperrors.ErrValidation, "phone_required", "phone number is required")
	ErrInvalidEmail        = apperrors.Define(apperrors.ErrValidation, "invalid_email", "email address is malformed")
	ErrInvalidWebsite      = apperrors.Define(apperrors.ErrValidation, "invalid_website", "website must be an http or https URL")
	ErrInvalidHours        = apperrors.Define(apperrors.ErrValidation, "invalid_hours", "hours must map weekdays to HH:MM open and close times")
	ErrLocationRequired    = apperrors.Define(apperrors.ErrValidation, "location_required", "location is required")
	ErrInvalidLocation     = apperrors.Define(apperrors.ErrValidation, "invalid_location", "location must be a point with finite longitude and latitude")
	ErrTooManyImages       = apperrors.Define(apperrors.ErrValidation, "too_many_images", "too many image references")
	ErrInvalidImageRef     = apperrors.Define(apperrors.ErrValidation, "invalid_image_ref", "image reference must be a non-empty storage key")
)
