package invitation

import apperrors "github.com/civicteams/server/internal/utils/errors"

// Domain errors for invitations.
var (
	ErrInvitationNotFound  = apperrors.Define(apperrors.ErrNotFound, "invitation_not_found", "invitation not found")
	ErrNotRecipient        = apperrors.Define(apperrors.ErrForbidden, "not_invitation_recipient", "only the recipient can respond to an invitation")
	ErrDuplicateInvitation = apperrors.Define(apperrors.ErrConflict, "invitation_pending", "a pending invitation to this user already exists")
	ErrInvalidDecision     = apperrors.Define(apperrors.ErrValidation, "invalid_decision", "decision must be accept or decline")
	ErrSelfInvitation      = apperrors.Define(apperrors.ErrValidation, "self_invitation", "cannot invite yourself")
)
