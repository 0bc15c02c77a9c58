package team

import apperrors "github.com/civicteams/server/internal/utils/errors"

// Domain errors for the team registry.
var (
	// Team errors
	ErrTeamNotFound    = apperrors.Define(apperrors.ErrNotFound, "team_not_found", "team not found")
	ErrInvalidTeamName = apperrors.Define(apperrors.ErrValidation, "invalid_team_name", "team name must be 1-100 characters")
	ErrTeamNameTaken   = apperrors.Define(apperrors.ErrConflict, "team_name_taken", "team name already taken")
	ErrUserHasNoTeam   = apperrors.Define(apperrors.ErrNotFound, "user_has_no_team", "user does not belong to a team")

	// Authority errors
	ErrNotLeader          = apperrors.Define(apperrors.ErrForbidden, "not_team_leader", "only the team leader can do this")
	ErrBusinessCannotLead = apperrors.Define(apperrors.ErrForbidden, "business_cannot_create_team", "business accounts cannot create teams")

	// Membership errors
	ErrMemberNotFound      = apperrors.Define(apperrors.ErrNotFound, "member_not_found", "user is not a member of this team")
	ErrAlreadyMember       = apperrors.Define(apperrors.ErrConflict, "already_member", "user is already a member of this team")
	ErrMemberOfAnotherTeam = apperrors.Define(apperrors.ErrConflict, "member_of_another_team", "user already belongs to another team")
	ErrAlreadyLeader       = apperrors.Define(apperrors.ErrConflict, "already_leader", "user already leads a team")
	ErrBusinessUser        = apperrors.Define(apperrors.ErrConflict, "business_cannot_join_team", "business accounts cannot join teams")
	ErrCannotRemoveLeader  = apperrors.Define(apperrors.ErrInvalidOperation, "cannot_remove_leader", "the leader cannot be removed; disband the team instead")
	ErrLeaderCannotLeave   = apperrors.Define(apperrors.ErrInvalidOperation, "leader_cannot_leave", "the leader cannot leave; disband the team instead")
)
