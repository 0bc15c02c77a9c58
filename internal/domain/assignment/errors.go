package assignment

import apperrors "github.com/civicteams/server/internal/utils/errors"

// Domain errors for issue assignment.
var (
	ErrTeamHasIssue   = apperrors.Define(apperrors.ErrConflict, "team_has_issue", "team already has a current issue")
	ErrIssueClaimed   = apperrors.Define(apperrors.ErrConflict, "issue_already_assigned", "issue is already assigned to a team")
	ErrNoCurrentIssue = apperrors.Define(apperrors.ErrInvalidOperation, "no_current_issue", "team has no current issue")
)
