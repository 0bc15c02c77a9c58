package events

import "github.com/google/uuid"

// Event type constants.
const (
	IssueReportedType       = "IssueReported"
	IssueClassifiedType     = "IssueClassified"
	IssueStatusChangedType  = "IssueStatusChanged"
	TeamCreatedType         = "TeamCreated"
	TeamDisbandedType       = "TeamDisbanded"
	MemberJoinedType        = "MemberJoined"
	MemberLeftType          = "MemberLeft"
	InvitationSentType      = "InvitationSent"
	InvitationRespondedType = "InvitationResponded"
	BusinessListedType      = "BusinessListed"
	BusinessUpdatedType     = "BusinessUpdated"
	BusinessRemovedType     = "BusinessRemoved"
)

// AllTypes lists every event type the service publishes.
var AllTypes = []string{
	IssueReportedType,
	IssueClassifiedType,
	IssueStatusChangedType,
	TeamCreatedType,
	TeamDisbandedType,
	MemberJoinedType,
	MemberLeftType,
	InvitationSentType,
	InvitationRespondedType,
	BusinessListedType,
	BusinessUpdatedType,
	BusinessRemovedType,
}

// IssueReportedEvent is emitted when a new issue is stored.
type IssueReportedEvent struct {
	BaseEvent
	ReporterID *uuid.UUID `json:"reporter_id,omitempty"`
}

// NewIssueReportedEvent creates a new IssueReportedEvent.
func NewIssueReportedEvent(issueID uuid.UUID, reporterID *uuid.UUID) *IssueReportedEvent {
	return &IssueReportedEvent{
		BaseEvent:  NewBaseEvent(IssueReportedType, issueID, "Issue"),
		ReporterID: reporterID,
	}
}

// IssueClassifiedEvent is emitted when classifier labels are applied.
type IssueClassifiedEvent struct {
	BaseEvent
	Category string `json:"category"`
	Severity string `json:"severity"`
}

// NewIssueClassifiedEvent creates a new IssueClassifiedEvent.
func NewIssueClassifiedEvent(issueID uuid.UUID, category, severity string) *IssueClassifiedEvent {
	return &IssueClassifiedEvent{
		BaseEvent: NewBaseEvent(IssueClassifiedType, issueID, "Issue"),
		Category:  category,
		Severity:  severity,
	}
}

// IssueStatusChangedEvent is emitted on every lifecycle transition.
type IssueStatusChangedEvent struct {
	BaseEvent
	From   string    `json:"from"`
	To     string    `json:"to"`
	TeamID uuid.UUID `json:"team_id"`
}

// NewIssueStatusChangedEvent creates a new IssueStatusChangedEvent.
func NewIssueStatusChangedEvent(issueID, teamID uuid.UUID, from, to string) *IssueStatusChangedEvent {
	return &IssueStatusChangedEvent{
		BaseEvent: NewBaseEvent(IssueStatusChangedType, issueID, "Issue"),
		From:      from,
		To:        to,
		TeamID:    teamID,
	}
}

// TeamEvent is emitted for team lifecycle and membership changes.
// UserID is the founder, the joining or departing member, depending on type.
type TeamEvent struct {
	BaseEvent
	UserID uuid.UUID `json:"user_id"`
}

// NewTeamEvent creates a new TeamEvent of the given type.
func NewTeamEvent(eventType string, teamID, userID uuid.UUID) *TeamEvent {
	return &TeamEvent{
		BaseEvent: NewBaseEvent(eventType, teamID, "Team"),
		UserID:    userID,
	}
}

// InvitationEvent is emitted when an invitation is sent or answered.
type InvitationEvent struct {
	BaseEvent
	TeamID      uuid.UUID `json:"team_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Decision    string    `json:"decision,omitempty"`
}

// NewInvitationEvent creates a new InvitationEvent of the given type.
func NewInvitationEvent(eventType string, invitationID, teamID, recipientID uuid.UUID, decision string) *InvitationEvent {
	return &InvitationEvent{
		BaseEvent:   NewBaseEvent(eventType, invitationID, "Invitation"),
		TeamID:      teamID,
		RecipientID: recipientID,
		Decision:    decision,
	}
}

// BusinessEvent is emitted when a business listing is created, changed or removed.
type BusinessEvent struct {
	BaseEvent
	OwnerID uuid.UUID `json:"owner_id"`
}

// NewBusinessEvent creates a new BusinessEvent of the given type.
func NewBusinessEvent(eventType string, businessID, ownerID uuid.UUID) *BusinessEvent {
	return &BusinessEvent{
		BaseEvent: NewBaseEvent(eventType, businessID, "Business"),
		OwnerID:   ownerID,
	}
}
