package domain

import (
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/domain/assignment"
	"github.com/civicteams/server/internal/domain/business"
	"github.com/civicteams/server/internal/domain/invitation"
	"github.com/civicteams/server/internal/domain/issue"
	"github.com/civicteams/server/internal/domain/team"
	"github.com/civicteams/server/internal/domain/user"
	"github.com/civicteams/server/internal/port/outbound"
)

// Domain holds all domain services.
// This is the central registry for all business logic.
type Domain struct {
	// User handles registration and the user directory.
	User *user.Domain

	// Issue handles reporting, classification and the issue lifecycle.
	Issue *issue.Domain

	// Team handles teams and their membership.
	Team *team.Domain

	// Assignment links teams to the issue they work on.
	Assignment *assignment.Domain

	// Invitation handles invitations to join a team.
	Invitation *invitation.Domain

	// Business handles the local business directory.
	Business *business.Domain
}

// OutboundPorts holds all outbound port implementations.
type OutboundPorts struct {
	UserDB       outbound.UserDatabasePort
	TeamDB       outbound.TeamDatabasePort
	MemberDB     outbound.TeamMemberDatabasePort
	IssueDB      outbound.IssueDatabasePort
	InvitationDB outbound.InvitationDatabasePort
	BusinessDB   outbound.BusinessDatabasePort
	Transaction  outbound.TransactionPort

	// Classifier may be nil, in which case issues keep their pending labels.
	Classifier     outbound.ClassifierPort
	EventPublisher outbound.EventPublisherPort
}

// Config holds per-domain configuration. Nil entries use the domain defaults.
type Config struct {
	Issue      *issue.Config
	Team       *team.Config
	Assignment *assignment.Config
}

// NewDomain creates domain services with dependencies.
func NewDomain(ports *OutboundPorts, cfg *Config, logger *zap.Logger) *Domain {
	if cfg == nil {
		cfg = &Config{}
	}

	issueDomain := issue.NewDomain(
		ports.IssueDB,
		ports.Transaction,
		ports.Classifier,
		ports.EventPublisher,
		cfg.Issue,
		logger.Named("issue"),
	)

	teamDomain := team.NewDomain(
		ports.TeamDB,
		ports.MemberDB,
		ports.UserDB,
		ports.InvitationDB,
		issueDomain,
		ports.Transaction,
		ports.EventPublisher,
		cfg.Team,
		logger.Named("team"),
	)

	return &Domain{
		User:  user.NewDomain(ports.UserDB, logger.Named("user")),
		Issue: issueDomain,
		Team:  teamDomain,
		Assignment: assignment.NewDomain(
			ports.TeamDB,
			ports.IssueDB,
			ports.UserDB,
			issueDomain,
			ports.Transaction,
			ports.EventPublisher,
			cfg.Assignment,
			logger.Named("assignment"),
		),
		Invitation: invitation.NewDomain(
			ports.TeamDB,
			ports.InvitationDB,
			teamDomain,
			ports.Transaction,
			ports.EventPublisher,
			logger.Named("invitation"),
		),
		Business: business.NewDomain(
			ports.BusinessDB,
			ports.UserDB,
			ports.Transaction,
			ports.EventPublisher,
			logger.Named("business"),
		),
	}
}

// Shutdown stops background work started by the domains, waiting for
// anything already running.
func (d *Domain) Shutdown() {
	d.Issue.Stop()
}
