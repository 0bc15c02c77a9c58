package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	businesshttp "github.com/civicteams/server/internal/adapter/inbound/http/business"
	invitationhttp "github.com/civicteams/server/internal/adapter/inbound/http/invitation"
	issuehttp "github.com/civicteams/server/internal/adapter/inbound/http/issue"
	teamhttp "github.com/civicteams/server/internal/adapter/inbound/http/team"
	userhttp "github.com/civicteams/server/internal/adapter/inbound/http/user"
	"github.com/civicteams/server/internal/domain"
	"github.com/civicteams/server/internal/infra/config"
	"github.com/civicteams/server/internal/infra/events"
	"github.com/civicteams/server/internal/port/outbound"
	"github.com/civicteams/server/internal/utils/metrics"
)

// Dependencies holds all injected dependencies.
type Dependencies struct {
	Config           *config.Config
	Logger           *zap.Logger
	Stores           *Stores
	Redis            *goredis.Client
	HTTPClient       *http.Client
	RateLimiter      outbound.RateLimiterPort
	IdempotencyStore outbound.IdempotencyStorePort
	Registry         *prometheus.Registry
	Metrics          *metrics.Metrics
	Events           *events.Bus
	TokenValidator   outbound.TokenValidatorPort

	Domain *domain.Domain

	// HTTP Handlers
	UserHandler       *userhttp.Handler
	IssueHandler      *issuehttp.Handler
	TeamHandler       *teamhttp.Handler
	InvitationHandler *invitationhttp.Handler
	BusinessHandler   *businesshttp.Handler
}
