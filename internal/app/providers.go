package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	// Domains
	"github.com/civicteams/server/internal/domain"
	"github.com/civicteams/server/internal/domain/assignment"
	"github.com/civicteams/server/internal/domain/issue"
	"github.com/civicteams/server/internal/domain/team"

	// Inbound adapters
	businesshttp "github.com/civicteams/server/internal/adapter/inbound/http/business"
	invitationhttp "github.com/civicteams/server/internal/adapter/inbound/http/invitation"
	issuehttp "github.com/civicteams/server/internal/adapter/inbound/http/issue"
	teamhttp "github.com/civicteams/server/internal/adapter/inbound/http/team"
	userhttp "github.com/civicteams/server/internal/adapter/inbound/http/user"

	// Ports
	"github.com/civicteams/server/internal/port/outbound"

	// Outbound adapters
	"github.com/civicteams/server/internal/adapter/outbound/auth"
	"github.com/civicteams/server/internal/adapter/outbound/memory"
	"github.com/civicteams/server/internal/adapter/outbound/postgres"
	redisadapter "github.com/civicteams/server/internal/adapter/outbound/redis"
	"github.com/civicteams/server/internal/adapter/outbound/s3"
	"github.com/civicteams/server/internal/adapter/outbound/triage"

	// Infrastructure
	"github.com/civicteams/server/internal/infra/config"
	"github.com/civicteams/server/internal/infra/events"
	"github.com/civicteams/server/internal/infra/httpclient"
	"github.com/civicteams/server/internal/shared/cache"
	"github.com/civicteams/server/internal/shared/database"
	"github.com/civicteams/server/internal/shared/logger"

	// Utils
	"github.com/civicteams/server/internal/utils/metrics"
)

// ===== Infrastructure Providers =====

// InfraSet provides infrastructure dependencies.
var InfraSet = wire.NewSet(
	ProvideLogger,
	ProvideStores,
	ProvideRedisClient,
	ProvideHTTPClient,
	ProvideRateLimiter,
	ProvideIdempotencyStore,
	ProvideRegistry,
	ProvideMetrics,
	ProvideEventBus,
	wire.Bind(new(outbound.EventPublisherPort), new(*events.Bus)),
)

// ProvideLogger creates the root logger.
func ProvideLogger(cfg *config.Config) *zap.Logger {
	return logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}

// Stores bundles the persistence ports of the configured database driver.
type Stores struct {
	Users       outbound.UserDatabasePort
	Teams       outbound.TeamDatabasePort
	Members     outbound.TeamMemberDatabasePort
	Issues      outbound.IssueDatabasePort
	Invitations outbound.InvitationDatabasePort
	Businesses  outbound.BusinessDatabasePort
	Transaction outbound.TransactionPort

	// DB is nil for the memory driver.
	DB *gorm.DB
}

// ProvideStores opens the configured store.
func ProvideStores(cfg *config.Config, log *zap.Logger) (*Stores, func(), error) {
	if cfg.Database.Driver == config.DriverMemory {
		log.Warn("using in-memory store; data is lost on restart")
		store := memory.NewStore()
		return &Stores{
			Users:       memory.NewUserAdapter(store),
			Teams:       memory.NewTeamAdapter(store),
			Members:     memory.NewTeamMemberAdapter(store),
			Issues:      memory.NewIssueAdapter(store),
			Invitations: memory.NewInvitationAdapter(store),
			Businesses:  memory.NewBusinessAdapter(store),
			Transaction: store,
		}, func() {}, nil
	}

	db, err := database.New(context.Background(), &cfg.Database, log)
	if err != nil {
		return nil, nil, fmt.Errorf("init database: %w", err)
	}
	cleanup := func() {
		if err := database.Close(db); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}

	return &Stores{
		Users:       postgres.NewUserAdapter(db),
		Teams:       postgres.NewTeamAdapter(db),
		Members:     postgres.NewTeamMemberAdapter(db),
		Issues:      postgres.NewIssueAdapter(db),
		Invitations: postgres.NewInvitationAdapter(db),
		Businesses:  postgres.NewBusinessAdapter(db),
		Transaction: postgres.NewTransactionAdapter(db),
		DB:          db,
	}, cleanup, nil
}

// ProvideRedisClient connects to Redis when configured. A failed connection
// is logged and the process-local fallbacks are used instead.
func ProvideRedisClient(cfg *config.Config, log *zap.Logger) (*goredis.Client, func()) {
	if cfg.Redis.Address == "" {
		return nil, func() {}
	}
	client, err := cache.NewRedisClient(context.Background(), &cfg.Redis)
	if err != nil {
		log.Warn("Redis connection failed, continuing without it", zap.Error(err))
		return nil, func() {}
	}
	return client, func() { _ = client.Close() }
}

// ProvideHTTPClient creates a shared HTTP client with connection pooling.
func ProvideHTTPClient(cfg *config.Config) *http.Client {
	return httpclient.New(cfg.HTTPClient)
}

// ProvideRateLimiter creates a Redis limiter, or a per-process one without Redis.
func ProvideRateLimiter(redis *goredis.Client) outbound.RateLimiterPort {
	if redis == nil {
		return memory.NewRateLimiter()
	}
	return redisadapter.NewRateLimiter(redis)
}

// ProvideIdempotencyStore creates a Redis store, or a per-process one without Redis.
func ProvideIdempotencyStore(redis *goredis.Client) outbound.IdempotencyStorePort {
	if redis == nil {
		return memory.NewIdempotencyStore()
	}
	return redisadapter.NewIdempotencyStore(redis)
}

// ProvideRegistry creates the Prometheus registry served on /metrics.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a metrics instance.
func ProvideMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.New("civic", reg)
}

// ProvideEventBus creates the domain event bus with metrics and audit logging attached.
func ProvideEventBus(log *zap.Logger, m *metrics.Metrics) *events.Bus {
	bus := events.NewBus(log)
	bus.Register(m.EventSubscriber())

	audit := log.Named("events")
	bus.Register(events.Subscribe(func(e events.Event) error {
		audit.Info("domain event",
			zap.String("type", e.EventType()),
			zap.String("aggregate_type", e.AggregateType()),
			zap.String("aggregate_id", e.AggregateID().String()),
		)
		return nil
	}))
	return bus
}

// ===== Outbound Service Providers =====

// ServiceSet provides clients for external services.
var ServiceSet = wire.NewSet(
	ProvideClassifier,
	ProvideImageURLs,
	ProvideTokenValidator,
)

// ProvideClassifier creates the triage client, or nil when no classifier is
// configured and issues keep their pending labels.
func ProvideClassifier(cfg *config.Config, client *http.Client, log *zap.Logger, m *metrics.Metrics) outbound.ClassifierPort {
	if cfg.Triage.BaseURL == "" {
		log.Warn("triage.base_url not set; issues will not be classified")
		return nil
	}
	return m.InstrumentClassifier(triage.NewClient(triage.Config{
		BaseURL:          cfg.Triage.BaseURL,
		Timeout:          cfg.Triage.Timeout,
		MaxConcurrent:    cfg.Triage.MaxConcurrent,
		FailureThreshold: cfg.Triage.FailureThreshold,
		OpenTimeout:      cfg.Triage.OpenTimeout,
	}, client, log))
}

// ProvideImageURLs creates the image presigner, or nil when storage is not
// configured and responses carry only the stored keys.
func ProvideImageURLs(cfg *config.Config, log *zap.Logger) outbound.ImageURLPort {
	if cfg.Storage.Bucket == "" {
		return nil
	}
	adapter, err := s3.NewImageStorageAdapter(context.Background(), &s3.Config{
		Endpoint:        cfg.Storage.Endpoint,
		Region:          cfg.Storage.Region,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		Bucket:          cfg.Storage.Bucket,
	})
	if err != nil {
		log.Warn("object storage unavailable, image URLs disabled", zap.Error(err))
		return nil
	}
	return adapter
}

// ProvideTokenValidator creates the bearer token validator.
func ProvideTokenValidator(cfg *config.Config) outbound.TokenValidatorPort {
	return auth.NewJWTValidator(&auth.JWTConfig{
		Secret: cfg.Auth.JWTSecret,
		Issuer: cfg.Auth.Issuer,
	})
}

// ===== Domain Providers =====

// DomainSet provides the domain registry.
var DomainSet = wire.NewSet(
	ProvideDomain,
)

// ProvideDomain wires every domain to the selected store. The cleanup waits
// for in-flight background classifications.
func ProvideDomain(
	cfg *config.Config,
	stores *Stores,
	classifier outbound.ClassifierPort,
	publisher outbound.EventPublisherPort,
	log *zap.Logger,
) (*domain.Domain, func()) {
	issueCfg := issue.DefaultConfig()
	issueCfg.ClassifyTimeout = cfg.Triage.Timeout
	issueCfg.ClassifyConcurrency = int(cfg.Triage.MaxConcurrent)

	d := domain.NewDomain(&domain.OutboundPorts{
		UserDB:         stores.Users,
		TeamDB:         stores.Teams,
		MemberDB:       stores.Members,
		IssueDB:        stores.Issues,
		InvitationDB:   stores.Invitations,
		BusinessDB:     stores.Businesses,
		Transaction:    stores.Transaction,
		Classifier:     classifier,
		EventPublisher: publisher,
	}, &domain.Config{
		Issue:      issueCfg,
		Team:       team.DefaultConfig(),
		Assignment: assignment.DefaultConfig(),
	}, log)

	return d, d.Shutdown
}

// ===== HTTP Handler Providers =====

// HandlerSet provides all HTTP handlers.
var HandlerSet = wire.NewSet(
	ProvideUserHandler,
	ProvideIssueHandler,
	ProvideTeamHandler,
	ProvideInvitationHandler,
	ProvideBusinessHandler,
)

// ProvideUserHandler creates the user handler.
func ProvideUserHandler(d *domain.Domain) *userhttp.Handler {
	return userhttp.NewHandler(d.User, d.Team)
}

// ProvideIssueHandler creates the issue handler.
func ProvideIssueHandler(cfg *config.Config, d *domain.Domain, images outbound.ImageURLPort) *issuehttp.Handler {
	return issuehttp.NewHandler(d.Issue, images, cfg.Storage.PresignExpiry)
}

// ProvideTeamHandler creates the team handler.
func ProvideTeamHandler(d *domain.Domain) *teamhttp.Handler {
	return teamhttp.NewHandler(d.Team, d.Assignment)
}

// ProvideInvitationHandler creates the invitation handler.
func ProvideInvitationHandler(d *domain.Domain) *invitationhttp.Handler {
	return invitationhttp.NewHandler(d.Invitation)
}

// ProvideBusinessHandler creates the business directory handler.
func ProvideBusinessHandler(cfg *config.Config, d *domain.Domain, images outbound.ImageURLPort) *businesshttp.Handler {
	return businesshttp.NewHandler(d.Business, images, cfg.Storage.PresignExpiry)
}

// AppSet is the complete provider set.
var AppSet = wire.NewSet(
	InfraSet,
	ServiceSet,
	DomainSet,
	HandlerSet,
)
