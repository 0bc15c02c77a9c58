package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/infra/events"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/outbound"
)

// createTestMetrics registers metrics on a private registry so tests do not
// collide on the default one.
func createTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return New("test", reg), reg
}

func TestNew(t *testing.T) {
	m, reg := createTestMetrics(t)

	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.DomainEventsTotal)
	assert.NotNil(t, m.ClassifierRequestsTotal)

	m.RecordRateLimited()
	count, err := testutil.GatherAndCount(reg, "test_http_rate_limited_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New("dup", reg)

	assert.Panics(t, func() { New("dup", reg) })
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	m, _ := createTestMetrics(t)

	t.Run("records request with 2xx status", func(t *testing.T) {
		m.RecordHTTPRequest("GET", "/api/v1/issues", 200, 100*time.Millisecond)

		count := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/issues", "2xx"))
		assert.Equal(t, float64(1), count)
	})

	t.Run("records request with 4xx status", func(t *testing.T) {
		m.RecordHTTPRequest("POST", "/api/v1/teams", 409, 50*time.Millisecond)

		count := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/teams", "4xx"))
		assert.Equal(t, float64(1), count)
	})

	t.Run("records request with 5xx status", func(t *testing.T) {
		m.RecordHTTPRequest("PUT", "/api/v1/teams/:id/issue", 500, 200*time.Millisecond)

		count := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("PUT", "/api/v1/teams/:id/issue", "5xx"))
		assert.Equal(t, float64(1), count)
	})
}

func TestMetrics_EventSubscriber(t *testing.T) {
	m, _ := createTestMetrics(t)

	bus := events.NewBus(zap.NewNop())
	bus.Register(m.EventSubscriber())

	issueID, teamID := uuid.New(), uuid.New()
	bus.Publish(events.NewIssueReportedEvent(issueID, nil))
	bus.Publish(events.NewIssueStatusChangedEvent(issueID, teamID, string(model.IssueStatusReported), string(model.IssueStatusAssigned)))
	bus.Publish(events.NewIssueStatusChangedEvent(issueID, teamID, string(model.IssueStatusAssigned), string(model.IssueStatusResolved)))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.DomainEventsTotal.WithLabelValues(events.IssueReportedType)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.DomainEventsTotal.WithLabelValues(events.IssueStatusChangedType)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.IssueTransitionsTotal.WithLabelValues("Assigned", "Resolved")))
}

type stubClassifier struct {
	err error
}

func (s stubClassifier) Classify(ctx context.Context, description string) (*outbound.Classification, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &outbound.Classification{Category: "Streetlight", Severity: model.SeverityLow}, nil
}

func TestMetrics_InstrumentClassifier(t *testing.T) {
	m, _ := createTestMetrics(t)

	ok := m.InstrumentClassifier(stubClassifier{})
	result, err := ok.Classify(context.Background(), "lamp out")
	require.NoError(t, err)
	assert.Equal(t, "Streetlight", result.Category)

	failing := m.InstrumentClassifier(stubClassifier{err: errors.New("down")})
	_, err = failing.Classify(context.Background(), "lamp out")
	assert.Error(t, err)
	_, _ = failing.Classify(context.Background(), "lamp out")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ClassifierRequestsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.ClassifierRequestsTotal.WithLabelValues("failure")))
}

func TestStatusCodeToString(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{299, "2xx"},
		{300, "3xx"},
		{399, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{499, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
		{100, "unknown"},
		{0, "unknown"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, statusCodeToString(tt.code))
		})
	}
}
