package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys - using constants for consistency and DRY
const (
	attrStatus    = "status"
	attrOperation = "operation"
	attrService   = "service"
	attrTool      = "tool"
	attrAccount   = "account"
	attrGesture   = "gesture"
	attrOutcome   = "outcome"
	attrSource    = "source"
)

// Metrics provides methods for recording observability metrics.
type Metrics struct {
	// MCP Tool metrics
	toolInvocationsTotal metric.Int64Counter
	toolDuration         metric.Float64Histogram

	// Google API metrics
	googleAPIOperationsTotal   metric.Int64Counter
	googleAPIOperationDuration metric.Float64Histogram

	// Scheduling metrics
	gesturesTotal      metric.Int64Counter
	eventsCreatedTotal metric.Int64Counter
	leadSearchesTotal  metric.Int64Counter

	// detailedLabels controls whether high-cardinality labels are included
	detailedLabels bool
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
// The detailedLabels parameter controls whether high-cardinality labels are included.
func NewMetrics(meter metric.Meter, detailedLabels bool) (*Metrics, error) {
	m := &Metrics{
		detailedLabels: detailedLabels,
	}

	var err error

	// MCP Tool Metrics
	m.toolInvocationsTotal, err = meter.Int64Counter(
		"mcp_tool_invocations_total",
		metric.WithDescription("Total number of MCP tool invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_invocations_total counter: %w", err)
	}

	m.toolDuration, err = meter.Float64Histogram(
		"mcp_tool_duration_seconds",
		metric.WithDescription("MCP tool execution duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_duration_seconds histogram: %w", err)
	}

	// Google API Metrics
	m.googleAPIOperationsTotal, err = meter.Int64Counter(
		"google_api_operations_total",
		metric.WithDescription("Total number of Google API operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create google_api_operations_total counter: %w", err)
	}

	m.googleAPIOperationDuration, err = meter.Float64Histogram(
		"google_api_operation_duration_seconds",
		metric.WithDescription("Google API operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create google_api_operation_duration_seconds histogram: %w", err)
	}

	// Scheduling Metrics
	m.gesturesTotal, err = meter.Int64Counter(
		"scheduling_gestures_total",
		metric.WithDescription("Total number of grid scheduling gestures by kind and outcome"),
		metric.WithUnit("{gesture}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduling_gestures_total counter: %w", err)
	}

	m.eventsCreatedTotal, err = meter.Int64Counter(
		"calendar_events_created_total",
		metric.WithDescription("Total number of calendar events created through the scheduling surface"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar_events_created_total counter: %w", err)
	}

	m.leadSearchesTotal, err = meter.Int64Counter(
		"lead_searches_total",
		metric.WithDescription("Total number of lead provider searches"),
		metric.WithUnit("{search}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead_searches_total counter: %w", err)
	}

	return m, nil
}

// RecordToolInvocation records an MCP tool invocation with tool name, status, and duration.
//
// Parameters:
//   - toolName: Name of the MCP tool (e.g., "schedule_week_view", "calendar_create_event")
//   - status: Result status ("success" or "error")
//   - duration: Time taken for the tool execution
func (m *Metrics) RecordToolInvocation(ctx context.Context, toolName, status string, duration time.Duration) {
	if m.toolInvocationsTotal == nil || m.toolDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrTool, toolName),
		attribute.String(attrStatus, status),
	}

	m.toolInvocationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.toolDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordToolInvocationWithAccount records an MCP tool invocation with account info.
// The account label is only included when detailedLabels is enabled, since it is
// high-cardinality.
func (m *Metrics) RecordToolInvocationWithAccount(ctx context.Context, toolName, status, account string, duration time.Duration) {
	if m.toolInvocationsTotal == nil || m.toolDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrTool, toolName),
		attribute.String(attrStatus, status),
	}

	if m.detailedLabels && account != "" {
		attrs = append(attrs, attribute.String(attrAccount, account))
	}

	m.toolInvocationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.toolDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordGoogleAPIOperation records a Google API operation with service, operation,
// status, and duration.
//
// Parameters:
//   - service: Google service name (calendar, people)
//   - operation: Operation type (list, get, create, update, delete, freebusy, etc.)
//   - status: Result status ("success" or "error")
//   - duration: Time taken for the operation
func (m *Metrics) RecordGoogleAPIOperation(ctx context.Context, service, operation, status string, duration time.Duration) {
	if m.googleAPIOperationsTotal == nil || m.googleAPIOperationDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrService, service),
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.googleAPIOperationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.googleAPIOperationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordGesture records a grid scheduling gesture.
//
// Parameters:
//   - gesture: Gesture kind ("click" or "drag")
//   - outcome: Gesture outcome ("completed" or "cancelled")
func (m *Metrics) RecordGesture(ctx context.Context, gesture, outcome string) {
	if m.gesturesTotal == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrGesture, gesture),
		attribute.String(attrOutcome, outcome),
	}

	m.gesturesTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordEventCreated records a calendar event created through the scheduling
// surface. Source indicates how the event was initiated ("click" or "drag").
func (m *Metrics) RecordEventCreated(ctx context.Context, source string) {
	if m.eventsCreatedTotal == nil {
		return // Instrumentation not initialized
	}

	m.eventsCreatedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrSource, source),
	))
}

// RecordLeadSearch records a lead provider search with result status.
// Status should be one of: "success", "error"
func (m *Metrics) RecordLeadSearch(ctx context.Context, status string) {
	if m.leadSearchesTotal == nil {
		return // Instrumentation not initialized
	}

	m.leadSearchesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrStatus, status),
	))
}
