package events

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

const (
	PipelineEventStage = "events:pipeline:stage"
	PipelineEventDone  = "events:pipeline:done"
	PipelineEventError = "events:pipeline:error"
)

// PipelineEvent is the payload pushed to the frontend while a
// transformation run progresses through its stages.
type PipelineEvent struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Stage     string            `json:"stage,omitempty"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	RunToken  string            `json:"runToken,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type contextKey string

const runContextKey contextKey = "puppytime/events/run"

// WithRun returns a derived context annotated with the given run token
// so event emitters can automatically scope payloads.
func WithRun(ctx context.Context, runToken string) context.Context {
	if strings.TrimSpace(runToken) == "" {
		return ctx
	}
	return context.WithValue(ctx, runContextKey, runToken)
}

// RunFromContext extracts the run token associated with ctx.
func RunFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(runContextKey).(string); ok {
		return v
	}
	return ""
}

func CreatePipelineEvent(eventType EventType, stage, message string) PipelineEvent {
	return PipelineEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Stage:     stage,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewStage creates an info event for a stage transition.
func NewStage(stage, message string) PipelineEvent {
	return CreatePipelineEvent(EventInfo, stage, message)
}

// NewError creates an error PipelineEvent.
func NewError(stage, message string) PipelineEvent {
	return CreatePipelineEvent(EventError, stage, message)
}

// NewSuccess creates a success PipelineEvent.
func NewSuccess(stage, message string) PipelineEvent {
	return CreatePipelineEvent(EventSuccess, stage, message)
}
