package services

import (
	"log/slog"
	"time"

	"github.com/LunaaVerse/ttm-sub002/internal/models"
	"github.com/google/uuid"
)

// EventType names a lifecycle event a notification system may subscribe to.
type EventType string

const (
	EventReportCreated  EventType = "report.created"
	EventReportVerified EventType = "report.verified"
	EventReportAssigned EventType = "report.assigned"
	EventReportResolved EventType = "report.resolved"
	EventReportRejected EventType = "report.rejected"
	EventReportUpdated  EventType = "report.updated"
)

// Event is emitted after a lifecycle mutation commits.
type Event struct {
	Type       EventType
	ReportID   uint
	Status     models.Status
	ActorID    uuid.UUID
	AssignedTo *uuid.UUID
	OccurredAt time.Time
}

// Publisher receives lifecycle events. Publish is called after the
// transaction commits, so subscribers never observe rolled-back state.
type Publisher interface {
	Publish(event Event)
}

// LogPublisher is the default subscriber: it writes events to the
// structured log until a real notification service is attached.
type LogPublisher struct{}

func (LogPublisher) Publish(event Event) {
	slog.Info("lifecycle event",
		"event", string(event.Type),
		"report_id", event.ReportID,
		"status", string(event.Status),
		"actor_id", event.ActorID.String(),
	)
}

func eventFor(op Operation, status models.Status) EventType {
	switch op {
	case OpVerify:
		return EventReportVerified
	case OpAssign:
		return EventReportAssigned
	case OpResolve:
		return EventReportResolved
	case OpReject:
		return EventReportRejected
	}
	if status == models.StatusResolved {
		return EventReportResolved
	}
	return EventReportUpdated
}
