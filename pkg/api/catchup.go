package api

import (
	"context"

	"github.com/appforge/forge/pkg/events"
	"github.com/appforge/forge/pkg/services"
)

// EventCatchupAdapter adapts EventService to the ConnectionManager's catchup
// port, keeping pkg/events free of a services dependency.
type EventCatchupAdapter struct {
	events *services.EventService
}

// NewEventCatchupAdapter wraps an EventService for WebSocket catchup.
func NewEventCatchupAdapter(svc *services.EventService) *EventCatchupAdapter {
	return &EventCatchupAdapter{events: svc}
}

// GetCatchupEvents returns stored events on a channel after sinceID.
func (a *EventCatchupAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]events.CatchupEvent, error) {
	rows, err := a.events.GetEventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]events.CatchupEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, events.CatchupEvent{
			ID:      row.ID,
			Payload: row.Payload,
		})
	}
	return out, nil
}
