package services

import (
	"fmt"

	"github.com/monastery360/datastore/internal/models"
)

// EventInput is the payload for creating a calendar event.
type EventInput struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"desc"`
	Badge       string `json:"badge"`
	Color       string `json:"color"`
}

// ListEvents returns all calendar events.
func ListEvents(ctx *Context) []models.Event {
	events := []models.Event{}
	ctx.Store().Get(models.KeyEvents, &events)
	return events
}

// AddEvent appends a new calendar event and logs the creation.
func AddEvent(ctx *Context, in EventInput) (*models.Event, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("event title is required")
	}

	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	event := models.Event{
		ID:          newID("event"),
		Date:        in.Date,
		Title:       in.Title,
		Description: in.Description,
		Badge:       in.Badge,
		Color:       in.Color,
		CreatedAt:   now(),
		CreatedBy:   ctx.actor().ID,
	}

	events := []models.Event{}
	ctx.Store().Get(models.KeyEvents, &events)
	events = append(events, event)
	if !ctx.Store().Set(models.KeyEvents, events) {
		return nil, ErrStoreWrite
	}
	recordActivity(ctx, models.ActivityEventAdded, "Added event: "+event.Title, "")

	return &event, nil
}
