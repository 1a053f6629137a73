package api

import (
	"context"
	"strings"
	"time"
)

// Event statuses as reported by the events function.
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusFull      = "full"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// Event is a read-only snapshot of one bathhouse meetup.
// The catalog never mutates events; booking and payment live elsewhere.
type Event struct {
	ID                  int64   `json:"id"`
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	EventDate           string  `json:"event_date"`
	DurationHours       int     `json:"duration_hours"`
	MaxParticipants     int     `json:"max_participants"`
	CurrentParticipants int     `json:"current_participants"`
	PricePerPerson      float64 `json:"price_per_person"`
	Status              string  `json:"status"`
}

// Date parses the event timestamp. The function emits ISO 8601 without a
// zone suffix; RFC 3339 is accepted as well. ok is false when unparseable.
func (e Event) Date() (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, e.EventDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Bookable reports whether the event accepts bookings right now.
func (e Event) Bookable() bool {
	return e.Status == EventStatusPublished && e.CurrentParticipants < e.MaxParticipants
}

// CatalogClient wraps the remote events function.
type CatalogClient struct {
	*Client
}

// NewCatalogClient creates a client for the events function at baseURL.
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{Client: NewClient(baseURL, timeout)}
}

// List fetches the full published-events snapshot. There is no pagination or
// incremental sync; the function returns everything at once.
func (c *CatalogClient) List(ctx context.Context) ([]Event, error) {
	var resp struct {
		Events []Event `json:"events"`
	}
	if err := c.Get(ctx, ActionList, "", &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

// FilterEvents returns the events whose title or description contains query
// case-insensitively. An empty query returns the slice unchanged.
func FilterEvents(events []Event, query string) []Event {
	if query == "" {
		return events
	}

	q := strings.ToLower(query)
	filtered := make([]Event, 0, len(events))
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Description), q) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
