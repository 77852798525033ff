package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a domain event that occurred.
// Events are immutable facts about something that happened.
type Event struct {
	ID        uuid.UUID
	Type      string
	Entity    string
	EntityID  int64
	Timestamp time.Time
	Data      map[string]any
}

// Event type constants
const (
	EventCreated      = "created"
	EventUpdated      = "updated"
	EventDeleted      = "deleted"
	EventUserLoggedIn = "user.logged_in"
	EventRolesChanged = "user.roles_changed"
)

// NewEvent creates a new domain event.
func NewEvent(eventType, entity string, entityID int64, data map[string]any) Event {
	if data == nil {
		data = make(map[string]any)
	}
	return Event{
		ID:        uuid.New(),
		Type:      entity + "." + eventType,
		Entity:    entity,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

func CreatedEvent(entity string, entityID int64) Event {
	return NewEvent(EventCreated, entity, entityID, nil)
}

func UpdatedEvent(entity string, entityID int64) Event {
	return NewEvent(EventUpdated, entity, entityID, nil)
}

func DeletedEvent(entity string, entityID int64) Event {
	return NewEvent(EventDeleted, entity, entityID, nil)
}

func RolesChangedEvent(userID int64) Event {
	return Event{
		ID:        uuid.New(),
		Type:      EventRolesChanged,
		Entity:    "user",
		EntityID:  userID,
		Timestamp: time.Now().UTC(),
		Data:      map[string]any{},
	}
}

func UserLoggedInEvent(userID int64, email string) Event {
	return Event{
		ID:        uuid.New(),
		Type:      EventUserLoggedIn,
		Entity:    "user",
		EntityID:  userID,
		Timestamp: time.Now().UTC(),
		Data:      map[string]any{"email": email},
	}
}
