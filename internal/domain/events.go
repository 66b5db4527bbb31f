package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventMembersLoaded  EventType = "MembersLoaded"
	EventLoadFailed     EventType = "LoadFailed"
	EventMemberUpdated  EventType = "MemberUpdated"
	EventMembersDeleted EventType = "MembersDeleted"
	EventQueryChanged   EventType = "QueryChanged"
	EventError          EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// MembersLoadedEvent is emitted when the Source Set has been populated
type MembersLoadedEvent struct {
	Source   string
	Count    int
	Dropped  int // records rejected by strict id validation
	Warnings []string
}

func (e MembersLoadedEvent) Type() EventType { return EventMembersLoaded }

// LoadFailedEvent is emitted when the record provider could not be read
type LoadFailedEvent struct {
	Source string
	Err    error
}

func (e LoadFailedEvent) Type() EventType { return EventLoadFailed }

// MemberUpdatedEvent is emitted when a member's mutable fields change
type MemberUpdatedEvent struct {
	ID    string
	Name  string
	Email string
	// Committed is true when the edit was applied with Enter; false when
	// edit mode was closed with the typed values left in place
	Committed bool
}

func (e MemberUpdatedEvent) Type() EventType { return EventMemberUpdated }

// MembersDeletedEvent is emitted when members are removed from the Source Set
type MembersDeletedEvent struct {
	IDs  []string
	Bulk bool
}

func (e MembersDeletedEvent) Type() EventType { return EventMembersDeleted }

// QueryChangedEvent is emitted when the search query changes
type QueryChangedEvent struct {
	Query   string
	Matches int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
