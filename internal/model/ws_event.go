package model

import "encoding/json"

// EventContentUpdated tells open pages to refetch the named table.
const EventContentUpdated = "content:updated"

type WSEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type ContentUpdated struct {
	Table string `json:"table"`
}

// NewContentUpdatedEvent builds the broadcast payload for a mutated
// table. Marshalling a two-field struct cannot fail, so the error is
// swallowed here rather than at every call site.
func NewContentUpdatedEvent(table string) WSEvent {
	data, _ := json.Marshal(ContentUpdated{Table: table})
	return WSEvent{Type: EventContentUpdated, Data: data}
}
