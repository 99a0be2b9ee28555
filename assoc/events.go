package assoc

import "github.com/tailored-agentic-units/structures/observability"

const eventSource = "assoc.AssociativeArray"

// Container event types.
const (
	EventGrow    observability.EventType = "assoc.grow"
	EventNullKey observability.EventType = "assoc.null_key"
)
