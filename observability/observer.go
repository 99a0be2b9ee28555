// Package observability carries events out of the containers in this module.
// Containers never log directly; they hand an Event to an Observer, and the
// Observer decides whether it ends up in slog, a test buffer, or nowhere.
package observability

import (
	"context"
	"log/slog"
)

// Level is the severity of an Event. The numeric values follow the
// OpenTelemetry SeverityNumber ranges.
type Level int

const (
	LevelVerbose Level = 5
	LevelInfo    Level = 9
	LevelWarning Level = 13
	LevelError   Level = 17
)

func (l Level) String() string {
	switch {
	case l < LevelVerbose:
		return "TRACE"
	case l < LevelInfo:
		return "DEBUG"
	case l < LevelWarning:
		return "INFO"
	case l < LevelError:
		return "WARN"
	case l <= 20:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// SlogLevel maps l onto the nearest slog level.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l < LevelInfo:
		return slog.LevelDebug
	case l < LevelWarning:
		return slog.LevelInfo
	case l < LevelError:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType names an event, e.g. "assoc.grow". Packages that emit events
// declare their own constants.
type EventType string

// Event is a single observation. Data holds event-specific attributes.
type Event struct {
	Type   EventType
	Level  Level
	Source string
	Data   map[string]any
}

// Observer receives events.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
