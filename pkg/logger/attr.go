package logger

import (
	"fmt"
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// DoorID records the door identifier under the key "door_id".
// If id is nil, it returns an empty Attr.
func DoorID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("door_id", id)
}

// Color records the door color under the key "color".
func Color(color string) slog.Attr {
	return slog.String("color", color)
}

// Event records the event name under the key "event".
func Event(name any) slog.Attr {
	return slog.String("event", fmt.Sprint(name))
}

// Transition groups the source and target states under the key "transition".
func Transition(from, to any) slog.Attr {
	return Group("transition",
		slog.String("from", fmt.Sprint(from)),
		slog.String("to", fmt.Sprint(to)),
	)
}

// Outcome records whether a request was applied under the key "outcome".
func Outcome(outcome any) slog.Attr {
	return slog.String("outcome", fmt.Sprint(outcome))
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
