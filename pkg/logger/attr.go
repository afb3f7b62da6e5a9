package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// ItemID records the lost item identifier under the key "item_id".
func ItemID(id string) slog.Attr {
	return slog.String("item_id", id)
}

// Action records the notification action under the key "action".
func Action(action any) slog.Attr {
	return slog.Any("action", action)
}

// Recipients records the recipient count under the key "recipients".
func Recipients(count int) slog.Attr {
	return slog.Int("recipients", count)
}

// Transport records the mail transport name under the key "transport".
func Transport(name string) slog.Attr {
	return slog.String("transport", name)
}
