// Package notify turns lost item persistence events into best-effort email
// notifications. Compose is a pure function from an event to a message;
// Dispatcher owns the transport, bounds each delivery attempt with a
// timeout, and absorbs every transport failure so notification problems stay
// invisible to the operation that triggered them.
package notify
