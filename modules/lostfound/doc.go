// Package lostfound is the lifecycle orchestrator for reported lost items.
// It is the only layer that talks to more than one collaborator: it mutates
// the item store, then reads the receiver set and hands the resulting event
// to the notification dispatcher. The mutation and the notification are
// sequential and independent by design; dispatch never precedes persistence
// and dispatch failure never surfaces to the caller.
package lostfound
