// Package lostitem provides the lost item record model and its persistence
// layer. The Store interface has two implementations: MongoStore for the
// real document store and MemoryStore for tests and local runs.
//
// Invariants enforced here: an item's ID and CreatedAt never change after
// creation, the description is never empty after a successful write, and the
// status only ever holds one of the two enum values.
package lostitem
