// Package receivers manages the set of email addresses that notification
// fan-out targets. Equality is case-sensitive as stored; no normalization is
// applied.
package receivers
