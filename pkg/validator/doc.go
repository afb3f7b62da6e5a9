// Package validator provides composable field validation rules that collect
// into a ValidationErrors value. Validation failures abort an operation
// before any mutation is attempted; the error carries per-field messages
// suitable for direct presentation to callers.
package validator
