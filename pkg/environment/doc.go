// Package environment defines the application environment type used to drive
// environment-dependent behavior: logger presets and mail transport
// selection. The environment is resolved once at startup from configuration
// and passed explicitly to the components that need it.
package environment
