package mongo

import "errors"

var (
	// ErrFailedToConnect is returned when the deployment is unreachable after
	// all retry attempts.
	ErrFailedToConnect = errors.New("failed to connect to mongo")
	// ErrHealthcheckFailed wraps ping failures from the health check.
	ErrHealthcheckFailed = errors.New("mongo healthcheck failed")
)
