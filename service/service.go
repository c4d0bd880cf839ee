// Package service runs the long-lived boundary subsystems of the binary in dependency order
package service

import "context"

// Service is a long-lived subsystem with an explicit lifecycle
//
// Lifecycle:
//  1. Construction
//  2. Start(ctx) - acquire devices, launch goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources, idempotent
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must start before this one
	Dependencies() []string

	Start(ctx context.Context) error
	Stop() error
}

// Optional is implemented by services whose start failure must not abort the others
type Optional interface {
	Optional() bool
}

func isOptional(svc Service) bool {
	o, ok := svc.(Optional)
	return ok && o.Optional()
}
