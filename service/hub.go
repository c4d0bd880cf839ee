package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Hub owns the registered services and their start order
type Hub struct {
	mu       sync.Mutex
	services map[string]Service
	order    []string // Registration order, breaks ties in the topological sort
	started  []string // Services that completed Start, for rollback and StopAll
	log      zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		services: make(map[string]Service),
		log:      log,
	}
}

// Register adds a service instance to the hub
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("service already registered: %s", name)
	}
	h.services[name] = svc
	h.order = append(h.order, name)
	return nil
}

// StartAll starts every service in dependency order
// A failing optional service is logged and skipped, a failing required one stops everything already started
func (h *Hub) StartAll(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	sorted, err := h.topologicalSort()
	if err != nil {
		return err
	}

	h.started = nil
	for _, name := range sorted {
		svc := h.services[name]
		if err := svc.Start(ctx); err != nil {
			if isOptional(svc) {
				h.log.Warn().Err(err).Str("service", name).Msg("Optional service failed to start")
				continue
			}
			h.stopStarted()
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.started = append(h.started, name)
		h.log.Debug().Str("service", name).Msg("Service started")
	}
	return nil
}

// StopAll stops started services in reverse start order
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopStarted()
}

func (h *Hub) stopStarted() {
	for i := len(h.started) - 1; i >= 0; i-- {
		name := h.started[i]
		if err := h.services[name].Stop(); err != nil {
			h.log.Error().Err(err).Str("service", name).Msg("Service stop failed")
		}
	}
	h.started = nil
}

// Started returns the names of running services in start order
func (h *Hub) Started() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.started...)
}

// topologicalSort orders services with Kahn's algorithm, ties keep registration order
func (h *Hub) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(h.services))
	dependents := make(map[string][]string)

	for _, name := range h.order {
		for _, dep := range h.services[name].Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("service %s depends on unregistered service: %s", name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for _, name := range h.order {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	result := make([]string, 0, len(h.services))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		result = append(result, name)

		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(result) != len(h.services) {
		return nil, fmt.Errorf("circular dependency detected in services")
	}
	return result, nil
}
