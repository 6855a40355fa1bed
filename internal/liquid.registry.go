package internal

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry manages named entries with last-registration-wins semantics.
// It is thread-safe for concurrent read/write access.
type Registry[T any] struct {
	kind    string
	entries map[string]T
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewRegistry creates a new registry. kind labels the registry in logs and errors.
func NewRegistry[T any](kind string, logger *zap.Logger) *Registry[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRegistryCreated, zap.String(LogFieldRegistry, kind))
	return &Registry[T]{
		kind:    kind,
		entries: make(map[string]T),
		logger:  logger,
	}
}

// Register adds an entry under name. An existing entry for the same
// name is replaced and the override is logged.
func (r *Registry[T]) Register(name string, entry T) error {
	if name == "" {
		return NewRegistryError(ErrMsgEmptyEntryName, r.kind, "")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		r.logger.Debug(LogMsgEntryOverridden,
			zap.String(LogFieldRegistry, r.kind),
			zap.String(LogFieldName, name))
	} else {
		r.logger.Debug(LogMsgEntryRegistered,
			zap.String(LogFieldRegistry, r.kind),
			zap.String(LogFieldName, name))
	}
	r.entries[name] = entry
	return nil
}

// Get retrieves an entry by name
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[name]
	return entry, exists
}

// Has checks if an entry is registered for the given name
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.entries[name]
	return exists
}

// Delete removes an entry. Returns true if an entry was removed.
func (r *Registry[T]) Delete(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; !exists {
		return false
	}
	delete(r.entries, name)
	r.logger.Debug(LogMsgEntryRemoved,
		zap.String(LogFieldRegistry, r.kind),
		zap.String(LogFieldName, name))
	return true
}

// List returns all registered names in sorted order.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered entries.
func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// RegistryError represents a registry operation error
type RegistryError struct {
	Message  string
	Registry string
	Name     string
}

// NewRegistryError creates a new registry error
func NewRegistryError(message, registry, name string) *RegistryError {
	return &RegistryError{
		Message:  message,
		Registry: registry,
		Name:     name,
	}
}

// Error implements the error interface
func (e *RegistryError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf(ErrFmtRegistryNamed, e.Registry, e.Message, e.Name)
	}
	return fmt.Sprintf(ErrFmtWithDetail, e.Registry, e.Message)
}

// Registry error message constants
const (
	ErrMsgEmptyEntryName = "entry name cannot be empty"
	ErrFmtRegistryNamed  = "%s: %s: %s"
)
