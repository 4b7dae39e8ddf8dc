package ui

import (
	"sync"

	"github.com/rs/zerolog"
)

// CommandID names a toolbar command slot
type CommandID string

const (
	CommandSettings CommandID = "settings"
	CommandInfo     CommandID = "info"
)

// CommandSlots holds pluggable handlers for toolbar buttons. A slot without a
// handler is a no-op.
type CommandSlots struct {
	mu       sync.RWMutex
	handlers map[CommandID]func()
	log      zerolog.Logger
}

// NewCommandSlots creates empty command slots
func NewCommandSlots(log zerolog.Logger) *CommandSlots {
	return &CommandSlots{
		handlers: make(map[CommandID]func()),
		log:      log,
	}
}

// Register sets the handler for id; nil clears the slot
func (c *CommandSlots) Register(id CommandID, handler func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if handler == nil {
		delete(c.handlers, id)
		return
	}
	c.handlers[id] = handler
}

// IsImplemented reports whether id has a handler
func (c *CommandSlots) IsImplemented(id CommandID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.handlers[id]
	return ok
}

// Run invokes the handler for id and reports whether one was registered
func (c *CommandSlots) Run(id CommandID) bool {
	c.mu.RLock()
	handler, ok := c.handlers[id]
	c.mu.RUnlock()

	if !ok {
		c.log.Debug().Str("command", string(id)).Msg("command not implemented")
		return false
	}

	handler()
	return true
}
