package plugin

import (
	"github.com/google/uuid"

	"tilebar.dev/panel/internal/core/ports"
)

// Instance is one running occurrence of a plugin type. It is created by
// the instance service, mutated by Start/Stop, and released by Put.
type Instance struct {
	// ID uniquely identifies this occurrence for logging and menus
	ID string

	// Class is a non-owning back-reference to the instance's type
	Class *Class

	// Config is the host-provided read-only view into this occurrence's
	// settings sub-tree. Populated by the host before Start.
	Config ports.ConfigView

	// Pack options supplied by the host before Start
	Expand  bool
	Padding int
	Border  int

	// Container is the tile created for this instance at Start time. The
	// layout owns it once attached; the instance only remembers it to
	// hand back at Stop.
	Container ports.Container

	// Private is module-owned state. The host never inspects it.
	Private any
}

// NewInstance builds a fresh instance of class with a generated ID.
func NewInstance(class *Class) *Instance {
	return &Instance{
		ID:    uuid.NewString(),
		Class: class,
	}
}
