package model

import "github.com/google/uuid"

type (
	Entity string
	Action string
)

const (
	EntityPart     Entity = "part"
	EntityModule   Entity = "module"
	EntitySupplier Entity = "supplier"
)

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionLinked  Action = "linked"
)

// ChangeEvent describes one successful catalogue mutation.
type ChangeEvent struct {
	EventID uuid.UUID
	Entity  Entity
	Action  Action
	// Business key, empty for suppliers.
	Key string
	ID  uuid.UUID
}
