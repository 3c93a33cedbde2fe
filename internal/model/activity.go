package model

import "time"

// EntityType names a tracked entity collection. The same values are
// used as the activity log discriminator and as change-notification
// channels.
type EntityType string

const (
	EntityProjects  EntityType = "projects"
	EntityTasks     EntityType = "tasks"
	EntityProposals EntityType = "proposals"
	EntityTags      EntityType = "tags"
	EntityComments  EntityType = "comments"
	EntityActivity  EntityType = "activity_log"
)

// Activity log action constants.
const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// ActivityLog is an append-only audit record produced by the store's
// change triggers. The application reads these rows but never writes
// or mutates them.
type ActivityLog struct {
	ID         string     `json:"id" db:"id"`
	EntityType EntityType `json:"entity_type" db:"entity_type"`
	EntityID   string     `json:"entity_id" db:"entity_id"`
	Action     string     `json:"action" db:"action"`

	// Details is a free-form JSON snapshot, typically the title or
	// name of the affected entity at the time of the change.
	Details string `json:"details,omitempty" db:"details"`

	Actor     string    `json:"actor,omitempty" db:"actor"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
