package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Repository holds the schema definition for the Repository entity.
type Repository struct {
	ent.Schema
}

// Fields of the Repository.
func (Repository) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("repository_id").
			Unique().
			Immutable(),
		field.String("owner"),
		field.String("name"),
		field.String("default_branch").
			Default("main"),
		field.String("tracker_project").
			Optional().
			Comment("Issue tracker project key linked to this repo"),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Repository.
func (Repository) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner", "name").Unique(),
	}
}
