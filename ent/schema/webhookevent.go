package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookEvent holds the schema definition for the WebhookEvent entity.
// Persistent inbound queue: the same delivery_id is never processed twice;
// rows that exhaust max_attempts stay as failed (dead letter).
type WebhookEvent struct {
	ent.Schema
}

// Fields of the WebhookEvent.
func (WebhookEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("delivery_id").
			Unique().
			Immutable(),
		field.String("source").
			Immutable().
			Comment("Originating system, e.g. issue tracker"),
		field.String("event_type").
			Immutable(),
		field.Text("payload").
			Immutable().
			Comment("Raw signed payload as received"),
		field.Enum("status").
			Values("pending", "in_flight", "failed", "completed").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(5),
		field.Time("next_retry_at").
			Optional().
			Nillable(),
		field.Text("last_error").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the WebhookEvent.
func (WebhookEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("delivery_id").Unique(),
		index.Fields("status", "next_retry_at"),
	}
}
