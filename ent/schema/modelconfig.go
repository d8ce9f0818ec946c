package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModelConfig holds the schema definition for the ModelConfig entity.
// One row per purpose; changes are mirrored into ModelConfigAudit.
type ModelConfig struct {
	ent.Schema
}

// Fields of the ModelConfig.
func (ModelConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("config_id").
			Unique().
			Immutable(),
		field.Enum("purpose").
			Values("plan", "code", "fix", "reflect", "summarize", "embed"),
		field.String("provider").
			Comment("anthropic or openai"),
		field.String("model"),
		field.Int("max_tokens").
			Default(4096),
		field.Float("temperature").
			Default(0.2),
		field.String("reasoning_effort").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ModelConfig.
func (ModelConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose").Unique(),
	}
}

// ModelConfigAudit holds the schema definition for the ModelConfigAudit entity.
type ModelConfigAudit struct {
	ent.Schema
}

// Fields of the ModelConfigAudit.
func (ModelConfigAudit) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("purpose").
			Immutable(),
		field.JSON("previous", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("current", map[string]interface{}{}).
			Immutable(),
		field.String("changed_by").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ModelConfigAudit.
func (ModelConfigAudit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose", "created_at"),
	}
}
