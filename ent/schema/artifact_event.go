package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ArtifactEvent records every artifact version the engine extracted.
type ArtifactEvent struct {
	ent.Schema
}

func (ArtifactEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ArtifactEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("conversation_id").
			NotEmpty().
			Comment("Owning conversation"),
		field.String("artifact_id").
			NotEmpty().
			Comment("Content-fingerprint id of this version"),
		field.String("slot_key").
			NotEmpty().
			Comment("Logical slot: title/language or ordinal fallback"),
		field.String("title").
			Default("").
			Comment("Marker title, may be empty"),
		field.String("language").
			Default("").
			Comment("Marker language, may be empty"),
		field.Int("version").
			Comment("Version within the slot, starting at 1"),
		field.Int("line_count").
			Default(0).
			Comment("Lines in the body"),
		field.Bool("truncated").
			Default(false).
			Comment("Whether the body looked cut off"),
	}
}

func (ArtifactEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id"),
		index.Fields("slot_key"),
	}
}
