package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot captures one conversation's full unlock state at a point in
// time, enabling exact restore on session resume.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("conversation_id").
			NotEmpty().
			Comment("Owning conversation"),
		field.Int64("sequence").
			Comment("Event sequence number at the time of snapshot"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was taken"),
		field.Bytes("data").
			Comment("Serialized session state as JSON"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "timestamp"),
		index.Fields("sequence"),
	}
}
