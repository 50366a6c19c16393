package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records quiz lifecycle events (start/finish/restart).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("action").
			NotEmpty().
			Comment("start, finish or restart"),
		field.String("catalog_version").
			Default("").
			Comment("Semantic version of the question catalog"),
		field.Int("answered").
			Default(0).
			Comment("Questions answered (on finish only)"),
		field.Int("total").
			Default(0).
			Comment("Questions in the catalog"),
		field.String("result_category").
			Default("").
			Comment("success, warning, info or danger (on finish only)"),
		field.String("result_title").
			Default("").
			Comment("Overall result title (on finish only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action"),
	}
}
