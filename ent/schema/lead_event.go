package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeadEvent records every consultation request dispatched to the lead sink.
type LeadEvent struct {
	ent.Schema
}

func (LeadEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LeadEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("lead_id").
			NotEmpty().
			Comment("UUID of the submission attempt"),
		field.String("name"),
		field.String("whatsapp").
			Comment("Country code followed by the local number"),
		field.String("website"),
		field.Text("problems"),
		field.String("endpoint").
			Default("").
			Comment("Sink the payload was sent to"),
		field.Bool("delivered").
			Comment("Whether the transport reported no error"),
		field.String("error_message").
			Default("").
			Comment("Transport error if not delivered"),
	}
}

func (LeadEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("delivered"),
	}
}
