package store

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/contentquiz/ent/schema"
)

const (
	tableSessionEvents    = "session_events"
	tableLeadEvents       = "lead_events"
	tableLLMRequestEvents = "llm_request_events"
)

// Tables lists the event tables derived from the ent schema definitions.
var Tables = []*schema.Table{
	tableFor(tableSessionEvents, "sessionevent", entschema.SessionEvent{}),
	tableFor(tableLeadEvents, "leadevent", entschema.LeadEvent{}),
	tableFor(tableLLMRequestEvents, "llmrequestevent", entschema.LLMRequestEvent{}),
}

// migrate creates or upgrades the event tables.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	return m.Create(ctx, Tables...)
}

// tableFor builds the migration table for an ent schema the same way
// entc lays out its generated migrate package: an auto-increment id, the
// mixin fields, then the schema's own fields and indexes.
func tableFor(name, entity string, s ent.Interface) *schema.Table {
	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := &schema.Table{
		Name:       name,
		Columns:    []*schema.Column{id},
		PrimaryKey: []*schema.Column{id},
	}

	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	byName := map[string]*schema.Column{}
	for _, f := range fields {
		c := columnFor(f.Descriptor())
		t.Columns = append(t.Columns, c)
		byName[c.Name] = c
	}

	for _, idx := range indexes {
		d := idx.Descriptor()
		ix := &schema.Index{
			Name:   entity + "_" + strings.Join(d.Fields, "_"),
			Unique: d.Unique,
		}
		for _, f := range d.Fields {
			ix.Columns = append(ix.Columns, byName[f])
		}
		t.Indexes = append(t.Indexes, ix)
	}
	return t
}

func columnFor(d *field.Descriptor) *schema.Column {
	c := &schema.Column{
		Name:     d.Name,
		Type:     d.Info.Type,
		Unique:   d.Unique,
		Nullable: d.Optional,
		Size:     int64(d.Size),
		Comment:  d.Comment,
	}
	// Function defaults (time.Now) are applied by the repository on insert.
	switch v := d.Default.(type) {
	case int, int64, bool, string:
		c.Default = v
	}
	return c
}
