package store

import (
	"context"
	"fmt"
)

var leadEventColumns = []string{
	"id", "sequence", "timestamp", "session_id",
	"lead_id", "name", "whatsapp", "website", "problems",
	"endpoint", "delivered", "error_message",
}

func (r *eventRepo) AppendLeadEvent(ctx context.Context, data LeadEventData) error {
	err := r.insert(ctx, tableLeadEvents,
		[]string{"lead_id", "session_id", "name", "whatsapp", "website", "problems", "endpoint", "delivered", "error_message"},
		[]any{data.LeadID, data.SessionID, data.Name, data.WhatsApp, data.Website, data.Problems, data.Endpoint, data.Delivered, data.ErrorMessage},
	)
	if err != nil {
		return fmt.Errorf("save lead event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLeadEvents(ctx context.Context, opts QueryOpts) ([]LeadEvent, error) {
	query, args := selectEvents(tableLeadEvents, leadEventColumns, opts).Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query lead events: %w", err)
	}
	defer rows.Close()

	var out []LeadEvent
	for rows.Next() {
		var e LeadEvent
		if err := rows.Scan(
			&e.ID, &e.Sequence, &e.Timestamp, &e.SessionID,
			&e.LeadID, &e.Name, &e.WhatsApp, &e.Website, &e.Problems,
			&e.Endpoint, &e.Delivered, &e.ErrorMessage,
		); err != nil {
			return nil, fmt.Errorf("scan lead event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
