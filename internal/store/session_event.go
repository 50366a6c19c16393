package store

import (
	"context"
	"fmt"
)

var sessionEventColumns = []string{
	"id", "sequence", "timestamp",
	"session_id", "action", "catalog_version", "answered", "total",
	"result_category", "result_title",
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	err := r.insert(ctx, tableSessionEvents,
		[]string{"session_id", "action", "catalog_version", "answered", "total", "result_category", "result_title"},
		[]any{data.SessionID, data.Action, data.CatalogVersion, data.Answered, data.Total, data.ResultCategory, data.ResultTitle},
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error) {
	query, args := selectEvents(tableSessionEvents, sessionEventColumns, opts).Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionEvent
	for rows.Next() {
		var e SessionEvent
		if err := rows.Scan(
			&e.ID, &e.Sequence, &e.Timestamp,
			&e.SessionID, &e.Action, &e.CatalogVersion, &e.Answered, &e.Total,
			&e.ResultCategory, &e.ResultTitle,
		); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
