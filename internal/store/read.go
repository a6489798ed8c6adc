package store

import (
	"context"
	"fmt"

	"github.com/roach88/deroman/internal/rules"
)

// ReadRecords returns all stored rule records ordered by insertion id.
//
// script filters to one script's rules; pass "" for all. Returns an empty
// slice (not nil) when nothing matches.
func (s *Store) ReadRecords(ctx context.Context, script string) ([]rules.Record, error) {
	query := `
		SELECT id, latin, target, script, priority, context
		FROM rules
		ORDER BY id ASC
	`
	args := []any{}
	if script != "" {
		query = `
			SELECT id, latin, target, script, priority, context
			FROM rules
			WHERE script = ?
			ORDER BY id ASC
		`
		args = append(args, script)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rules: %w", err)
	}
	defer rows.Close()

	records := []rules.Record{}
	for rows.Next() {
		var (
			id  int64
			rec rules.Record
		)
		if err := rows.Scan(&id, &rec.Latin, &rec.Target, &rec.Script, &rec.Priority, &rec.Context); err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		rec.Source = fmt.Sprintf("store:rules:%d", id)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rules: %w", err)
	}

	return records, nil
}

// Count returns the number of stored rule records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM rules").Scan(&n); err != nil {
		return 0, fmt.Errorf("count rules: %w", err)
	}
	return n, nil
}
