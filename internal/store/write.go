package store

import (
	"context"
	"fmt"

	"github.com/roach88/deroman/internal/rules"
)

// ImportRecords inserts rule records in slice order inside one transaction.
//
// Insertion order is preserved through the autoincrement id, so a repository
// loaded from this store ranks declaration-order ties the same way one loaded
// from the original text source would.
func (s *Store) ImportRecords(ctx context.Context, records []rules.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("import rules: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO rules (latin, target, script, priority, context)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("import rules: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.Latin, rec.Target, rec.Script, rec.Priority, rec.Context); err != nil {
			return fmt.Errorf("import rule %s::%s: %w", rec.Latin, rec.Target, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import rules: %w", err)
	}
	return nil
}
