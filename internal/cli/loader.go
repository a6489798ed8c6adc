package cli

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/roach88/deroman/internal/engine"
	"github.com/roach88/deroman/internal/rules"
	"github.com/roach88/deroman/internal/script"
	"github.com/roach88/deroman/internal/store"
)

// LoadResult contains the assembled engine plus load-time diagnostics.
type LoadResult struct {
	Converter *engine.Converter
	Warnings  []rules.Warning
	RuleCount int
}

// LoadRecords reads rule records from every configured source: text files
// first, in flag order, then the SQLite store. Malformed records become
// warnings; I/O failures are errors.
func LoadRecords(ctx context.Context, opts *RootOptions) ([]rules.Record, []rules.Warning, error) {
	var (
		records  []rules.Record
		warnings []rules.Warning
	)

	for _, path := range opts.RuleFiles {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, fmt.Sprintf("open rule file %s", path), err)
		}
		recs, warns, err := rules.ParseReader(f, path)
		f.Close()
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, fmt.Sprintf("read rule file %s", path), err)
		}
		records = append(records, recs...)
		warnings = append(warnings, warns...)
	}

	if opts.RulesDB != "" {
		st, err := store.Open(opts.RulesDB)
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, fmt.Sprintf("open rule store %s", opts.RulesDB), err)
		}
		defer st.Close()

		recs, err := st.ReadRecords(ctx, "")
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, fmt.Sprintf("read rule store %s", opts.RulesDB), err)
		}
		records = append(records, recs...)
	}

	return records, warnings, nil
}

// BuildConverter assembles the converter from the configured rule sources
// and script definitions. Load-time format warnings are logged and surfaced
// in the result; they do not abort loading.
func BuildConverter(ctx context.Context, opts *RootOptions) (*LoadResult, error) {
	if len(opts.RuleFiles) == 0 && opts.RulesDB == "" {
		return nil, NewExitError(ExitCommandError, "no rule sources: pass --rules and/or --rules-db")
	}

	records, warnings, err := LoadRecords(ctx, opts)
	if err != nil {
		return nil, err
	}

	registry := script.Builtin()
	if opts.ScriptsDir != "" {
		scripts, err := script.LoadCUEDir(opts.ScriptsDir)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "load script definitions", err)
		}
		for _, s := range scripts {
			if err := registry.Register(s); err != nil {
				return nil, WrapExitError(ExitCommandError, "register script", err)
			}
		}
	}

	repo, loadWarnings := rules.Load(records)
	warnings = append(warnings, loadWarnings...)
	for _, w := range warnings {
		Logger().Warn("skipped malformed rule record",
			zap.String("record", w.Record),
			zap.Error(w.Err),
		)
	}
	Logger().Info("rule repository loaded",
		zap.Int("rules", repo.Len()),
		zap.Int("skipped", len(warnings)),
	)

	return &LoadResult{
		Converter: engine.New(repo, registry, engine.Config{CacheCapacity: opts.CacheSize}),
		Warnings:  warnings,
		RuleCount: repo.Len(),
	}, nil
}
