package rules

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fieldSeparator delimits record fields. Double colon keeps single colons
// available inside patterns and target text.
const fieldSeparator = "::"

// ParseLine parses one rule record in the form
//
//	latin::target::script::priority[::context]
//
// source is attached to any FormatError for diagnostics. ParseLine does not
// skip comments or blank lines; callers that read whole files use ParseReader.
func ParseLine(line, source string) (Record, error) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) < 4 {
		return Record{}, &FormatError{
			Code:   ErrCodeFieldCount,
			Source: source,
			Detail: fmt.Sprintf("expected at least 4 ::-separated fields, got %d", len(parts)),
		}
	}

	rec := Record{
		Latin:  strings.TrimSpace(parts[0]),
		Target: strings.TrimSpace(parts[1]),
		Script: strings.TrimSpace(parts[2]),
		Source: source,
	}
	if len(parts) > 4 {
		rec.Context = strings.TrimSpace(parts[4])
	}

	if rec.Latin == "" {
		return Record{}, &FormatError{
			Code:   ErrCodeEmptyPattern,
			Source: source,
			Detail: "latin pattern is empty",
		}
	}
	if rec.Script == "" {
		return Record{}, &FormatError{
			Code:   ErrCodeEmptyScript,
			Source: source,
			Detail: "script name is empty",
		}
	}

	prio, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return Record{}, &FormatError{
			Code:   ErrCodeBadPriority,
			Source: source,
			Detail: fmt.Sprintf("priority %q is not an integer", strings.TrimSpace(parts[3])),
		}
	}
	if prio <= 0 {
		return Record{}, &FormatError{
			Code:   ErrCodeBadPriority,
			Source: source,
			Detail: fmt.Sprintf("priority must be positive, got %d", prio),
		}
	}
	rec.Priority = prio

	return rec, nil
}

// ParseReader reads rule records from r, one per line. Blank lines and lines
// starting with '#' are skipped. Malformed lines are skipped and reported as
// warnings; parsing always continues to the end of the input.
//
// source names the input (typically a file path) and is combined with the
// line number in warning messages.
func ParseReader(r io.Reader, source string) ([]Record, []Warning, error) {
	var (
		records  []Record
		warnings []Warning
	)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rec, err := ParseLine(line, fmt.Sprintf("%s:%d", source, lineNum))
		if err != nil {
			warnings = append(warnings, Warning{Record: line, Err: err})
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", source, err)
	}

	return records, warnings, nil
}
