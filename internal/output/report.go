package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/tco-parity/internal/domain"
)

// FormatAll requests every built-in formatter in one call.
const FormatAll = "all"

// ResolveFormatters maps a format name (or alias, or "all") to formatters.
func ResolveFormatters(format string) ([]Formatter, error) {
	if NormalizeFormatName(format) == FormatAll {
		return append([]Formatter(nil), builtInFormatters...), nil
	}
	if f := GetFormatterByName(format); f != nil {
		return []Formatter{f}, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s, %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), FormatAll, strings.Join(AvailableFormatAliases(), ", "))
}

// GenerateReport writes the report in the requested format into dir and returns
// the paths written.
func GenerateReport(report *domain.ComparisonReport, format, dir string) ([]string, error) {
	formatters, err := ResolveFormatters(format)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(formatters))
	for _, f := range formatters {
		path, err := WriteFormatted(f, report, dir)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
