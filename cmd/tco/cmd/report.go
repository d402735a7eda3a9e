package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/rpgo/tco-parity/internal/calculation"
	"github.com/rpgo/tco-parity/internal/domain"
	"github.com/rpgo/tco-parity/internal/output"
)

// writeReport prints console output to w, or writes report files when a
// directory is given or a file format is requested.
func writeReport(w io.Writer, report *domain.ComparisonReport, format, dir string) error {
	if format == "" {
		format = settings.Output.Format
	}
	if output.NormalizeFormatName(format) == "console" && dir == "" {
		data, err := output.ConsoleFormatter{}.Format(report)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	if dir == "" {
		dir = settings.Output.Directory
	}
	paths, err := output.GenerateReport(report, format, dir)
	for _, p := range paths {
		fmt.Fprintf(w, "Report written to %s\n", p)
	}
	return err
}

func isValidationError(err error) bool {
	return errors.Is(err, calculation.ErrInvalidParameter) || errors.Is(err, calculation.ErrOutOfRange)
}

// printViolations lists each validation failure on its own line and returns
// how many there were.
func printViolations(w io.Writer, err error) int {
	errs := []error{err}
	var group interface{ Unwrap() []error }
	if errors.As(err, &group) {
		errs = group.Unwrap()
	}
	fmt.Fprintln(w, "Invalid input:")
	for _, e := range errs {
		fmt.Fprintf(w, "  - %v\n", e)
	}
	return len(errs)
}
