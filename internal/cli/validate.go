package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dkt-index-engine/internal/domain"
	"github.com/dkt-index-engine/internal/export"
	"github.com/dkt-index-engine/pkg/dkt"
)

// errInvalidReports is returned when any checked report fails validation
var errInvalidReports = errors.New("one or more reports are invalid")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check stats reports before analysis",
		Long: `Validate reads each stats report and lists a missing ColHeaders marker,
missing "# Measure" headers, short rows, non-finite fields and regions
absent from the reference cohort.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, a, args)
		},
	}
}

func runValidate(cmd *cobra.Command, a *app, paths []string) error {
	validator := dkt.NewValidator(domain.AdultMaleReference)

	w, closeOutput, err := a.openOutput(cmd)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	invalid, err := writeValidations(a, w, validator, paths)
	if err != nil {
		_ = closeOutput()
		return fmt.Errorf("validate: %w", err)
	}
	if err := closeOutput(); err != nil {
		return fmt.Errorf("validate: closing output: %w", err)
	}

	if invalid > 0 {
		return fmt.Errorf("validate: %w (%d of %d)", errInvalidReports, invalid, len(paths))
	}
	return nil
}

// writeValidations checks each report in turn and returns how many failed
func writeValidations(a *app, w io.Writer, validator *dkt.Validator, paths []string) (int, error) {
	invalid := 0
	for _, path := range paths {
		report, err := validateFile(validator, path)
		if err != nil {
			return invalid, err
		}
		kind := dkt.DetectKind(path)

		if !report.ValidFor(kind) {
			invalid++
		}

		a.logger.WithFields(logrus.Fields{
			"path":    path,
			"kind":    kind,
			"regions": report.Regions,
			"issues":  len(report.Issues),
		}).Debug("Validated report")

		if err := export.WriteValidation(w, path, kind, report); err != nil {
			return invalid, err
		}
	}
	return invalid, nil
}

func validateFile(validator *dkt.Validator, path string) (*dkt.ValidationReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return validator.Validate(file)
}
