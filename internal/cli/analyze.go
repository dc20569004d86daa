package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dkt-index-engine/internal/domain"
	"github.com/dkt-index-engine/internal/export"
	"github.com/dkt-index-engine/internal/service"
	"github.com/dkt-index-engine/pkg/dkt"
)

// statsDir is the FreeSurfer subject sub-directory holding the stats reports
const statsDir = "stats"

type analyzeCmd struct {
	app *app

	subject     string
	left        string
	right       string
	leftAparc   string
	rightAparc  string
	aseg        string
	subjectDirs []string
}

func newAnalyzeCmd(a *app) *cobra.Command {
	ac := &analyzeCmd{app: a}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute every structural index for one or more subjects",
		Long: `Analyze reads the left and right hemisphere DKT stats reports of a
subject, evaluates all indices and prints the report.

Reports may be named explicitly with --lh and --rh, or found by file name
inside FreeSurfer subject directories with --subject-dir. Optional aparc
and aseg reports add whole-brain measures.`,
		Args: cobra.NoArgs,
		RunE: ac.run,
	}

	cmd.Flags().StringVar(&ac.subject, "subject", "", "subject identifier shown in the report")
	cmd.Flags().StringVar(&ac.left, "lh", "", "left hemisphere lh.aparc.DKTatlas.stats")
	cmd.Flags().StringVar(&ac.right, "rh", "", "right hemisphere rh.aparc.DKTatlas.stats")
	cmd.Flags().StringVar(&ac.leftAparc, "lh-aparc", "", "optional left hemisphere lh.aparc.stats")
	cmd.Flags().StringVar(&ac.rightAparc, "rh-aparc", "", "optional right hemisphere rh.aparc.stats")
	cmd.Flags().StringVar(&ac.aseg, "aseg", "", "optional aseg.stats")
	cmd.Flags().StringArrayVar(&ac.subjectDirs, "subject-dir", nil, "FreeSurfer subject directory (repeatable)")

	cmd.MarkFlagsRequiredTogether("lh", "rh")
	cmd.MarkFlagsMutuallyExclusive("lh", "subject-dir")
	cmd.MarkFlagsMutuallyExclusive("rh", "subject-dir")

	return cmd
}

func (ac *analyzeCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := ac.app.config
	logger := ac.app.logger

	inputs, err := ac.collectInputs(logger)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	formatter, err := export.NewFormatter(cfg.Output.Format, export.Options{ShowDetails: cfg.Output.ShowDetails})
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	analyzer, err := service.NewDefaultAnalyzerService(cfg.Engine, logger)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	var reports []*domain.AnalysisReport
	if len(inputs) == 1 {
		report, err := analyzer.Analyze(ctx, inputs[0])
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}
		reports = append(reports, report)
	} else {
		batch, failures := analyzer.BatchAnalyze(ctx, inputs)
		for i, err := range failures {
			logger.WithError(err).WithField("subject", inputs[i].Subject).Error("Subject analysis failed")
		}
		if len(failures) > 0 {
			return fmt.Errorf("analyze: %d of %d subjects failed", len(failures), len(inputs))
		}
		reports = batch
	}

	w, closeOutput, err := ac.app.openOutput(cmd)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	for _, report := range reports {
		if err := formatter.Format(w, report); err != nil {
			_ = closeOutput()
			return fmt.Errorf("analyze: writing report: %w", err)
		}
	}
	if err := closeOutput(); err != nil {
		return fmt.Errorf("analyze: closing output: %w", err)
	}

	return nil
}

// collectInputs reads the report files named on the command line
func (ac *analyzeCmd) collectInputs(logger *logrus.Logger) ([]*service.AnalysisInput, error) {
	if len(ac.subjectDirs) > 0 {
		if ac.subject != "" && len(ac.subjectDirs) > 1 {
			return nil, errors.New("--subject cannot name more than one subject directory")
		}
		inputs := make([]*service.AnalysisInput, 0, len(ac.subjectDirs))
		for _, dir := range ac.subjectDirs {
			input, err := readSubjectDir(dir, logger)
			if err != nil {
				return nil, err
			}
			if ac.subject != "" {
				input.Subject = ac.subject
			}
			inputs = append(inputs, input)
		}
		return inputs, nil
	}

	if ac.left == "" || ac.right == "" {
		return nil, errors.New("provide --lh and --rh, or --subject-dir")
	}

	files := reportFiles{
		dkt.LEFT_DKT:    ac.left,
		dkt.RIGHT_DKT:   ac.right,
		dkt.LEFT_APARC:  ac.leftAparc,
		dkt.RIGHT_APARC: ac.rightAparc,
		dkt.ASEG:        ac.aseg,
	}
	if err := files.check(logger); err != nil {
		return nil, err
	}

	input, err := files.read()
	if err != nil {
		return nil, err
	}
	input.Subject = ac.subject
	return []*service.AnalysisInput{input}, nil
}

// reportFiles maps each report kind to its path; empty paths are absent
type reportFiles map[dkt.ReportKind]string

// check rejects files whose name shows they are the wrong report. A file
// whose name is not recognized at all is accepted with a warning.
func (f reportFiles) check(logger *logrus.Logger) error {
	for kind, path := range f {
		if path == "" {
			continue
		}
		err := dkt.CheckKind(path, kind)
		if err == nil {
			continue
		}
		if dkt.DetectKind(path) != dkt.UNKNOWN || errors.Is(err, domain.ErrHemisphereMismatch) {
			return err
		}
		logger.WithFields(logrus.Fields{
			"path":     path,
			"expected": kind.FileName(),
		}).Warn("Report file name not recognized; reading it as requested")
	}
	return nil
}

func (f reportFiles) read() (*service.AnalysisInput, error) {
	contents := make(map[dkt.ReportKind]string, len(f))
	for kind, path := range f {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s report: %w", kind.Label(), err)
		}
		contents[kind] = string(data)
	}

	return &service.AnalysisInput{
		Left:       contents[dkt.LEFT_DKT],
		Right:      contents[dkt.RIGHT_DKT],
		LeftAparc:  contents[dkt.LEFT_APARC],
		RightAparc: contents[dkt.RIGHT_APARC],
		Aseg:       contents[dkt.ASEG],
	}, nil
}

// readSubjectDir finds the reports of a FreeSurfer subject directory, in
// its stats sub-directory or at the top level. Both DKT reports are required.
func readSubjectDir(dir string, logger *logrus.Logger) (*service.AnalysisInput, error) {
	searchDir := dir
	if info, err := os.Stat(filepath.Join(dir, statsDir)); err == nil && info.IsDir() {
		searchDir = filepath.Join(dir, statsDir)
	}

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return nil, fmt.Errorf("reading subject directory: %w", err)
	}

	files := make(reportFiles)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		kind := dkt.DetectKind(entry.Name())
		if kind == dkt.UNKNOWN {
			continue
		}
		if _, exists := files[kind]; exists {
			logger.WithFields(logrus.Fields{
				"dir":  searchDir,
				"kind": kind,
				"file": entry.Name(),
			}).Warn("Ignoring duplicate report")
			continue
		}
		files[kind] = filepath.Join(searchDir, entry.Name())
	}

	for _, required := range []dkt.ReportKind{dkt.LEFT_DKT, dkt.RIGHT_DKT} {
		if files[required] == "" {
			return nil, fmt.Errorf("%w: %s has no %s", domain.ErrUnrecognizedReport, dir, required.FileName())
		}
	}

	input, err := files.read()
	if err != nil {
		return nil, err
	}
	input.Subject = filepath.Base(filepath.Clean(dir))
	return input, nil
}
