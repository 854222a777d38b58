package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"beanpath/errors"
	"beanpath/internal/analyze"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <package> [type...]",
		Short: "Report accessor bindings and conflicts of Go types",
		Long: `Load a Go package and report, for each exported named type, the getter
and setter bound to every property and any conflict that would make runtime
introspection fail.

Exits non-zero when a type has ambiguous accessors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer := analyze.NewAnalyzer(analyze.WithLogger(a.logger.Named("analyze")))

			report, err := analyzer.LoadPackages(args[0])
			if err != nil {
				return err
			}

			reports, err := selectTypes(analyzer, report, args[1:])
			if err != nil {
				return err
			}

			var failed int

			for _, tr := range reports {
				fmt.Fprintln(cmd.OutOrStdout(), tr)

				if tr.Diagnostics.HasErrors() {
					failed++
				}
			}

			if failed > 0 {
				return errors.Wrapf(errors.ErrAmbiguousAccessor, "%d of %d types have conflicting accessors", failed, len(reports))
			}

			return nil
		},
	}
}

// selectTypes returns the named types, or all inspected types when names is empty.
func selectTypes(analyzer *analyze.Analyzer, report *analyze.Report, names []string) ([]*analyze.TypeReport, error) {
	if len(names) == 0 {
		reports := make([]*analyze.TypeReport, 0, len(report.Types))
		for _, id := range report.IDs() {
			reports = append(reports, report.GetType(id))
		}

		return reports, nil
	}

	reports := make([]*analyze.TypeReport, 0, len(names))

	for _, name := range names {
		tr, err := lookupType(analyzer, report, name)
		if err != nil {
			return nil, err
		}

		reports = append(reports, tr)
	}

	return reports, nil
}

func lookupType(analyzer *analyze.Analyzer, report *analyze.Report, name string) (*analyze.TypeReport, error) {
	var firstErr error

	for path := range report.Packages {
		tr, err := analyzer.Inspect(path, name)
		if err == nil {
			return tr, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	if firstErr == nil {
		firstErr = errors.Newf("type %s not found: no package loaded", name)
	}

	return nil, firstErr
}
