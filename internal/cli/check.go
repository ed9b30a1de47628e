package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// checkCommand creates the check command, which validates scene files.
func (c *CLI) checkCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [scene...]",
		Short: "Validate scene files",
		Long: `Validate scene files without opening a window.

Unknown kinds and malformed files are errors. Style values that would fall
back to defaults are warnings, which fail the check only with --strict.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat style warnings as errors")

	return cmd
}

func runCheck(cmd *cobra.Command, paths []string, strict bool) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	var failed, warned int
	for _, path := range paths {
		doc, err := loadScene(logger, path)
		if err != nil {
			printError(out, "%s: %v", path, err)
			failed++
			continue
		}
		warnings, err := doc.Check()
		if err != nil {
			printError(out, "%s: %v", path, err)
			failed++
			continue
		}
		if len(warnings) == 0 {
			printSuccess(out, "%s", path)
			continue
		}
		warned++
		for _, w := range warnings {
			printWarning(out, "%s: %v", path, w)
		}
	}

	switch {
	case failed > 0:
		return fmt.Errorf("%d of %d scene files failed", failed, len(paths))
	case strict && warned > 0:
		return fmt.Errorf("%d of %d scene files have warnings", warned, len(paths))
	}
	return nil
}
