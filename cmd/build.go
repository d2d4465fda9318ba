package cmd

import (
	"errors"
	"fmt"

	"modlist-builder/core/modlist"
	"modlist-builder/feature/builder"
	"modlist-builder/feature/manifest"
	"modlist-builder/feature/output"
	"modlist-builder/feature/preset"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the build command
	buildFamily string
	buildOut    string
	buildYes    bool
	buildStrict bool
)

// buildCmd converts a preset into the two modlist files.
var buildCmd = &cobra.Command{
	Use:   "build <preset.html>",
	Short: "Build name-list.txt and id-list.txt from a launcher preset",
	Long: `Build reads a launcher preset, matches every entry against the
launcher's Steam.json and writes the ordered name and id lists.

Entries that are not installed are written to unmatched.txt and you are
asked whether to continue without them.

Examples:
  # Interactive
  build "Weekend Op.html"

  # Continue without missing add-ons
  build "Weekend Op.html" --yes

  # Fail on missing add-ons (CI)
  build "Weekend Op.html" --strict --out ./server`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildFamily, "family", "", "Override preset family detection (arma, dayz)")
	buildCmd.Flags().StringVar(&buildOut, "out", "", "Output directory (default from OUTPUT_DIR)")
	buildCmd.Flags().BoolVar(&buildYes, "yes", false, "Continue without unmatched entries (non-interactive)")
	buildCmd.Flags().BoolVar(&buildStrict, "strict", false, "Stop when any entry is not installed (non-interactive)")
	buildCmd.MarkFlagsMutuallyExclusive("yes", "strict")

	RootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	if buildOut != "" {
		cfg.Output.Dir = buildOut
	}

	opts, err := presetOptions(buildFamily)
	if err != nil {
		return err
	}

	doc, err := preset.ParseFile(firstArg(args), opts)
	if err != nil {
		return err
	}
	l.Info("Preset loaded",
		zap.String("family", doc.Family.DisplayName()),
		zap.String("name", doc.Name),
		zap.Int("entries", len(doc.Entries)),
	)

	publisher, err := newPublisher(cfg.Storage, l)
	if err != nil {
		return err
	}

	writer := output.NewWriter(cfg.Output)
	svc := builder.NewService(manifest.NewReader(cfg.Manifest), writer, publisher, l)

	outcome, err := svc.Build(ctx, doc, buildConfirmer(cmd))
	if errors.Is(err, modlist.ErrTerminated) && !buildStrict {
		l.Warn("Operation cancelled by user. Only the unmatched report was written.",
			zap.String("report", writer.Config().ReportFile))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.SuccessMessage(writer.Config(), outcome.Summary))
	return nil
}

func buildConfirmer(cmd *cobra.Command) builder.Confirmer {
	switch {
	case buildYes:
		return builder.AcceptUnmatched
	case buildStrict:
		return builder.DeclineUnmatched
	default:
		return &builder.PromptConfirmer{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	}
}

func presetOptions(family string) (preset.Options, error) {
	if family == "" {
		return preset.Options{}, nil
	}
	f, err := modlist.ParseFamily(family)
	if err != nil {
		return preset.Options{}, fmt.Errorf("invalid --family %q: %w", family, err)
	}
	return preset.Options{Family: f}, nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
