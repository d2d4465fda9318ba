package cmd

import (
	"fmt"

	"modlist-builder/feature/builder"
	"modlist-builder/feature/manifest"
	"modlist-builder/feature/output"
	"modlist-builder/feature/preset"

	"github.com/spf13/cobra"
)

var inspectFamily string

// inspectCmd reports the match status of every preset entry.
var inspectCmd = &cobra.Command{
	Use:   "inspect <preset.html>",
	Short: "Show how a preset matches the installed add-ons",
	Long: `Inspect parses a preset and compares every entry with the launcher's
Steam.json. Nothing is written.

Markers:
  ✓ installed
  ! installed under a different name (Steam.json wins)
  ✗ not installed, or named with a semicolon`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFamily, "family", "", "Override preset family detection (arma, dayz)")
	RootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	opts, err := presetOptions(inspectFamily)
	if err != nil {
		return err
	}

	doc, err := preset.ParseFile(firstArg(args), opts)
	if err != nil {
		return err
	}

	reader := manifest.NewReader(cfg.Manifest)
	path, err := reader.Path(doc.Family)
	if err != nil {
		return err
	}

	inspection, err := builder.NewService(reader, nil, nil, l).Inspect(cmd.Context(), doc)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printTitle(w, "Preset")
	printKeyValue(w, "Family", doc.Family.DisplayName())
	if doc.Name != "" {
		printKeyValue(w, "Name", doc.Name)
	}
	printKeyValue(w, "Manifest", path)
	fmt.Fprintln(w)

	printTitle(w, "Entries")
	for _, e := range inspection.Entries {
		printEntry(w, e)
	}
	fmt.Fprintln(w)

	summary := output.Summarize(inspection.Order)
	printTitle(w, "Summary")
	printKeyValue(w, "Installed", fmt.Sprint(inspection.Count(builder.StatusInstalled)))
	printKeyValue(w, "Renamed", fmt.Sprint(inspection.Count(builder.StatusRenamed)))
	printKeyValue(w, "Missing", fmt.Sprint(inspection.Count(builder.StatusMissing)))
	printKeyValue(w, "Invalid", fmt.Sprint(inspection.Count(builder.StatusInvalid)))
	printKeyValue(w, "Size", summary.HumanSize())

	return nil
}
