package cmd

import (
	"fmt"
	"os"

	"modlist-builder/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "modlist-builder",
	Short: "Launcher preset to modlist converter",
	Long: `Modlist Builder turns an Arma 3 or DayZ launcher preset into the
name-list.txt and id-list.txt files used to start a server, ordered so
that every add-on is loaded after the add-ons it depends on.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config for readable timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
