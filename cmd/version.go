package cmd

import (
	"fmt"

	"github.com/azure/draftwrapper/internal/config"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/azure/draftwrapper/cmd.version=v0.1.0"
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the draftv2 release version",
	Long: `Print the draftv2 release the binary name targets.
Use --version for the version of draftwrapper itself.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	_, _ = fmt.Fprintln(ioOut, cfg.Version)
	return nil
}
