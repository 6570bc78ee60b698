package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/azure/draftwrapper/internal/platform"
	"github.com/spf13/cobra"
)

// Package-level function variables for testability.
// Tests override these to simulate a host without calling uname.
var (
	detectPlatform           = platform.Detect
	ioOut          io.Writer = os.Stdout
)

var rootCmd = &cobra.Command{
	Use:   "draftwrapper",
	Short: "Print the draftv2 binary name for this host",
	Long: `draftwrapper identifies the host operating system and CPU architecture
and prints the name of the matching draftv2 release binary.

Examples:
  draftwrapper          # draftv2-linux-amd64
  draftwrapper info     # show what was detected`,
	Args:              cobra.NoArgs,
	RunE:              runBinaryName,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func runBinaryName(cmd *cobra.Command, args []string) error {
	info, err := detectPlatform()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(ioOut, info.BinaryName())
	return nil
}
