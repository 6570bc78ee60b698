package cmd

import (
	"fmt"

	"github.com/azure/draftwrapper/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var infoOutput outputFormat

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the detected host platform and binary name",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().VarP(&infoOutput, "output", "o", `output format ("text" or "yaml", default from config)`)
	rootCmd.AddCommand(infoCmd)
}

// hostReport is what info prints.
type hostReport struct {
	System     string `yaml:"system"`
	Descriptor string `yaml:"descriptor"`
	OS         string `yaml:"os"`
	Arch       string `yaml:"arch"`
	BinaryName string `yaml:"binary_name"`
	Version    string `yaml:"version"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	info, err := detectPlatform()
	if err != nil {
		return err
	}

	report := hostReport{
		System:     info.System,
		Descriptor: info.Descriptor,
		OS:         info.OS(),
		Arch:       info.Arch(),
		BinaryName: info.BinaryName(),
		Version:    cfg.Version,
	}

	format := cfg.Output
	if infoOutput != "" {
		format = string(infoOutput)
	}

	if format == config.OutputYAML {
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		_, _ = fmt.Fprint(ioOut, string(data))
		return nil
	}

	_, _ = fmt.Fprintf(ioOut, "System:      %s\n", report.System)
	_, _ = fmt.Fprintf(ioOut, "Descriptor:  %s\n", report.Descriptor)
	_, _ = fmt.Fprintf(ioOut, "OS:          %s\n", report.OS)
	_, _ = fmt.Fprintf(ioOut, "Arch:        %s\n", report.Arch)
	_, _ = fmt.Fprintf(ioOut, "Binary name: %s\n", report.BinaryName)
	_, _ = fmt.Fprintf(ioOut, "Version:     %s\n", report.Version)
	return nil
}
