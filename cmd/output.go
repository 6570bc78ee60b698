package cmd

import (
	"github.com/azure/draftwrapper/internal/config"
	"github.com/spf13/pflag"
)

// outputFormat is a pflag.Value restricted to the config output formats.
type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

func (o *outputFormat) String() string { return string(*o) }

func (o *outputFormat) Set(v string) error {
	if err := config.ValidateOutput(v); err != nil {
		return err
	}
	*o = outputFormat(v)
	return nil
}

func (o *outputFormat) Type() string { return "format" }
