// cli implements the fsqrtcheck command.
package cli

import "fmt"

import "github.com/spf13/cobra"

import "github.com/tinne26/evec/internal/accuracy"

var ValidFormats = []string{"text", "yaml"}

// Creates the root fsqrtcheck command.
func NewRootCommand() *cobra.Command {
	config := accuracy.DefaultConfig()
	var format string

	cmd := &cobra.Command{
		Use:   "fsqrtcheck",
		Short: "Measure the precision of the fsqrt approximations",
		Long:  "Sweeps a range of inputs and reports the relative error of fsqrt\n" +
		       "for each number of Newton-Raphson iterations.",
		Args: cobra.NoArgs,
		SilenceUsage: true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(format) {
				return fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
			}
			results, err := accuracy.Measure(config)
			if err != nil { return err }

			out := cmd.OutOrStdout()
			if format == "yaml" {
				return accuracy.WriteYAML(out, config, results)
			}
			return accuracy.WriteText(out, config, results)
		},
	}

	flags := cmd.Flags()
	flags.Float32Var(&config.Min, "min", config.Min, "smallest input value")
	flags.Float32Var(&config.Max, "max", config.Max, "largest input value")
	flags.IntVarP(&config.Samples, "samples", "n", config.Samples, "number of log-spaced samples")
	flags.IntVarP(&config.MaxIterations, "iterations", "i", config.MaxIterations, "max Newton-Raphson iterations to report")
	flags.BoolVar(&config.Inverse, "inverse", false, "measure 1/sqrt instead of sqrt")
	flags.StringVar(&format, "format", "text", "output format (text|yaml)")
	return cmd
}

func isValidFormat(format string) bool {
	for _, valid := range ValidFormats {
		if valid == format { return true }
	}
	return false
}
