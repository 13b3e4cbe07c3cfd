package accuracy

import "io"
import "fmt"

import "gopkg.in/yaml.v3"
import "golang.org/x/text/language"
import "golang.org/x/text/message"

// The document written by [WriteYAML]().
type Report struct {
	Config Config `yaml:"config"`
	Results []Result `yaml:"results"`
}

// Writes a human readable table with the results.
func WriteText(w io.Writer, config Config, results []Result) error {
	mode := "sqrt"
	if config.Inverse { mode = "1/sqrt" }

	// only the sample count goes through the printer, as it
	// would otherwise format the range floats in its own notation
	samples := message.NewPrinter(language.English).Sprintf("%d", config.Samples)
	_, err := fmt.Fprintf(w, "fsqrt %s accuracy, %s samples in [%g, %g]\n", mode, samples, config.Min, config.Max)
	if err != nil { return err }
	_, err = fmt.Fprintf(w, "%5s  %12s  %12s  %7s  %s\n", "iters", "max rel err", "mean rel err", "digits", "worst input")
	if err != nil { return err }
	for _, result := range results {
		_, err = fmt.Fprintf(w, "%5d  %12.4e  %12.4e  %7.2f  %g\n",
			result.Iterations, result.MaxRelErr, result.MeanRelErr, result.Digits, result.WorstInput)
		if err != nil { return err }
	}
	return nil
}

// Writes the config and results as a YAML document.
func WriteYAML(w io.Writer, config Config, results []Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	err := encoder.Encode(Report{ Config: config, Results: results })
	if err != nil { return fmt.Errorf("encoding accuracy report: %w", err) }
	return encoder.Close()
}
