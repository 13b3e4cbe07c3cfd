// accuracy measures how close the fsqrt approximations get to the
// exact square roots for each number of Newton-Raphson iterations.
// Used by the fsqrtcheck tool to verify the precision claims on the
// current platform.
package accuracy

import "fmt"
import "math"
import "errors"

import "github.com/tinne26/evec/fsqrt"

// Measurement parameters. Samples are distributed log-uniformly
// within [Min, Max], so each order of magnitude gets the same
// number of samples.
type Config struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
	Samples int `yaml:"samples"`
	MaxIterations int `yaml:"max_iterations"`
	Inverse bool `yaml:"inverse"`
}

// Precision stats for a single iteration count.
type Result struct {
	Iterations int `yaml:"iterations"`
	MaxRelErr float64 `yaml:"max_rel_err"`
	MeanRelErr float64 `yaml:"mean_rel_err"`
	WorstInput float32 `yaml:"worst_input"`
	Digits float64 `yaml:"digits"` // -log10(MaxRelErr)
}

var ErrInvalidConfig = errors.New("invalid accuracy config")

// Upper limits accepted by [Config.Validate]().
const (
	MaxSamples = 10_000_000
	MaxIterationsLimit = 64
)

func DefaultConfig() Config {
	return Config{
		Min: 1e-6,
		Max: 1e6,
		Samples: 10000,
		MaxIterations: fsqrt.DefaultIterations,
	}
}

func (self Config) Validate() error {
	if !(self.Min > 0) || math.IsInf(float64(self.Min), 0) {
		return fmt.Errorf("%w: min must be a finite positive value (got %g)", ErrInvalidConfig, self.Min)
	}
	if !(self.Max > self.Min) || math.IsInf(float64(self.Max), 0) {
		return fmt.Errorf("%w: max must be finite and > min (got %g)", ErrInvalidConfig, self.Max)
	}
	if self.Samples < 2 {
		return fmt.Errorf("%w: at least 2 samples required (got %d)", ErrInvalidConfig, self.Samples)
	}
	if self.Samples > MaxSamples {
		return fmt.Errorf("%w: at most %d samples allowed (got %d)", ErrInvalidConfig, MaxSamples, self.Samples)
	}
	if self.MaxIterations < 0 {
		return fmt.Errorf("%w: negative max iterations (%d)", ErrInvalidConfig, self.MaxIterations)
	}
	if self.MaxIterations > MaxIterationsLimit {
		return fmt.Errorf("%w: at most %d iterations allowed (got %d)", ErrInvalidConfig, MaxIterationsLimit, self.MaxIterations)
	}
	return nil
}

// Returns one [Result] for each iteration count between 0 and
// config.MaxIterations, both included.
func Measure(config Config) ([]Result, error) {
	err := config.Validate()
	if err != nil { return nil, err }

	samples := sampleInputs(config)
	results := make([]Result, 0, config.MaxIterations + 1)
	for iters := 0; iters <= config.MaxIterations; iters++ {
		result := Result{ Iterations: iters }
		var sum float64
		for i, value := range samples {
			exact := math.Sqrt(float64(value))
			if config.Inverse { exact = 1/exact }
			approx := fsqrt.Approx(value, config.Inverse, iters)
			relErr := math.Abs(float64(approx) - exact)/exact
			sum += relErr
			if i == 0 || relErr > result.MaxRelErr {
				result.MaxRelErr  = relErr
				result.WorstInput = value
			}
		}
		result.MeanRelErr = sum/float64(len(samples))
		result.Digits = digits(result.MaxRelErr)
		results = append(results, result)
	}
	return results, nil
}

func sampleInputs(config Config) []float32 {
	logMin := math.Log(float64(config.Min))
	logMax := math.Log(float64(config.Max))
	step := (logMax - logMin)/float64(config.Samples - 1)

	samples := make([]float32, config.Samples)
	for i := range samples {
		samples[i] = float32(math.Exp(logMin + step*float64(i)))
	}
	samples[len(samples) - 1] = config.Max // avoid exp/log drift on the upper end
	return samples
}

func digits(relErr float64) float64 {
	if relErr == 0 { return math.Inf(1) }
	return -math.Log10(relErr)
}
