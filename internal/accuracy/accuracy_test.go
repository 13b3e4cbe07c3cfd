package accuracy

import "bytes"
import "math"
import "errors"
import "strings"
import "testing"

import "gopkg.in/yaml.v3"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []func(*Config){
		func(c *Config) { c.Min = 0 },
		func(c *Config) { c.Min = -1 },
		func(c *Config) { c.Max = c.Min },
		func(c *Config) { c.Samples = 1 },
		func(c *Config) { c.MaxIterations = -1 },
		func(c *Config) { c.Samples = MaxSamples + 1 },
		func(c *Config) { c.MaxIterations = MaxIterationsLimit + 1 },
		func(c *Config) { c.MaxIterations = math.MaxInt },
		func(c *Config) { c.Samples = math.MaxInt },
	}
	for i, modify := range tests {
		config := DefaultConfig()
		modify(&config)
		err := config.Validate()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("test #%d: expected ErrInvalidConfig, got %v", i, err)
		}
	}
}

func TestMeasureDefaults(t *testing.T) {
	results, err := Measure(DefaultConfig())
	require.NoError(t, err)
	require.Len(t, results, 5)

	for i, result := range results {
		assert.Equal(t, i, result.Iterations)
		assert.LessOrEqual(t, result.MeanRelErr, result.MaxRelErr)
		assert.NotZero(t, result.WorstInput)
	}
	for i := 1; i < 4; i++ {
		assert.Less(t, results[i].MaxRelErr, results[i - 1].MaxRelErr)
	}

	// raw seed error is ~3.4%, default iterations must be within 1e-5
	assert.InDelta(t, 0.034, results[0].MaxRelErr, 0.002)
	assert.Less(t, results[4].MaxRelErr, 1e-5)
	assert.Greater(t, results[4].Digits, 5.0)
}

func TestMeasureInverse(t *testing.T) {
	config := DefaultConfig()
	config.Inverse = true
	config.Samples = 500
	results, err := Measure(config)
	require.NoError(t, err)
	assert.Less(t, results[len(results) - 1].MaxRelErr, 1e-5)

	config.MaxIterations = MaxIterationsLimit
	results, err = Measure(config)
	require.NoError(t, err)
	assert.Len(t, results, MaxIterationsLimit + 1)

	config.Max = -3
	_, err = Measure(config)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSampleInputs(t *testing.T) {
	config := Config{ Min: 1, Max: 1000, Samples: 4 }
	samples := sampleInputs(config)
	require.Len(t, samples, 4)
	assert.Equal(t, float32(1), samples[0])
	assert.InEpsilon(t, 10, samples[1], 1e-5)
	assert.InEpsilon(t, 100, samples[2], 1e-5)
	assert.Equal(t, float32(1000), samples[3])
}

func TestWriteText(t *testing.T) {
	config := DefaultConfig()
	config.MaxIterations = 2
	results, err := Measure(config)
	require.NoError(t, err)

	var buffer bytes.Buffer
	require.NoError(t, WriteText(&buffer, config, results))
	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "10,000 samples")
	assert.Contains(t, lines[0], "fsqrt sqrt accuracy")
	assert.Contains(t, lines[0], "in [1e-06, 1e+06]")
	assert.Contains(t, lines[1], "max rel err")
}

func TestWriteYAML(t *testing.T) {
	config := DefaultConfig()
	config.Samples = 100
	results, err := Measure(config)
	require.NoError(t, err)

	var buffer bytes.Buffer
	require.NoError(t, WriteYAML(&buffer, config, results))

	var report Report
	require.NoError(t, yaml.Unmarshal(buffer.Bytes(), &report))
	assert.Equal(t, config, report.Config)
	require.Len(t, report.Results, len(results))
	assert.Equal(t, results[3].Iterations, report.Results[3].Iterations)
	assert.InEpsilon(t, results[0].MaxRelErr, report.Results[0].MaxRelErr, 1e-9)
}
