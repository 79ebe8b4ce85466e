package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the generator configuration
type Config struct {
	Mode        string           `yaml:"mode"`
	Audio       AudioConfig      `yaml:"audio"`
	Impairments ImpairmentConfig `yaml:"impairments"`
	Output      OutputConfig     `yaml:"output"`
	Logging     LoggingConfig    `yaml:"logging"`
}

// AudioConfig contains synthesis settings
type AudioConfig struct {
	SampleRate float64 `yaml:"sample_rate"` // Synthesis rate in Hz (default: 44100)
	Amplitude  float64 `yaml:"amplitude"`   // Carrier amplitude, 0-1 (default: 0.8 to leave noise headroom)

	// Nominal decoder-side rate for the raw output. Kept for parity with
	// the reference generator, which defines it but never resamples; the
	// raw file is written at sample_rate.
	RawTargetSampleRate float64 `yaml:"raw_target_sample_rate"`
}

// ImpairmentConfig contains the channel simulation settings. The
// defaults are the reference challenge profile: enough degradation to
// stress a decoder while staying decodable.
type ImpairmentConfig struct {
	Enabled            bool    `yaml:"enabled"`
	DriftPPM           float64 `yaml:"drift_ppm"`           // Clock drift in parts per million (default: 50)
	OffsetHz           float64 `yaml:"offset_hz"`           // Carrier offset in Hz (default: 15)
	FadingSpeed        float64 `yaml:"fading_speed"`        // QSB envelope rate in Hz (default: 0.2)
	FadingDepth        float64 `yaml:"fading_depth"`        // QSB depth, 0-1 (default: 0.5)
	NoiseEnabled       bool    `yaml:"noise_enabled"`       // Enable AWGN (default: true)
	SNRdB              float64 `yaml:"snr_db"`              // Target SNR in dB (default: 15)
	ImpulseProbability float64 `yaml:"impulse_probability"` // Per-sample spike probability (default: 0.00005)
	Seed               int64   `yaml:"seed"`                // RNG seed; 0 = time-based
}

// OutputConfig contains the output file paths
type OutputConfig struct {
	WAVPath string `yaml:"wav_path"`
	RawPath string `yaml:"raw_path"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the reference challenge configuration.
func DefaultConfig() *Config {
	return &Config{
		Mode: "PD120",
		Audio: AudioConfig{
			SampleRate:          44100,
			Amplitude:           0.8,
			RawTargetSampleRate: 11025,
		},
		Impairments: ImpairmentConfig{
			Enabled:            true,
			DriftPPM:           50,
			OffsetHz:           15,
			FadingSpeed:        0.2,
			FadingDepth:        0.5,
			NoiseEnabled:       true,
			SNRdB:              15,
			ImpulseProbability: 0.00005,
		},
		Output: OutputConfig{
			WAVPath: "pd120_signal.wav",
			RawPath: "pd120_44100Hz.raw",
		},
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults.
// An empty filename returns the defaults unchanged.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()
	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects parameter combinations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %g", c.Audio.SampleRate)
	}
	if c.Audio.Amplitude <= 0 || c.Audio.Amplitude > 1 {
		return fmt.Errorf("audio.amplitude must be in (0, 1], got %g", c.Audio.Amplitude)
	}
	if c.Impairments.FadingDepth < 0 || c.Impairments.FadingDepth > 1 {
		return fmt.Errorf("impairments.fading_depth must be in [0, 1], got %g", c.Impairments.FadingDepth)
	}
	if p := c.Impairments.ImpulseProbability; p < 0 || p > 1 {
		return fmt.Errorf("impairments.impulse_probability must be in [0, 1], got %g", p)
	}
	return nil
}
