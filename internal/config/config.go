package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix namespaces every environment variable the loader reads.
const envPrefix = "GRAHA"

// Config represents the complete engine configuration.
type Config struct {
	Scoring       ScoringConfig       `yaml:"scoring" envconfig:"SCORING"`
	Logging       LoggingConfig       `yaml:"logging" envconfig:"LOGGING"`
	Observability ObservabilityConfig `yaml:"observability" envconfig:"OBSERVABILITY"`
}

// ScoringConfig carries the calibrated tunables of the strength model.
// The struct is treated as immutable once Load returns; the combiners
// receive a copy and never consult globals.
type ScoringConfig struct {
	// HouseBase and HouseScale map a raw house total onto the 0-100 scale:
	// score = HouseBase + raw*HouseScale, clamped to [0, 100].
	HouseBase  float64 `yaml:"house_base" envconfig:"HOUSE_BASE"`
	HouseScale float64 `yaml:"house_scale" envconfig:"HOUSE_SCALE"`

	// Primary house layer weights. Validate requires them to sum to 1.0.
	WeightD1       float64 `yaml:"weight_d1" envconfig:"WEIGHT_D1"`
	WeightNavamsha float64 `yaml:"weight_navamsha" envconfig:"WEIGHT_NAVAMSHA"`
	WeightVarga    float64 `yaml:"weight_varga" envconfig:"WEIGHT_VARGA"`
	WeightYoga     float64 `yaml:"weight_yoga" envconfig:"WEIGHT_YOGA"`
	WeightKaraka   float64 `yaml:"weight_karaka" envconfig:"WEIGHT_KARAKA"`

	// Calibration anchors of the planet score curve. Raw weighted totals
	// at the three anchor points map to the paired scores; segments
	// between anchors interpolate linearly and the outer segments
	// extrapolate along the slope of the adjacent segment.
	AnchorLowRaw    float64 `yaml:"anchor_low_raw" envconfig:"ANCHOR_LOW_RAW"`
	AnchorLowScore  float64 `yaml:"anchor_low_score" envconfig:"ANCHOR_LOW_SCORE"`
	AnchorMidRaw    float64 `yaml:"anchor_mid_raw" envconfig:"ANCHOR_MID_RAW"`
	AnchorMidScore  float64 `yaml:"anchor_mid_score" envconfig:"ANCHOR_MID_SCORE"`
	AnchorHighRaw   float64 `yaml:"anchor_high_raw" envconfig:"ANCHOR_HIGH_RAW"`
	AnchorHighScore float64 `yaml:"anchor_high_score" envconfig:"ANCHOR_HIGH_SCORE"`

	// Soft clamp bounds for calibrated planet scores. Scores never leave
	// [ClampMin, ClampMax] so downstream consumers can rely on headroom
	// at both ends of the scale.
	ClampMin float64 `yaml:"clamp_min" envconfig:"CLAMP_MIN"`
	ClampMax float64 `yaml:"clamp_max" envconfig:"CLAMP_MAX"`

	// BatchConcurrency bounds the number of charts scored in parallel by
	// ScoreBatch.
	BatchConcurrency int `yaml:"batch_concurrency" envconfig:"BATCH_CONCURRENCY"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ObservabilityConfig contains OpenTelemetry configuration.
type ObservabilityConfig struct {
	ServiceName    string  `yaml:"service_name" envconfig:"SERVICE_NAME"`
	Environment    string  `yaml:"environment" envconfig:"ENVIRONMENT"`
	TraceExporter  string  `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER"`   // "stdout", "none"
	MetricExporter string  `yaml:"metric_exporter" envconfig:"METRIC_EXPORTER"` // "prometheus", "none"
	EnableTracing  bool    `yaml:"enable_tracing" envconfig:"ENABLE_TRACING"`
	EnableMetrics  bool    `yaml:"enable_metrics" envconfig:"ENABLE_METRICS"`
	SampleRatio    float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO"`
}

// Load builds the configuration from defaults, an optional YAML overlay,
// and environment variables, in that order of increasing precedence.
// Defaults live in Default rather than in struct tags so the environment
// pass never clobbers values the overlay file set.
func Load() (*Config, error) {
	cfg := *Default()

	if path := configFilePath(); path != "" {
		if err := overlayFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// overlayFromFile merges a YAML document into cfg. Keys absent from the
// document keep their current values.
func overlayFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// configFilePath resolves the overlay file. An explicit GRAHA_CONFIG_FILE
// always wins; otherwise common locations are probed and silence means no
// overlay.
func configFilePath() string {
	if path := os.Getenv(envPrefix + "_CONFIG_FILE"); path != "" {
		return path
	}

	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Validate checks the structural rules the combiners rely on. Logging
// fields are normalized rather than rejected.
func (c *Config) Validate() error {
	s := &c.Scoring

	if s.HouseScale <= 0 {
		return fmt.Errorf("house scale must be positive, got %v", s.HouseScale)
	}
	if s.HouseBase < 0 || s.HouseBase > 100 {
		return fmt.Errorf("house base must lie in [0, 100], got %v", s.HouseBase)
	}

	weights := []float64{s.WeightD1, s.WeightNavamsha, s.WeightVarga, s.WeightYoga, s.WeightKaraka}
	sum := 0.0
	for _, w := range weights {
		if w <= 0 {
			return fmt.Errorf("house layer weights must be positive, got %v", w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("house layer weights must sum to 1.0, got %v", sum)
	}

	if !(s.AnchorLowRaw < s.AnchorMidRaw && s.AnchorMidRaw < s.AnchorHighRaw) {
		return fmt.Errorf("calibration anchor raws must be strictly increasing: %v, %v, %v",
			s.AnchorLowRaw, s.AnchorMidRaw, s.AnchorHighRaw)
	}
	if !(s.AnchorLowScore < s.AnchorMidScore && s.AnchorMidScore < s.AnchorHighScore) {
		return fmt.Errorf("calibration anchor scores must be strictly increasing: %v, %v, %v",
			s.AnchorLowScore, s.AnchorMidScore, s.AnchorHighScore)
	}

	if s.ClampMin >= s.ClampMax {
		return fmt.Errorf("clamp bounds must be ordered, got [%v, %v]", s.ClampMin, s.ClampMax)
	}
	if s.ClampMin < 0 || s.ClampMax > 100 {
		return fmt.Errorf("clamp bounds must lie in [0, 100], got [%v, %v]", s.ClampMin, s.ClampMax)
	}

	if s.BatchConcurrency < 1 {
		return fmt.Errorf("batch concurrency must be at least 1, got %d", s.BatchConcurrency)
	}

	o := &c.Observability
	if o.SampleRatio < 0 || o.SampleRatio > 1 {
		return fmt.Errorf("sample ratio must lie in [0, 1], got %v", o.SampleRatio)
	}
	switch o.TraceExporter {
	case "stdout", "none":
	default:
		return fmt.Errorf("unsupported trace exporter: %s", o.TraceExporter)
	}
	switch o.MetricExporter {
	case "prometheus", "none":
	default:
		return fmt.Errorf("unsupported metric exporter: %s", o.MetricExporter)
	}

	// Logging is normalized, never fatal.
	if c.Logging.Format != "json" {
		c.Logging.Format = "json"
	}
	switch strings.ToLower(c.Logging.Output) {
	case "stdout", "file", "both":
		c.Logging.Output = strings.ToLower(c.Logging.Output)
	default:
		c.Logging.Output = "stdout"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/grahabala.log"
	}

	return nil
}

// Default returns the canonical configuration. The scoring values are the
// fitted parameters of the reference model.
func Default() *Config {
	return &Config{
		Scoring: ScoringConfig{
			HouseBase:  50,
			HouseScale: 2.6,

			WeightD1:       0.40,
			WeightNavamsha: 0.20,
			WeightVarga:    0.15,
			WeightYoga:     0.15,
			WeightKaraka:   0.10,

			AnchorLowRaw:    15,
			AnchorLowScore:  25,
			AnchorMidRaw:    35,
			AnchorMidScore:  50,
			AnchorHighRaw:   55,
			AnchorHighScore: 90,

			ClampMin: 5,
			ClampMax: 98,

			BatchConcurrency: 4,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stdout",
			FilePath: "logs/grahabala.log",
		},
		Observability: ObservabilityConfig{
			ServiceName:    "grahabala",
			Environment:    "development",
			TraceExporter:  "stdout",
			MetricExporter: "prometheus",
			EnableTracing:  true,
			EnableMetrics:  true,
			SampleRatio:    1.0,
		},
	}
}
