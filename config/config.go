package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "6MB"
	defaultSessionTTL         = 30 * time.Minute
	defaultDispatcherPort     = 8081
)

var defaultSearchPaths = []string{"config", "../config", "../../config"}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int          `json:"port" yaml:"port"`
		MaxRequestBodySize string       `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           HTTPTimeouts `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Dispatcher configuration for the push worker binary
	Dispatcher *DispatcherConfig `json:"dispatcher" yaml:"dispatcher"`

	// Registry configuration for the generator catalog
	Registry *RegistryConfig `json:"registry" yaml:"registry"`

	// Logistics configuration for the collaborative collection estimator
	Logistics *LogisticsConfig `json:"logistics" yaml:"logistics"`

	// Compliance configuration for reports and maintenance tracking
	Compliance *ComplianceConfig `json:"compliance" yaml:"compliance"`

	// QRCode configuration for certificate QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for collection request events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// HTTPTimeouts are applied to the underlying http.Server of every listener
type HTTPTimeouts struct {
	ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

// DispatcherConfig defines the listener of the Pub/Sub push worker
type DispatcherConfig struct {
	// Port of the push endpoint, the local publisher posts to it in development
	Port int `json:"port" yaml:"port"`

	// Audience expected in push OIDC tokens, usually the public https URL of /push.
	// Derived from the request when empty.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RegistryConfig defines where the generator catalog is loaded from
type RegistryConfig struct {
	// Path to the generators CSV file, relative paths are resolved against the config search paths
	Source string `json:"source" yaml:"source"`
}

// LogisticsConfig defines the product constants of the shared collection calculator
type LogisticsConfig struct {
	// ID of the generator that represents the acting business
	SelfID string `json:"selfId" yaml:"selfId"`

	// Estimator constants. An unset key keeps the reference value, an explicit 0 is honored.

	// Cost charged per participant when each collects independently
	BaseCostPerUser *float64 `json:"baseCostPerUser" yaml:"baseCostPerUser"`

	// Efficiency factor applied when exactly two generators share a route
	PairEfficiencyFactor *float64 `json:"pairEfficiencyFactor" yaml:"pairEfficiencyFactor"`

	// Efficiency factor applied when more than two generators share a route
	GroupEfficiencyFactor *float64 `json:"groupEfficiencyFactor" yaml:"groupEfficiencyFactor"`

	// CO2 avoided for every stop beyond the first, in kilograms
	CO2PerAdditionalStopKg *float64 `json:"co2PerAdditionalStopKg" yaml:"co2PerAdditionalStopKg"`

	// Minimum load in kilograms for a generator to anchor a route
	AnchorThresholdKg *float64 `json:"anchorThresholdKg" yaml:"anchorThresholdKg"`

	// Minutes added to the route ETA per point (generators and depot)
	MinutesPerStop int `json:"minutesPerStop" yaml:"minutesPerStop"`

	// Idle time after which a selection session is discarded
	SessionTTL time.Duration `json:"sessionTtl" yaml:"sessionTtl"`

	Depot DepotConfig `json:"depot" yaml:"depot"`
}

func (lc *LogisticsConfig) validate() error {
	bounds := []struct {
		key   string
		value *float64
		max   float64
	}{
		{key: "baseCostPerUser", value: lc.BaseCostPerUser, max: math.Inf(1)},
		{key: "pairEfficiencyFactor", value: lc.PairEfficiencyFactor, max: 1},
		{key: "groupEfficiencyFactor", value: lc.GroupEfficiencyFactor, max: 1},
		{key: "co2PerAdditionalStopKg", value: lc.CO2PerAdditionalStopKg, max: math.Inf(1)},
		{key: "anchorThresholdKg", value: lc.AnchorThresholdKg, max: math.Inf(1)},
	}
	for _, b := range bounds {
		if b.value != nil && (*b.value < 0 || *b.value > b.max) {
			return errors.Errorf("logistics.%s out of range: %v", b.key, *b.value)
		}
	}

	return nil
}

// DepotConfig is the shared collection center shown at the end of every route
type DepotConfig struct {
	ID   string  `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lng  float64 `json:"lng" yaml:"lng"`
}

// ComplianceConfig defines compliance tracking parameters
type ComplianceConfig struct {
	// Name of the seed data file (without .yaml) holding profile, checklist and reports
	SeedFile string `json:"seedFile" yaml:"seedFile"`

	// Emissions avoided per kilogram of recovered UCO (LCA factor)
	CO2PerKgUCO float64 `json:"co2PerKgUco" yaml:"co2PerKgUco"`

	// Days before the next grease trap maintenance at which it is reported as due soon
	DueSoonDays int `json:"dueSoonDays" yaml:"dueSoonDays"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf and overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	koanfInstance, err := loadFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: LOGISTICS_SELFID -> logistics.selfId (not logistics.selfid)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	return unmarshal[T](koanfInstance, currEnv)
}

// LoadFile loads a .yaml file through koanf without the environment overlay.
// It is used for static seed data that must not be shadowed by process env vars.
func LoadFile[T any](name string, configPath ...string) (*T, error) {
	koanfInstance, err := loadFile(name, configPath...)
	if err != nil {
		return nil, err
	}

	return unmarshal[T](koanfInstance, name)
}

// ResolvePath returns the first existing candidate for a relative file name
// across the config search paths. Absolute paths are returned unchanged.
func ResolvePath(name string, configPath ...string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}

	searchPaths, err := buildSearchPaths(configPath)
	if err != nil {
		return "", err
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("file %s not found in any search path", name)
}

func loadFile(name string, configPath ...string) (*koanf.Koanf, error) {
	koanfInstance := koanf.New(".")

	configFile, err := ResolvePath(name+".yaml", configPath...)
	if err != nil {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", name)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", name)
	}

	return koanfInstance, nil
}

func buildSearchPaths(configPath []string) ([]string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) == 0 {
		return searchPaths, nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "os.Getwd")
	}
	for _, path := range configPath {
		searchPaths = append(searchPaths, filepath.Join(pwd, path))
	}

	return searchPaths, nil
}

func unmarshal[T any](koanfInstance *koanf.Koanf, name string) (*T, error) {
	cfg := new(T)

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env file is normal outside local development
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", defaultSearchPaths...)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Logistics == nil {
		return nil, errors.New("logistics configuration is required")
	}
	if strings.TrimSpace(cfg.Logistics.SelfID) == "" {
		return nil, errors.New("logistics.selfId is required")
	}
	if cfg.Logistics.SessionTTL <= 0 {
		cfg.Logistics.SessionTTL = defaultSessionTTL
	}
	if err := cfg.Logistics.validate(); err != nil {
		return nil, err
	}

	if cfg.Dispatcher == nil {
		cfg.Dispatcher = &DispatcherConfig{}
	}
	if cfg.Dispatcher.Port <= 0 {
		cfg.Dispatcher.Port = defaultDispatcherPort
	}

	return cfg, nil
}

// SearchPaths returns the directories used to resolve config-relative files.
func SearchPaths() []string {
	return defaultSearchPaths
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
