package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"nutriledger/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultTimezone           = "UTC"
	defaultPointsPerLog       = 10
	defaultLeaderboardLimit   = 50
	defaultEstimatorModel     = "gemini-1.5-flash"
	defaultEstimatorTimeout   = 30 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Store selects and configures the persistence backend
	Store *StoreConfig `json:"store" yaml:"store"`

	// Estimator configures the nutrition inference collaborator
	Estimator *EstimatorConfig `json:"estimator" yaml:"estimator"`

	// Ledger holds the bucketing and gamification policy
	Ledger *LedgerConfig `json:"ledger" yaml:"ledger"`

	// Photos configures the meal photo archive
	Photos *PhotosConfig `json:"photos" yaml:"photos"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// PasswordMode is "plaintext" (legacy sheet rows) or "bcrypt"
	PasswordMode   string        `json:"passwordMode" yaml:"passwordMode"`
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	// AdminUsernames receive the admin role at login
	AdminUsernames []string      `json:"adminUsernames" yaml:"adminUsernames"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines the persistence backend
type StoreConfig struct {
	// Driver is one of "sheets", "memory", "sqlite" or "postgres"
	Driver string `json:"driver" yaml:"driver"`

	Sheets *SheetsConfig `json:"sheets" yaml:"sheets"`

	SQLite *SQLiteConfig `json:"sqlite" yaml:"sqlite"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`
}

// SheetsConfig defines the Google Sheets row store
type SheetsConfig struct {
	SpreadsheetID   string `json:"spreadsheetId" yaml:"spreadsheetId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	CredentialsJSON string `json:"credentialsJson" yaml:"credentialsJson"`
}

// Configured reports whether enough is set to reach the spreadsheet
func (s *SheetsConfig) Configured() bool {
	if s == nil || strings.TrimSpace(s.SpreadsheetID) == "" {
		return false
	}

	return strings.TrimSpace(s.CredentialsPath) != "" || strings.TrimSpace(s.CredentialsJSON) != ""
}

// SQLiteConfig defines the embedded SQLite database
type SQLiteConfig struct {
	// Path is a file path or a "file::memory:" DSN
	Path string `json:"path" yaml:"path"`
}

// EstimatorConfig defines the OpenAI-compatible estimator endpoint
type EstimatorConfig struct {
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Model   string        `json:"model" yaml:"model"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// LedgerConfig defines date bucketing and point awards
type LedgerConfig struct {
	// Timezone names the IANA zone used to compute date buckets
	Timezone         string `json:"timezone" yaml:"timezone"`
	PointsPerLog     int    `json:"pointsPerLog" yaml:"pointsPerLog"`
	LeaderboardLimit int    `json:"leaderboardLimit" yaml:"leaderboardLimit"`
}

// PhotosConfig defines the blob bucket receiving meal photos
type PhotosConfig struct {
	// BucketURL is a gocloud.dev URL such as "mem://", "file:///var/photos" or "gs://bucket"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

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
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Store.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Store.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.PasswordMode == "" {
		cfg.Auth.PasswordMode = constants.PasswordModePlaintext
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = 12 * time.Hour
	}
	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = constants.StoreDriverSheets
	}
	if cfg.Estimator == nil {
		cfg.Estimator = &EstimatorConfig{}
	}
	if cfg.Estimator.Model == "" {
		cfg.Estimator.Model = defaultEstimatorModel
	}
	if cfg.Estimator.Timeout <= 0 {
		cfg.Estimator.Timeout = defaultEstimatorTimeout
	}
	if cfg.Ledger == nil {
		cfg.Ledger = &LedgerConfig{}
	}
	if cfg.Ledger.Timezone == "" {
		cfg.Ledger.Timezone = defaultTimezone
	}
	if cfg.Ledger.PointsPerLog <= 0 {
		cfg.Ledger.PointsPerLog = defaultPointsPerLog
	}
	if cfg.Ledger.LeaderboardLimit <= 0 {
		cfg.Ledger.LeaderboardLimit = defaultLeaderboardLimit
	}
	if cfg.Photos == nil {
		cfg.Photos = &PhotosConfig{}
	}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
