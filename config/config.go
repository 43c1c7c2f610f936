package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

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
	defaultMaxRequestBodySize = "1MB"

	defaultPageLimit         = 10
	defaultMaxPageLimit      = 100
	defaultDriverListLimit   = 50
	defaultDispatchWorkers   = 2
	defaultDispatchQueueSize = 256
	defaultDispatchTimeout   = 5 * time.Second
	defaultPublishTimeout    = 10 * time.Second
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

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Migration struct {
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	} `json:"migration" yaml:"migration"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Pagination *PaginationConfig `json:"pagination" yaml:"pagination"`

	// Notification configures driver notification listing and async dispatch
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`

	// Statements slower than this are logged at warn level
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// PaginationConfig bounds list queries on the plain resources.
type PaginationConfig struct {
	DefaultLimit int `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit     int `json:"maxLimit" yaml:"maxLimit"`
}

// NotificationConfig defines driver notification behaviour
type NotificationConfig struct {
	// Maximum number of notifications returned by the driver listing
	DriverListLimit int `json:"driverListLimit" yaml:"driverListLimit"`

	// Number of goroutines draining the dispatch queue
	DispatchWorkers int `json:"dispatchWorkers" yaml:"dispatchWorkers"`

	// Capacity of the dispatch queue; enqueues beyond it are dropped
	DispatchQueueSize int `json:"dispatchQueueSize" yaml:"dispatchQueueSize"`

	// Per job deadline for storing the notification
	DispatchTimeout time.Duration `json:"dispatchTimeout" yaml:"dispatchTimeout"`

	// Per job deadline for publishing the event
	PublishTimeout time.Duration `json:"publishTimeout" yaml:"publishTimeout"`
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

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// PAGINATION_MAXLIMIT -> pagination.maxLimit, aligned with the keys of the yaml file.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills the optional sections left out of the yaml file.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Pagination == nil {
		cfg.Pagination = &PaginationConfig{}
	}
	if cfg.Pagination.DefaultLimit <= 0 {
		cfg.Pagination.DefaultLimit = defaultPageLimit
	}
	if cfg.Pagination.MaxLimit <= 0 {
		cfg.Pagination.MaxLimit = defaultMaxPageLimit
	}
	if cfg.Pagination.DefaultLimit > cfg.Pagination.MaxLimit {
		cfg.Pagination.DefaultLimit = cfg.Pagination.MaxLimit
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.DriverListLimit <= 0 {
		cfg.Notification.DriverListLimit = defaultDriverListLimit
	}
	if cfg.Notification.DispatchWorkers <= 0 {
		cfg.Notification.DispatchWorkers = defaultDispatchWorkers
	}
	if cfg.Notification.DispatchQueueSize <= 0 {
		cfg.Notification.DispatchQueueSize = defaultDispatchQueueSize
	}
	if cfg.Notification.DispatchTimeout <= 0 {
		cfg.Notification.DispatchTimeout = defaultDispatchTimeout
	}
	if cfg.Notification.PublishTimeout <= 0 {
		cfg.Notification.PublishTimeout = defaultPublishTimeout
	}
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
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

// buildReplicasFromEnv reads read replicas from POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
