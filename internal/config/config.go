package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type IndexPolicy string

const (
	// IndexPolicyStartup builds the recipe text index once when the server starts.
	IndexPolicyStartup IndexPolicy = "startup"
	// IndexPolicyRequest (re)builds the recipe text index before every search.
	IndexPolicyRequest IndexPolicy = "request"
)

// Config holds the configuration for the cookbook server and its dependencies.
type Config struct {
	// Listen is the address the cookbook server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// SessionKey is the key used to sign session cookies.
	SessionKey string `yaml:"session_key" mapstructure:"session_key"`
	// SessionMaxAge is the maximum age of a session in seconds.
	SessionMaxAge int `yaml:"session_max_age" mapstructure:"session_max_age"`
	// Mongo holds the document store configuration.
	Mongo *MongoConfig `yaml:"mongo" mapstructure:"mongo"`
	// Search holds the full-text search configuration.
	Search *SearchConfig `yaml:"search" mapstructure:"search"`
	// Gravatar holds the configuration for Gravatar profile pictures.
	Gravatar *GravatarConfig `yaml:"gravatar" mapstructure:"gravatar"`
	// Webhook holds the deployment webhook configuration.
	Webhook *WebhookConfig `yaml:"webhook" mapstructure:"webhook"`
}

// MongoConfig holds the MongoDB connection settings.
type MongoConfig struct {
	// URI is the MongoDB connection string.
	URI string `yaml:"uri" mapstructure:"uri"`
	// Database is the name of the database holding the collections.
	Database string `yaml:"database" mapstructure:"database"`
	// ConnectTimeout is the connection and ping timeout in seconds.
	ConnectTimeout int `yaml:"connect_timeout" mapstructure:"connect_timeout"`
}

// SearchConfig holds the full-text search configuration.
type SearchConfig struct {
	// IndexPolicy decides when the recipe text index is built. Options: "startup", "request"
	IndexPolicy IndexPolicy `yaml:"index_policy" mapstructure:"index_policy"`
}

// GravatarConfig holds the configuration for Gravatar profile pictures.
type GravatarConfig struct {
	// Enabled indicates whether Gravatar support is enabled.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// DefaultImage is the default image to use when no Gravatar is found.
	// Valid values: "404", "mp", "identicon", "monsterid", "wavatar", "retro", "robohash", "blank"
	DefaultImage string `yaml:"default_image" mapstructure:"default_image"`
	// Rating is the maximum rating for Gravatar images.
	// Valid values: "g", "pg", "r", "x"
	Rating string `yaml:"rating" mapstructure:"rating"`
	// Size is the size of the Gravatar image in pixels (1-2048).
	Size int `yaml:"size" mapstructure:"size"`
}

// WebhookConfig holds the configuration of the deployment refresh webhook.
type WebhookConfig struct {
	// Enabled indicates whether POST /webhook is served.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// WorkDir is the directory the commands run in. Empty means the current directory.
	WorkDir string `yaml:"work_dir" mapstructure:"work_dir"`
	// Commands are run in order, each one as an argv list.
	// As a string (e.g. from COOKBOOK_WEBHOOK_COMMANDS) commands are separated
	// by ";" and arguments by whitespace.
	Commands [][]string `yaml:"commands" mapstructure:"commands"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it will use default search paths for config files.
// If no config file is found, the defaults are used.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Configure Viper
	v.SetConfigType("yaml")
	v.SetEnvPrefix("COOKBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var configFileFound bool
	if path != "" {
		// Use specific config file
		v.SetConfigFile(path)
	} else {
		// Search for config in common locations
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.cookbook")
		v.AddConfigPath("/etc/cookbook")
	}

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileFound = true
	}

	if configFileFound {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
		log.Debug("Environment variables with COOKBOOK_ prefix will override config file values")
	}

	var c Config
	if err := v.Unmarshal(&c, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.DecodeHookFuncType(commandListHook),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	sanitizeConfig(&c)

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// commandListHook decodes a "git fetch; git reset --hard" style string into argv lists.
func commandListHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([][]string{}) {
		return data, nil
	}
	return parseCommandList(reflect.ValueOf(data).String()), nil
}

func parseCommandList(s string) [][]string {
	commands := [][]string{}
	for _, part := range strings.Split(s, ";") {
		if argv := strings.Fields(part); len(argv) > 0 {
			commands = append(commands, argv)
		}
	}
	return commands
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:5000")
	v.SetDefault("session_key", "")
	v.SetDefault("session_max_age", 172800) // 48 hour

	// Mongo defaults
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "cookbook")
	v.SetDefault("mongo.connect_timeout", 10)

	// Search defaults
	v.SetDefault("search.index_policy", IndexPolicyStartup)

	// Gravatar defaults
	v.SetDefault("gravatar.enabled", false)
	v.SetDefault("gravatar.default_image", "robohash")
	v.SetDefault("gravatar.rating", "g")
	v.SetDefault("gravatar.size", 80)

	// Webhook defaults
	v.SetDefault("webhook.enabled", false)
	v.SetDefault("webhook.work_dir", "")
	v.SetDefault("webhook.commands", [][]string{{"git", "pull"}})
}

// sanitizeConfig normalizes user supplied values.
func sanitizeConfig(c *Config) {
	c.Listen = strings.TrimSpace(c.Listen)
	if c.Mongo != nil {
		c.Mongo.URI = strings.TrimSpace(c.Mongo.URI)
		c.Mongo.Database = strings.TrimSpace(c.Mongo.Database)
	}
	if c.Search != nil {
		c.Search.IndexPolicy = IndexPolicy(strings.ToLower(strings.TrimSpace(string(c.Search.IndexPolicy))))
	}
	if c.Gravatar != nil {
		c.Gravatar.DefaultImage = strings.ToLower(strings.TrimSpace(c.Gravatar.DefaultImage))
		c.Gravatar.Rating = strings.ToLower(strings.TrimSpace(c.Gravatar.Rating))
	}
	if c.SessionKey == "" {
		log.Warn("no session key configured, generating a random one; sessions will not survive a restart")
		c.SessionKey = uuid.NewString()
	}
}

// validateConfig validates the configuration.
func validateConfig(c *Config) error {
	if c == nil {
		return fmt.Errorf("missing cookbook config")
	}

	if c.Mongo == nil {
		return fmt.Errorf("missing mongo config")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo URI is required")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo database name is required")
	}
	if c.Mongo.ConnectTimeout <= 0 {
		return fmt.Errorf("mongo connect timeout must be positive, got %d", c.Mongo.ConnectTimeout)
	}

	if c.Search == nil {
		return fmt.Errorf("missing search config")
	}
	switch c.Search.IndexPolicy {
	case IndexPolicyStartup, IndexPolicyRequest:
	default:
		return fmt.Errorf("invalid search index policy %q, must be %q or %q", c.Search.IndexPolicy, IndexPolicyStartup, IndexPolicyRequest)
	}

	if c.Gravatar != nil && c.Gravatar.Enabled {
		if c.Gravatar.DefaultImage != "" && !validDefaultImages[c.Gravatar.DefaultImage] {
			return fmt.Errorf("invalid gravatar default image %q", c.Gravatar.DefaultImage)
		}
		if c.Gravatar.Rating != "" && !validRatings[c.Gravatar.Rating] {
			return fmt.Errorf("invalid gravatar rating %q", c.Gravatar.Rating)
		}
		if c.Gravatar.Size < 1 || c.Gravatar.Size > 2048 {
			return fmt.Errorf("gravatar size must be between 1 and 2048, got %d", c.Gravatar.Size)
		}
	}

	if c.Webhook != nil && c.Webhook.Enabled {
		if len(c.Webhook.Commands) == 0 {
			return fmt.Errorf("webhook requires at least one command when enabled")
		}
		for i, argv := range c.Webhook.Commands {
			if len(argv) == 0 || argv[0] == "" {
				return fmt.Errorf("webhook command %d is empty", i)
			}
		}
	}

	return nil
}

var validDefaultImages = map[string]bool{
	"404":       true,
	"mp":        true,
	"identicon": true,
	"monsterid": true,
	"wavatar":   true,
	"retro":     true,
	"robohash":  true,
	"blank":     true,
}

var validRatings = map[string]bool{
	"g":  true,
	"pg": true,
	"r":  true,
	"x":  true,
}

// ConnectTimeoutSeconds returns the configured mongo timeout, falling back to 10s.
func (c *Config) ConnectTimeoutSeconds() int {
	if c.Mongo == nil || c.Mongo.ConnectTimeout <= 0 {
		return 10
	}
	return c.Mongo.ConnectTimeout
}

// SearchIndexPolicy returns the configured index policy, defaulting to startup.
func (c *Config) SearchIndexPolicy() IndexPolicy {
	if c.Search == nil || c.Search.IndexPolicy == "" {
		return IndexPolicyStartup
	}
	return c.Search.IndexPolicy
}
