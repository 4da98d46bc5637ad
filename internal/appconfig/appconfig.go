package appconfig

import (
	"bytes"
	"errors"
	"html/template"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// Backends supported by the store section.
const (
	BackendFile  = "file"
	BackendMongo = "mongo"
)

// Config holds all configuration details
type Config struct {
	Host     string      `yaml:"host"`
	BasePath string      `yaml:"basePath"`
	Store    StoreConfig `yaml:"store"`
}

// StoreConfig selects the persistence backend and its connection details
type StoreConfig struct {
	Backend string      `yaml:"backend"`
	File    FileConfig  `yaml:"file"`
	Mongo   MongoConfig `yaml:"mongo"`
}

// FileConfig points at the two JSON documents of the flat-file backend
type FileConfig struct {
	UsersPath string `yaml:"usersPath"`
	DataPath  string `yaml:"dataPath"`
}

// MongoConfig defines the document-store connection details
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// LoadConfig loads and parses the configuration from a given file path
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		err := errors.New("config file path is required")
		log.Fatal().Err(err).Msg("config file not provided")
		return nil, err
	}

	// Parse the template file
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing config file template")
		return nil, err
	}

	// Create a map of environment variables
	envVars := loadEnvVars()

	// Execute the template with environment variables
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, envVars)
	if err != nil {
		log.Fatal().Err(err).Msg("error executing config file template")
		return nil, err
	}

	// Load and unmarshal the YAML
	var config Config
	if err := yaml.Unmarshal(buf.Bytes(), &config); err != nil {
		log.Fatal().Err(err).Msg("failed to unmarshal config YAML")
		return nil, err
	}

	config.applyDefaults()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.Store.Backend == "" {
		c.Store.Backend = BackendFile
	}
	if c.Store.File.UsersPath == "" {
		c.Store.File.UsersPath = "users.json"
	}
	if c.Store.File.DataPath == "" {
		c.Store.File.DataPath = "db.json"
	}
}

// loadEnvVars loads environment variables into a map
func loadEnvVars() map[string]string {
	envVars := make(map[string]string)
	for _, env := range os.Environ() {
		kv := strings.SplitN(env, "=", 2)
		if len(kv) == 2 {
			envVars[kv[0]] = kv[1]
		}
	}
	return envVars
}
