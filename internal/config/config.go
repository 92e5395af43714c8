package config

import (
	"net"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/ftauth/authcatalog/pkg/icon"
	"github.com/ftauth/authcatalog/pkg/model"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// ServerConfig holds configuration variables for the server.
type ServerConfig struct {
	Scheme string
	Host   string
	Port   string

	AllowedOrigins []string // Origins allowed to read the API; "*" for any
}

// URL returns the main gateway URL for the server.
func (s *ServerConfig) URL() string {
	host := s.Host
	includePort := func() bool {
		if s.Port == "" {
			return false
		}
		if s.Scheme == "http" {
			return s.Port != "80"
		}
		// s.Scheme == "https"
		return s.Port != "443"
	}()
	if includePort {
		host = net.JoinHostPort(host, s.Port)
	}
	uri := url.URL{
		Scheme: s.Scheme,
		Host:   host,
	}
	return uri.String()
}

// Addr returns the address the server listens on.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// AssetsConfig holds configuration for the icon asset store.
type AssetsConfig struct {
	InMemory bool
	Dir      string // Path to store data in (when not in memory)
	BaseURL  string // Prefix for asset URLs handed to clients
}

// CatalogConfig holds presentation settings for the provider catalog.
type CatalogConfig struct {
	Tint      model.Color // Tint for symbolic icons
	EmailIcon string      // Asset shown next to the email/password flow
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
}

// Config holds configuration information for the program.
type Config struct {
	Server  *ServerConfig
	Assets  *AssetsConfig
	Catalog *CatalogConfig
	Log     *LogConfig
	Remain  map[string]interface{} `mapstructure:",remain"`
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("server", map[string]interface{}{
		"scheme":         "http",
		"host":           "localhost",
		"port":           "8000",
		"allowedOrigins": []string{"*"},
	})

	v.SetDefault("assets", map[string]interface{}{
		"inMemory": true,
		"dir":      "",
		"baseURL":  "",
	})

	v.SetDefault("catalog", map[string]interface{}{
		"tint":      string(model.ColorSystemOrange),
		"emailIcon": icon.AssetFirebase,
	})

	v.SetDefault("log.level", "info")
}

// LoadConfig loads the config file from disk, falling back to defaults
// when none is present.
func LoadConfig() (*Config, error) {
	return load(viper.New(), true)
}

// LoadFile loads configuration from a specific file.
func LoadFile(filename string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filename)
	return load(v, false)
}

func load(v *viper.Viper, search bool) (*Config, error) {
	if search {
		v.AddConfigPath("/etc/authcatalog/")
		v.AddConfigPath("$HOME/.authcatalog")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	setConfigDefaults(v)

	v.SetEnvPrefix("authcatalog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var configPath string
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "unable to read config file")
		}
	} else {
		configPath = filepath.Dir(v.ConfigFileUsed())
	}

	var conf Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		colorHook,
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&conf, hook); err != nil {
		return nil, errors.Wrap(err, "error unmarshalling config")
	}

	if !conf.Assets.InMemory && conf.Assets.Dir == "" {
		if configPath == "" {
			dir, err := getConfigurationDirectory()
			if err != nil {
				return nil, err
			}
			configPath = dir
		}
		conf.Assets.Dir = filepath.Join(configPath, "assets")
	}

	return &conf, nil
}

// colorHook parses "#rrggbb" strings into model.Color values.
func colorHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(model.Color("")) {
		return data, nil
	}
	return model.ParseColor(data.(string))
}

func getConfigurationDirectory() (string, error) {
	// Prefer /etc
	configDir := "/etc/authcatalog"
	if _, err := os.Stat(configDir); err == nil {
		return configDir, nil
	} else if os.IsNotExist(err) {
		// For non-sudo users, this is not possible
		if err := os.Mkdir(configDir, 0770); err == nil {
			return configDir, nil
		}
	} else {
		return "", err
	}

	// Check home directory
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "could not retrieve home directory")
	}
	configDir = filepath.Join(home, ".authcatalog")
	if _, err := os.Stat(configDir); err == nil {
		return configDir, nil
	} else if os.IsNotExist(err) {
		if err := os.Mkdir(configDir, 0777); err == nil {
			return configDir, nil
		}
	} else {
		return "", err
	}

	return "", errors.New("could not locate viable storage dir")
}
