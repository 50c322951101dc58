package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/rofexbuy/internal/clients"
	"github.com/vadiminshakov/rofexbuy/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	envConfigPath = "REMARKETS_CONFIG"
	envBaseURL    = "REMARKETS_BASE_URL"
	envMarketID   = "REMARKETS_MARKET_ID"
	envLogLevel   = "LOG_LEVEL"

	defaultLogLevel = "warn"
	argsCount       = 4
)

// ErrUsage is returned when the positional arguments are wrong.
var ErrUsage = errors.New("expected arguments: symbol user password account")

// Usage is printed next to ErrUsage.
const Usage = "uso: rofexbuy SIMBOLO USUARIO CONTRASEÑA CUENTA"

type Config struct {
	Symbol      domain.Symbol
	Credentials domain.Credentials
	BaseURL     string
	MarketID    string
	LogLevel    string
}

// ConfigTmp is the optional YAML file layout.
type ConfigTmp struct {
	BaseURL  string `yaml:"base_url"`
	MarketID string `yaml:"market_id"`
	LogLevel string `yaml:"log_level"`
}

// Get builds the run configuration from the four positional arguments
// (symbol, user, password, account), an optional YAML file and the environment.
// A .env file in the working directory is loaded first when present.
func Get(args []string, getenv func(string) string) (Config, error) {
	if len(args) != argsCount {
		return Config{}, errors.Wrapf(ErrUsage, "got %d arguments", len(args))
	}

	_ = godotenv.Load()

	conf := Config{
		Symbol: domain.Symbol(args[0]),
		Credentials: domain.Credentials{
			User:     args[1],
			Password: args[2],
			Account:  args[3],
		},
		BaseURL:  clients.RemarketsURL,
		MarketID: clients.DefaultMarketID,
		LogLevel: defaultLogLevel,
	}

	if path := getenv(envConfigPath); path != "" {
		tmp, err := getYaml(path)
		if err != nil {
			return Config{}, err
		}
		conf.apply(tmp)
	}

	conf.apply(ConfigTmp{
		BaseURL:  getenv(envBaseURL),
		MarketID: getenv(envMarketID),
		LogLevel: getenv(envLogLevel),
	})

	if err := conf.validate(); err != nil {
		return Config{}, err
	}

	return conf, nil
}

func (c *Config) apply(tmp ConfigTmp) {
	if tmp.BaseURL != "" {
		c.BaseURL = tmp.BaseURL
	}
	if tmp.MarketID != "" {
		c.MarketID = tmp.MarketID
	}
	if tmp.LogLevel != "" {
		c.LogLevel = strings.ToLower(tmp.LogLevel)
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Symbol.String()) == "" {
		return errors.Wrap(ErrUsage, "symbol cannot be empty")
	}
	if c.Credentials.User == "" || c.Credentials.Account == "" {
		return errors.Wrap(ErrUsage, "user and account cannot be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("invalid log level %q, must be one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

func getYaml(path string) (ConfigTmp, error) {
	var tmp ConfigTmp

	f, err := os.ReadFile(path)
	if err != nil {
		return ConfigTmp{}, errors.Wrap(err, "failed to read config file")
	}
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return ConfigTmp{}, errors.Wrapf(err, "incorrect yaml config %s", path)
	}

	return tmp, nil
}
