package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "SHOP_CONFIG_FILE"

const (
	CartStoreMemory = "memory"
	CartStoreRedis  = "redis"
)

type redis struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	// TTL bounds cart lifetime in both cart stores.
	TTL      time.Duration `mapstructure:"ttl"`
}

type topics struct {
	OrdersPlaced string `mapstructure:"orders_placed"`
}

type brokerTLS struct {
	CAFile   string `mapstructure:"ca_file"`
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
}

func (t brokerTLS) Enabled() bool {
	return t.CAFile != "" || t.CertFile != "" || t.KeyFile != ""
}

type broker struct {
	SeedBrokers        []string  `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string  `mapstructure:"schema_registry_urls"`
	Topics             topics    `mapstructure:"topics"`
	TLS                brokerTLS `mapstructure:"tls"`
}

// Enabled reports whether order events are produced.
func (b broker) Enabled() bool {
	return len(b.SeedBrokers) != 0
}

type Config struct {
	LogLevel           slog.Level    `mapstructure:"log_level"`
	HTTPServerAddr     string        `mapstructure:"http_server_addr"`
	HTTPRequestTimeout time.Duration `mapstructure:"http_request_timeout"`
	SQLDB              string        `mapstructure:"sql_db"`
	CartStore          string        `mapstructure:"cart_store"`
	Redis              redis         `mapstructure:"redis"`
	Broker             broker        `mapstructure:"broker"`
}

// Load reads the file named by SHOP_CONFIG_FILE or --config
// and exits the process on failure.
func Load() Config {
	cfg, err := LoadFile(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

func LoadFile(path string) (Config, error) {
	const op = "config.LoadFile"

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", op, err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("http_server_addr", ":8000")
	v.SetDefault("http_request_timeout", "5s")
	v.SetDefault("cart_store", CartStoreMemory)
	v.SetDefault("redis.ttl", "72h")
	v.SetDefault("broker.topics.orders_placed", "orders-placed")
}

func (c Config) Validate() error {
	var errs []error

	if c.SQLDB == "" {
		errs = append(errs, errors.New("sql_db: required"))
	}

	switch c.CartStore {
	case CartStoreMemory:
	case CartStoreRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("redis.addr: required for redis cart store"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"cart_store: want %q or %q, got %q",
			CartStoreMemory, CartStoreRedis, c.CartStore,
		))
	}

	if c.Redis.TTL <= 0 {
		errs = append(errs, errors.New("redis.ttl: must be positive"))
	}

	if c.Broker.Enabled() {
		if len(c.Broker.SchemaRegistryURLs) == 0 {
			errs = append(errs, errors.New("broker.schema_registry_urls: required with seed_brokers"))
		}
		if c.Broker.Topics.OrdersPlaced == "" {
			errs = append(errs, errors.New("broker.topics.orders_placed: required"))
		}
	}

	if t := c.Broker.TLS; t.Enabled() &&
		(t.CAFile == "" || t.CertFile == "" || t.KeyFile == "") {
		errs = append(errs, errors.New("broker.tls: ca_file, cert_file and key_file go together"))
	}

	return errors.Join(errs...)
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	HTTPRequestTimeout=%s
	SQLDB=%q

	CartStore=%q
	Redis:
		Addr=%q
		DB=%d
		TTL=%s

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	TLS=%t
	Topics:
		OrdersPlaced=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.HTTPRequestTimeout,
		maskDSN(c.SQLDB),
		c.CartStore,
		c.Redis.Addr,
		c.Redis.DB,
		c.Redis.TTL,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.TLS.Enabled(),
		c.Broker.Topics.OrdersPlaced,
	)
}

// maskDSN hides the password of a postgres url.
func maskDSN(dsn string) string {
	scheme, rest, ok := strings.Cut(dsn, "://")
	if !ok {
		return dsn
	}
	userinfo, host, ok := strings.Cut(rest, "@")
	if !ok {
		return dsn
	}
	user, _, hasPass := strings.Cut(userinfo, ":")
	if !hasPass {
		return dsn
	}
	return scheme + "://" + user + ":***@" + host
}
