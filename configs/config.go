package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogLevel string `koanf:"log_level"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	Session struct {
		CookieName string        `koanf:"cookie_name"`
		Secret     string        `koanf:"secret"`
		TTL        time.Duration `koanf:"ttl"`
	} `koanf:"session"`

	Slot struct {
		Driver string        `koanf:"driver"` // redis | mysql | memory
		TTL    time.Duration `koanf:"ttl"`    // redis only; 0 = no expiry
	} `koanf:"slot"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
	} `koanf:"redis"`

	MySQL struct {
		DSN             string        `koanf:"dsn"`
		MaxOpenConns    int           `koanf:"max_open_conns"`
		MaxIdleConns    int           `koanf:"max_idle_conns"`
		ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	} `koanf:"mysql"`

	Notify struct {
		Driver string `koanf:"driver"` // none | rabbit | kafka
	} `koanf:"notify"`

	Rabbit struct {
		URL string `koanf:"url"`
	} `koanf:"rabbitmq"`

	Kafka struct {
		Brokers []string `koanf:"brokers"`
		Topic   string   `koanf:"topic"`
	} `koanf:"kafka"`

	Checkout struct {
		LTCAddress     string        `koanf:"ltc_address"`
		PayPalEmail    string        `koanf:"paypal_email"`
		OrderFormURL   string        `koanf:"order_form_url"`
		IdempotencyTTL time.Duration `koanf:"idempotency_ttl"`
	} `koanf:"checkout"`

	CORS struct {
		Origins []string `koanf:"origins"`
	} `koanf:"cors"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env override (dev/staging/prod). Optional: allow missing for local runs.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	// 3) environment variables override (prefix GARDENSHOP_, nested with __)
	// e.g. GARDENSHOP_REDIS__ADDR, GARDENSHOP_SESSION__SECRET
	if err := k.Load(env.Provider("GARDENSHOP_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "GARDENSHOP_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("session.secret required")
	}
	switch c.Slot.Driver {
	case "memory":
	case "redis":
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr required for slot.driver=redis")
		}
	case "mysql":
		if c.MySQL.DSN == "" {
			return fmt.Errorf("mysql.dsn required for slot.driver=mysql")
		}
	default:
		return fmt.Errorf("slot.driver must be redis, mysql, or memory")
	}
	switch c.Notify.Driver {
	case "", "none":
	case "rabbit":
		if c.Rabbit.URL == "" {
			return fmt.Errorf("rabbitmq.url required for notify.driver=rabbit")
		}
	case "kafka":
		if len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "" {
			return fmt.Errorf("kafka.brokers and kafka.topic required for notify.driver=kafka")
		}
	default:
		return fmt.Errorf("notify.driver must be none, rabbit, or kafka")
	}
	return nil
}
