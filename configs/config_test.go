package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

const baseYAML = `
app:
  name: gardenshop
  http_addr: ":8080"
session:
  cookie_name: gs_session
  secret: base-secret
  ttl: 720h
slot:
  driver: memory
notify:
  driver: none
`

func TestLoadBaseOnly(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "base.yaml", baseYAML)

	cfg, err := Load(dir, "missing-env")
	require.NoError(t, err)
	assert.Equal(t, "gardenshop", cfg.App.Name)
	assert.Equal(t, ":8080", cfg.App.HTTPAddr)
	assert.Equal(t, "memory", cfg.Slot.Driver)
	assert.Equal(t, 720*time.Hour, cfg.Session.TTL)
}

func TestLoadEnvFileOverridesBase(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "base.yaml", baseYAML)
	writeYAML(t, dir, "dev.yaml", "app:\n  http_addr: \":9090\"\n")

	cfg, err := Load(dir, "dev")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.App.HTTPAddr)
	assert.Equal(t, "gardenshop", cfg.App.Name, "untouched keys keep base values")
}

func TestLoadEnvVarsOverrideFiles(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "base.yaml", baseYAML)
	t.Setenv("GARDENSHOP_SESSION__SECRET", "from-env")
	t.Setenv("GARDENSHOP_APP__HTTP_ADDR", ":7070")

	cfg, err := Load(dir, "dev")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Session.Secret)
	assert.Equal(t, ":7070", cfg.App.HTTPAddr)
}

func TestLoadMissingBase(t *testing.T) {
	_, err := Load(t.TempDir(), "dev")
	assert.Error(t, err)
}

func validConfig() Config {
	var c Config
	c.App.HTTPAddr = ":8080"
	c.Session.Secret = "s"
	c.Slot.Driver = "memory"
	return c
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	c := validConfig()
	c.App.HTTPAddr = ""
	assert.ErrorContains(t, c.Validate(), "app.http_addr")

	c = validConfig()
	c.Session.Secret = ""
	assert.ErrorContains(t, c.Validate(), "session.secret")

	c = validConfig()
	c.Slot.Driver = "redis"
	assert.ErrorContains(t, c.Validate(), "redis.addr")
	c.Redis.Addr = "localhost:6379"
	assert.NoError(t, c.Validate())

	c = validConfig()
	c.Slot.Driver = "mysql"
	assert.ErrorContains(t, c.Validate(), "mysql.dsn")

	c = validConfig()
	c.Slot.Driver = "filesystem"
	assert.ErrorContains(t, c.Validate(), "slot.driver")

	c = validConfig()
	c.Notify.Driver = "rabbit"
	assert.ErrorContains(t, c.Validate(), "rabbitmq.url")

	c = validConfig()
	c.Notify.Driver = "kafka"
	assert.ErrorContains(t, c.Validate(), "kafka.brokers")
	c.Kafka.Brokers = []string{"localhost:9092"}
	c.Kafka.Topic = "cart.changed"
	assert.NoError(t, c.Validate())

	c = validConfig()
	c.Notify.Driver = "smoke-signals"
	assert.ErrorContains(t, c.Validate(), "notify.driver")
}
