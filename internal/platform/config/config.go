// Package config carga la configuración del servicio: .env, archivo YAML opcional y env vars.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // zonas IANA también en imágenes sin /usr/share/zoneinfo

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort       = "8080"
	DefaultAppName    = "medtrack"
	DefaultMQTTPrefix = "medtrack/dispenser"
	DefaultMQTTClient = "medtrack"
	DefaultTimezone   = "Local"
	defaultConfigFile = "medtrack.yaml"
	envConfigFileName = "CONFIG_FILE"
	envFileName       = ".env"
)

type Config struct {
	Port     string `yaml:"port"`
	Timezone string `yaml:"timezone"`

	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	MQTT    MQTTConfig    `yaml:"mqtt"`
}

// StorageConfig: si hay DSN se usa Postgres; si no, SQLitePath; si no, memoria.
type StorageConfig struct {
	PostgresDSN string `yaml:"postgres_dsn"`
	SQLitePath  string `yaml:"sqlite_path"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	AppName string `yaml:"app_name"`
}

// MQTTConfig del dispensador inteligente. Broker vacío => ingest deshabilitado.
type MQTTConfig struct {
	Broker      string `yaml:"broker"`
	TopicPrefix string `yaml:"topic_prefix"`
	ClientID    string `yaml:"client_id"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
}

func (m MQTTConfig) Enabled() bool {
	return strings.TrimSpace(m.Broker) != ""
}

// Load aplica, en orden: defaults, .env (si existe), YAML (CONFIG_FILE o ./medtrack.yaml
// si existe) y por último variables de entorno.
func Load() (*Config, error) {
	if _, err := os.Stat(envFileName); err == nil {
		// .env no pisa variables ya exportadas
		_ = godotenv.Load(envFileName)
	}

	cfg := defaults()

	path := os.Getenv(envConfigFileName)
	if path == "" {
		path = defaultConfigFile
	}
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.fillEmpty()

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Port:     DefaultPort,
		Timezone: DefaultTimezone,
		Log: LogConfig{
			Level:   "info",
			Format:  "text",
			AppName: DefaultAppName,
		},
		MQTT: MQTTConfig{
			TopicPrefix: DefaultMQTTPrefix,
			ClientID:    DefaultMQTTClient,
		},
	}
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.Port, "PORT")
	setString(&c.Timezone, "APP_TIMEZONE")

	setString(&c.Storage.PostgresDSN, "DB_DSN")
	setString(&c.Storage.SQLitePath, "SQLITE_PATH")

	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")
	setString(&c.Log.AppName, "APP_NAME")

	setString(&c.MQTT.Broker, "MQTT_BROKER")
	setString(&c.MQTT.TopicPrefix, "MQTT_TOPIC_PREFIX")
	setString(&c.MQTT.ClientID, "MQTT_CLIENT_ID")
	setString(&c.MQTT.Username, "MQTT_USERNAME")
	setString(&c.MQTT.Password, "MQTT_PASSWORD")
}

// fillEmpty repone defaults que un YAML pudo dejar vacíos.
func (c *Config) fillEmpty() {
	d := defaults()
	if strings.TrimSpace(c.Port) == "" {
		c.Port = d.Port
	}
	if strings.TrimSpace(c.Timezone) == "" {
		c.Timezone = d.Timezone
	}
	if strings.TrimSpace(c.Log.AppName) == "" {
		c.Log.AppName = d.Log.AppName
	}
	if strings.TrimSpace(c.MQTT.TopicPrefix) == "" {
		c.MQTT.TopicPrefix = d.MQTT.TopicPrefix
	}
	if strings.TrimSpace(c.MQTT.ClientID) == "" {
		c.MQTT.ClientID = d.MQTT.ClientID
	}
}

// Addr devuelve ":<port>" para http.Server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

// Location resuelve la zona del consumidor ("Local" => time.Local).
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return loc, nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}
