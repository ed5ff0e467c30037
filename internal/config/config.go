package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Issuer           string `yaml:"issuer"`
	ActivationSecret string `yaml:"activation_secret"`
	AccessSecret     string `yaml:"access_secret"`
	RefreshSecret    string `yaml:"refresh_secret"`
	ActivationTTL    string `yaml:"activation_ttl"`
	AccessTTL        string `yaml:"access_ttl"`
	RefreshTTL       string `yaml:"refresh_ttl"`
}

type SessionConfig struct {
	TTL string `yaml:"ttl"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type S3Config struct {
	Region      string `yaml:"region"`
	Endpoint    string `yaml:"endpoint"`
	Bucket      string `yaml:"bucket"`
	AccessKey   string `yaml:"access_key"`
	SecretKey   string `yaml:"secret_key"`
	Folder      string `yaml:"folder"`
	AvatarWidth int    `yaml:"avatar_width"`
}

type CookieConfig struct {
	Domain   string `yaml:"domain"`
	Secure   bool   `yaml:"secure"`
	SameSite string `yaml:"same_site"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Session  SessionConfig  `yaml:"session"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	S3       S3Config       `yaml:"s3"`
	Cookie   CookieConfig   `yaml:"cookie"`
}

// Config is the fully parsed runtime configuration. Token secrets and
// TTLs are carried here and injected at construction; nothing reads them
// from ambient process state after startup.
type Config struct {
	Port    string
	GinMode string

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTIssuer        string
	ActivationSecret string
	AccessSecret     string
	RefreshSecret    string
	ActivationTTL    time.Duration
	AccessTTL        time.Duration
	RefreshTTL       time.Duration

	SessionTTL time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	S3Region      string
	S3Endpoint    string
	S3Bucket      string
	S3AccessKey   string
	S3SecretKey   string
	AvatarFolder  string
	AvatarWidth   int

	CookieDomain   string
	CookieSecure   bool
	CookieSameSite string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the YAML config file and applies environment overrides for
// secrets. A .env file next to the binary is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	activationTTL, err := time.ParseDuration(configFile.JWT.ActivationTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid activation TTL: %w", err)
	}

	accessTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid access TTL: %w", err)
	}

	refreshTTL, err := time.ParseDuration(configFile.JWT.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh TTL: %w", err)
	}

	sessionTTL, err := time.ParseDuration(configFile.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	return &Config{
		Port:    fmt.Sprintf("%d", configFile.App.Port),
		GinMode: configFile.App.GinMode,

		DSN: env("DATABASE_DSN", configFile.Database.DSN),

		RedisAddr:     configFile.Redis.Addr,
		RedisPassword: env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:       configFile.Redis.DB,

		JWTIssuer:        configFile.JWT.Issuer,
		ActivationSecret: env("ACTIVATION_SECRET", configFile.JWT.ActivationSecret),
		AccessSecret:     env("ACCESS_TOKEN_SECRET", configFile.JWT.AccessSecret),
		RefreshSecret:    env("REFRESH_TOKEN_SECRET", configFile.JWT.RefreshSecret),
		ActivationTTL:    activationTTL,
		AccessTTL:        accessTTL,
		RefreshTTL:       refreshTTL,

		SessionTTL: sessionTTL,

		SMTPHost:     configFile.SMTP.Host,
		SMTPPort:     configFile.SMTP.Port,
		SMTPUsername: env("SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword: env("SMTP_PASSWORD", configFile.SMTP.Password),
		SMTPFrom:     configFile.SMTP.From,

		S3Region:     configFile.S3.Region,
		S3Endpoint:   configFile.S3.Endpoint,
		S3Bucket:     configFile.S3.Bucket,
		S3AccessKey:  env("S3_ACCESS_KEY", configFile.S3.AccessKey),
		S3SecretKey:  env("S3_SECRET_KEY", configFile.S3.SecretKey),
		AvatarFolder: configFile.S3.Folder,
		AvatarWidth:  configFile.S3.AvatarWidth,

		CookieDomain:   configFile.Cookie.Domain,
		CookieSecure:   configFile.Cookie.Secure,
		CookieSameSite: configFile.Cookie.SameSite,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
