package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/mateoroldos/personal-blog/shared/validation"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Site        Site          `yaml:"site"`
	Email       Email         `yaml:"email"`
	Resend      Resend        `yaml:"resend"`
	MailerLite  MailerLite    `yaml:"mailerlite"`
	GitHub      GitHub        `yaml:"github"`
	Redis       Redis         `yaml:"redis"`
	HTTPTimeout time.Duration `yaml:"http_timeout" validate:"gt=0"`
	CorsOrigins []string      `yaml:"cors_origins"`
	MaxFormSize int64         `yaml:"max_form_size" validate:"gt=0"` // bytes accepted on form endpoints
	LogLevel    string        `yaml:"log_level"`
	LogJSON     bool          `yaml:"log_json"`
	Secure      bool          `yaml:"secure"` // served over https, enables HSTS
}

type Site struct {
	URL         string `yaml:"url" validate:"required,url"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
}

// Email describes the notification sent for every contact form submission.
type Email struct {
	From     string   `yaml:"from" validate:"required"`
	To       []string `yaml:"to" validate:"required,min=1,dive,email"`
	Subject  string   `yaml:"subject"`
	Template string   `yaml:"template"` // liquid, receives email and message; empty uses the escaping default
}

type Resend struct {
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
}

type MailerLite struct {
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
	GroupID string `yaml:"group_id" validate:"required"`
}

type GitHub struct {
	BaseURL string        `yaml:"base_url" validate:"omitempty,url"`
	StarTTL time.Duration `yaml:"star_ttl" validate:"gt=0"`
}

// Redis is optional; an empty Addr keeps caches in process.
type Redis struct {
	Addr string `yaml:"addr"`
	DB   int    `yaml:"db"`
}

type Private struct {
	ResendAPIKey     Secret `yaml:"resend_api_key"`
	MailerLiteAPIKey Secret `yaml:"mailerlite_api_key"`
	GitHubToken      Secret `yaml:"github_token"`
	RedisPassword    Secret `yaml:"redis_password"`
}

func (c *Config) ResendAPIKey() Secret {
	return c.Private.ResendAPIKey
}

func (c *Config) MailerLiteAPIKey() Secret {
	return c.Private.MailerLiteAPIKey
}

func (c *Config) GitHubToken() Secret {
	return c.Private.GitHubToken
}

func (c *Config) RedisPassword() Secret {
	return c.Private.RedisPassword
}

func (p *Public) applyDefaults() {
	if p.Site.Language == "" {
		p.Site.Language = "en-us"
	}
	if p.Email.Subject == "" {
		p.Email.Subject = "Message from personal site"
	}
	if p.Resend.BaseURL == "" {
		p.Resend.BaseURL = "https://api.resend.com"
	}
	if p.MailerLite.BaseURL == "" {
		p.MailerLite.BaseURL = "https://api.mailerlite.com"
	}
	if p.GitHub.BaseURL == "" {
		p.GitHub.BaseURL = "https://api.github.com"
	}
	if p.GitHub.StarTTL == 0 {
		p.GitHub.StarTTL = time.Hour
	}
	if p.HTTPTimeout == 0 {
		p.HTTPTimeout = 10 * time.Second
	}
	if p.MaxFormSize == 0 {
		p.MaxFormSize = 64 << 10
	}
	if p.LogLevel == "" {
		p.LogLevel = "info"
	}
}

func loadPath(configPath string, output interface{}) error {
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.UnmarshalStrict(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

// Load reads public.yaml (required) and private.yaml (optional, the
// production secret mount) from configFolder. Environment variables
// override secrets afterwards, which is how local development supplies them.
func Load(configFolder string) (*Config, error) {
	var public Public
	if err := loadPath(path.Join(configFolder, "public.yaml"), &public); err != nil {
		return nil, err
	}

	var private Private
	privatePath := path.Join(configFolder, "private.yaml")
	if _, err := os.Stat(privatePath); err == nil {
		if err := loadPath(privatePath, &private); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("can't stat %s: %w", privatePath, err)
	}

	cfg := &Config{Public: public, Private: private}
	if err := ApplyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	cfg.Public.applyDefaults()

	if err := validation.Struct(cfg.Public); err != nil {
		return nil, fmt.Errorf("config %s: %w", configFolder, err)
	}
	return cfg, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err)
	}
	return cfg
}
