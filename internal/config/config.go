package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`

	JwtTTL time.Duration `yaml:"jwt_ttl"`

	// Listing pagination: default page size when the client omits limit,
	// hard cap on what it may request.
	DefaultPageLimit int `yaml:"default_page_limit"`
	MaxPageLimit     int `yaml:"max_page_limit"`

	// Message payload bounds.
	MaxMessageLen int `yaml:"max_message_len"`
	MaxTitleLen   int `yaml:"max_title_len"`

	// Hosts accepted for the optional external video reference.
	AllowedVideoHosts []string `yaml:"allowed_video_hosts"`

	// Token bucket for message/thread creation, per user. Admins bypass.
	WriteRatePerSec float64 `yaml:"write_rate_per_sec"`
	WriteBurst      float64 `yaml:"write_burst"`

	// Origins allowed to call the API from a browser. Empty disables CORS,
	// for setups where a gateway serves API and frontend from one origin.
	CorsAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (s *Config) applyDefaults() {
	p := &s.Public
	if p.DefaultPageLimit <= 0 {
		p.DefaultPageLimit = 20
	}
	if p.MaxPageLimit <= 0 {
		p.MaxPageLimit = 100
	}
	if p.MaxMessageLen <= 0 {
		p.MaxMessageLen = 10_000
	}
	if p.MaxTitleLen <= 0 {
		p.MaxTitleLen = 120
	}
	if len(p.AllowedVideoHosts) == 0 {
		p.AllowedVideoHosts = []string{"youtube.com", "www.youtube.com", "youtu.be", "vimeo.com"}
	}
	if p.WriteRatePerSec <= 0 {
		p.WriteRatePerSec = 1
	}
	if p.WriteBurst <= 0 {
		p.WriteBurst = 5
	}
}
