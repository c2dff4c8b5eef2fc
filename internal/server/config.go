package server

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address         string               `yaml:"address"`
	MaxUploadSize   string               `yaml:"maxUploadSize"`
	AllowedOrigins  []string             `yaml:"allowedOrigins"` // empty allows any origin
	Logging         config.LoggingConfig `yaml:"logging"`
	uploadSizeBytes int64
}

var sizeUnits = map[string]int64{
	"":   1,
	"B":  1,
	"K":  1 << 10,
	"KB": 1 << 10,
	"M":  1 << 20,
	"MB": 1 << 20,
	"G":  1 << 30,
	"GB": 1 << 30,
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Address:         constants.DefaultServerAddress,
		MaxUploadSize:   strconv.FormatInt(constants.DefaultMaxUploadSizeBytes, 10),
		uploadSizeBytes: constants.DefaultMaxUploadSizeBytes,
	}
}

// LoadConfig reads the server configuration YAML at path. A missing file
// yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.SetAddress(cfg.Address); err != nil {
		return nil, err
	}
	if err := cfg.SetUploadSize(cfg.MaxUploadSize); err != nil {
		return nil, err
	}
	origins, err := normalizeOrigins(cfg.AllowedOrigins)
	if err != nil {
		return nil, err
	}
	cfg.AllowedOrigins = origins
	return cfg, nil
}

// UploadSizeBytes returns the request body limit in bytes.
func (c *Config) UploadSizeBytes() int64 {
	return c.uploadSizeBytes
}

// SetAddress validates a host:port listen address. Empty means the default.
func (c *Config) SetAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		address = constants.DefaultServerAddress
	}
	if _, _, err := net.SplitHostPort(address); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", address, err)
	}
	c.Address = address
	return nil
}

// SetUploadSize parses a size such as "256K" and makes it the request body
// limit. Empty means the default.
func (c *Config) SetUploadSize(value string) error {
	size, err := ParseSize(value)
	if err != nil {
		return err
	}
	c.SetUploadSizeBytes(size)
	return nil
}

// SetUploadSizeBytes sets the request body limit. Non-positive sizes are ignored.
func (c *Config) SetUploadSizeBytes(size int64) {
	if size <= 0 {
		return
	}
	c.uploadSizeBytes = size
	c.MaxUploadSize = strconv.FormatInt(size, 10)
}

// ParseSize converts a byte count with an optional B, K, M or G suffix
// (binary multiples, case-insensitive) into bytes. Empty means the default.
func ParseSize(value string) (int64, error) {
	upper := strings.ToUpper(strings.TrimSpace(value))
	if upper == "" {
		return constants.DefaultMaxUploadSizeBytes, nil
	}

	digits := strings.TrimRightFunc(upper, func(r rune) bool { return !unicode.IsDigit(r) })
	multiplier, ok := sizeUnits[strings.TrimSpace(upper[len(digits):])]
	if digits == "" || !ok {
		return 0, fmt.Errorf("invalid size %q: expected a number with an optional B, K, M or G suffix", value)
	}

	n, err := strconv.ParseInt(strings.TrimSpace(digits), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", value, err)
	}
	if n > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("invalid size %q: too large", value)
	}
	return n * multiplier, nil
}

// normalizeOrigins trims the configured CORS origins and reduces each one to
// scheme://host[:port]. "*" is kept as is.
func normalizeOrigins(origins []string) ([]string, error) {
	var normalized []string
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		switch origin {
		case "":
			continue
		case "*":
			normalized = append(normalized, origin)
			continue
		}

		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("invalid allowed origin %q: expected http(s)://host[:port] or *", origin)
		}
		if u.Path != "" && u.Path != "/" {
			return nil, fmt.Errorf("invalid allowed origin %q: origins have no path", origin)
		}
		normalized = append(normalized, u.Scheme+"://"+u.Host)
	}
	return normalized, nil
}
