package assoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"

	"github.com/tailored-agentic-units/structures/observability"
)

// Config holds construction parameters for an AssociativeArray.
type Config struct {
	Capacity int    `json:"capacity,omitempty" toml:"capacity,omitempty"`
	Observer string `json:"observer,omitempty" toml:"observer,omitempty"` // observability registry name
}

// DefaultConfig returns DefaultCapacity with the "noop" observer.
func DefaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
		Observer: "noop",
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Capacity != 0 {
		c.Capacity = source.Capacity
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("%w: capacity %d is negative", ErrInvalidConfig, c.Capacity)
	}
	return nil
}

// LoadConfig reads a config file, merges it over DefaultConfig and validates
// the result. Files ending in .toml are decoded as TOML; anything else is
// decoded as JSON, with comments and trailing commas allowed.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&loaded)
	} else {
		err = json.Unmarshal(jsonc.ToJSON(data), &loaded)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewFromConfig creates an AssociativeArray from cfg. The observer is looked
// up by name; opts are applied afterwards and override cfg.
func NewFromConfig[K comparable, V any](cfg *Config, opts ...Option) (*AssociativeArray[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := []Option{WithCapacity(cfg.Capacity)}
	if cfg.Observer != "" {
		obs, err := observability.GetObserver(cfg.Observer)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve observer: %w", err)
		}
		base = append(base, WithObserver(obs))
	}

	return New[K, V](append(base, opts...)...), nil
}
