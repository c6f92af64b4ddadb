package game

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/xtding233/slot-backend/internal/slot"
)

// DefaultFile is loaded when no config name is given.
const DefaultFile = "config.json"

// Paths helper for config files.
type Paths struct {
	BaseDir string // base directory, e.g., ./configs
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, DefaultFile)
}

// ConfigPath resolves name against the base directory. Absolute names are
// used as they are.
func (p Paths) ConfigPath(name string) string {
	if name == "" {
		return p.DefaultPath()
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.BaseDir, name)
}

// Loader reads, validates and decodes game configs.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]*slot.Config // key: resolved path
}

// NewLoader creates a config loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]*slot.Config),
	}
}

// Load returns the decoded config for name ("" means DefaultFile).
// Results are cached per resolved path until Invalidate.
func (l *Loader) Load(name string) (*slot.Config, error) {
	path := l.paths.ConfigPath(name)

	l.mu.RLock()
	if cfg, ok := l.cache[path]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	raw, err := readConfig(path)
	if err != nil {
		return nil, err
	}
	if err := ValidateRaw(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.mu.Lock()
	l.cache[path] = cfg
	l.mu.Unlock()
	return cfg, nil
}

// LoadRaw reads name without validating it.
func (l *Loader) LoadRaw(name string) (RawConfig, error) {
	return readConfig(l.paths.ConfigPath(name))
}

// Invalidate clears loader's cache.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]*slot.Config)
}

// readConfig loads a JSON or YAML file into RawConfig.
func readConfig(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return RawConfig{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return cfg, nil
}
