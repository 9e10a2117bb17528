package option

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/xgzlucario/sortarr"
)

const (
	KB = 1 << 10
	MB = 1 << 20
)

// environment overrides.
const (
	EnvWords   = "SORTARR_WORDS"
	EnvLimit   = "SORTARR_LIMIT"
	EnvJournal = "SORTARR_JOURNAL"
)

var ErrInvalidOption = errors.New("option: invalid option")

// Option for a benchmark run.
type Option struct {
	// Words is a file path, an http(s) URL or leveldb://dir.
	Words string `yaml:"words"`
	// Limit bounds the number of words used, 0 means all.
	Limit int `yaml:"limit"`

	Policies []string `yaml:"policies"`
	Step     int      `yaml:"step"`

	SliceBacking bool `yaml:"slice_backing"`
	Baseline     bool `yaml:"baseline"`

	Skiplist          bool   `yaml:"skiplist"`
	SkiplistArenaSize uint32 `yaml:"skiplist_arena_size"`

	// Journal is the snapshot journal directory, empty disables it.
	Journal  string `yaml:"journal"`
	LogLevel string `yaml:"log_level"`
}

// DefaultOption
var DefaultOption = &Option{
	Words:             "words_alpha.txt",
	Limit:             1000,
	Policies:          []string{"incremental", "doubling", "fibonacci"},
	Step:              sortarr.DefaultStep,
	SliceBacking:      true,
	Baseline:          true,
	Skiplist:          false,
	SkiplistArenaSize: 1 * MB,
	LogLevel:          "info",
}

// Default returns a copy of DefaultOption.
func Default() *Option {
	opt := *DefaultOption
	opt.Policies = append([]string(nil), DefaultOption.Policies...)
	return &opt
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Option, error) {
	opt := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, opt); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidOption, path, err)
	}
	return opt, opt.Validate()
}

// ApplyEnv overrides fields from the environment.
func (o *Option) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvWords); ok && v != "" {
		o.Words = v
	}
	if v, ok := os.LookupEnv(EnvLimit); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidOption, EnvLimit, v)
		}
		o.Limit = n
	}
	if v, ok := os.LookupEnv(EnvJournal); ok {
		o.Journal = v
	}
	return o.Validate()
}

// Validate
func (o *Option) Validate() error {
	if o.Limit < 0 {
		return fmt.Errorf("%w: limit %d", ErrInvalidOption, o.Limit)
	}
	if o.Skiplist && o.SkiplistArenaSize < KB {
		return fmt.Errorf("%w: skiplist arena size %d", ErrInvalidOption, o.SkiplistArenaSize)
	}
	_, err := o.ParsePolicies()
	return err
}

// ParsePolicies returns a fresh policy for every configured selector.
func (o *Option) ParsePolicies() ([]sortarr.Policy, error) {
	policies := make([]sortarr.Policy, 0, len(o.Policies))
	for _, name := range o.Policies {
		p, err := sortarr.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		if p.Kind() == sortarr.Incremental && o.Step != sortarr.DefaultStep {
			p = sortarr.IncrementalPolicy(o.Step)
		}
		if err := checkPolicy(p); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, nil
}

// checkPolicy
func checkPolicy(p sortarr.Policy) error {
	_, err := sortarr.New[int](p)
	return err
}
