package ops

import (
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"xroad/internal/errors"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

var decoder = sonic.Config{UseNumber: true}.Froze()

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Node     NodeConfig         `json:"node"`
	Store    StoreConfig        `json:"store"`
	Records  []RecordConfig     `json:"records"`
	Features FeatureFlagsConfig `json:"features"`
}

// NodeConfig names the local node.
type NodeConfig struct {
	Name string `json:"name"`
}

// StoreConfig selects the snapshot sink for printable records.
type StoreConfig struct {
	Kind string `json:"kind"`
	Dir  string `json:"dir"`
	DSN  string `json:"dsn"`
}

// RecordConfig describes one record to seed. Field values use the to-dict text forms.
type RecordConfig struct {
	Kind   string         `json:"kind"`
	ID     int64          `json:"id"`
	Fields map[string]any `json:"fields"`
}

// FeatureFlagsConfig captures optional runtime flags.
type FeatureFlagsConfig struct {
	Instrument *bool `json:"instrument"`
	Dump       *bool `json:"dump"`
}

// StoreKind is the snapshot sink backend.
type StoreKind string

const (
	StoreNone     StoreKind = ""
	StorePebble   StoreKind = "pebble"
	StorePostgres StoreKind = "postgres"
)

// FeatureFlags are resolved runtime flags.
type FeatureFlags struct {
	Instrument bool
	Dump       bool
}

// StoreSpec is the resolved sink definition.
type StoreSpec struct {
	Kind StoreKind
	Dir  string
	DSN  string
}

// RecordSpec is a resolved record to seed.
type RecordSpec struct {
	Kind   schema.RecordKind
	ID     int64
	Fields map[string]any
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	NodeName    string
	Store       StoreSpec
	Records     []RecordSpec
	Features    FeatureFlags
	ProfileAddr string
}

// Load reads a JSON config file and resolves it against reg.
func Load(path string, reg *schema.Registry) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, errors.Wrapf(err, "read config %s", path)
	}
	return Parse(data, reg)
}

// Parse resolves a JSON config against reg.
func Parse(data []byte, reg *schema.Registry) (Loaded, error) {
	var cfg FileConfig
	if err := decoder.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, errors.Wrapf(exception.ErrInvalidConfig, "decode: %s", err.Error())
	}

	store, err := resolveStore(cfg.Store)
	if err != nil {
		return Loaded{}, err
	}
	records, err := resolveRecords(cfg.Records, reg)
	if err != nil {
		return Loaded{}, err
	}

	name := cfg.Node.Name
	if name == "" {
		name = "xroad"
	}
	if len(name) > schema.SizeNodeName {
		return Loaded{}, errors.Wrapf(exception.ErrInvalidConfig, "node name %q is longer than %d", name, schema.SizeNodeName)
	}

	return Loaded{
		NodeName: name,
		Store:    store,
		Records:  records,
		Features: resolveFeatures(cfg.Features),
	}, nil
}

func resolveStore(cfg StoreConfig) (StoreSpec, error) {
	spec := StoreSpec{Kind: StoreKind(strings.ToLower(strings.TrimSpace(cfg.Kind))), Dir: cfg.Dir, DSN: cfg.DSN}
	switch spec.Kind {
	case StoreNone:
	case StorePebble:
		if spec.Dir == "" {
			spec.Dir = "data/records"
		}
	case StorePostgres:
		if spec.DSN == "" {
			return StoreSpec{}, errors.Wrap(exception.ErrInvalidConfig, "postgres store needs a dsn")
		}
	default:
		return StoreSpec{}, errors.Wrapf(exception.ErrInvalidConfig, "unknown store kind %q", cfg.Kind)
	}
	return spec, nil
}

func resolveRecords(cfg []RecordConfig, reg *schema.Registry) ([]RecordSpec, error) {
	records := make([]RecordSpec, 0, len(cfg))
	for i, rc := range cfg {
		kind, ok := reg.KindByName(rc.Kind)
		if !ok {
			return nil, errors.Wrapf(exception.ErrInvalidConfig, "record %d: unknown kind %q", i, rc.Kind)
		}
		s := reg.MustSchema(kind)
		if !s.Creatable {
			return nil, errors.Wrapf(exception.ErrInvalidConfig, "record %d: kind %s is not creatable", i, rc.Kind)
		}
		if rc.ID < 0 {
			return nil, errors.Wrapf(exception.ErrInvalidConfig, "record %d: negative id %d", i, rc.ID)
		}
		for name := range rc.Fields {
			if !s.HasField(name) {
				return nil, errors.Wrapf(exception.ErrInvalidConfig, "record %d: %s has no field %s", i, rc.Kind, name)
			}
		}
		records = append(records, RecordSpec{Kind: kind, ID: rc.ID, Fields: rc.Fields})
	}
	return records, nil
}

func resolveFeatures(cfg FeatureFlagsConfig) FeatureFlags {
	flags := FeatureFlags{
		Instrument: true,
		Dump:       false,
	}
	if cfg.Instrument != nil {
		flags.Instrument = *cfg.Instrument
	}
	if cfg.Dump != nil {
		flags.Dump = *cfg.Dump
	}
	return flags
}

// String renders a one-line summary for logs.
func (l Loaded) String() string {
	return fmt.Sprintf("node=%s store=%s records=%d instrument=%t dump=%t",
		l.NodeName, storeName(l.Store.Kind), len(l.Records), l.Features.Instrument, l.Features.Dump)
}

func storeName(kind StoreKind) string {
	if kind == StoreNone {
		return "none"
	}
	return string(kind)
}
