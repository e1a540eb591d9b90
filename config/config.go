package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/layout"
	"github.com/treelog/treelog/logger"
	"github.com/treelog/treelog/sink"
)

// Config is a declarative description of a logger tree: a level and
// sink list for the root and for any number of dotted paths.
type Config struct {
	Root    *NodeConfig           `yaml:"root"`
	Loggers map[string]NodeConfig `yaml:"loggers"`
}

// NodeConfig configures one node. Sinks replace the node's sink list
// wholesale, the same semantics as BasicConfig.
type NodeConfig struct {
	Level string       `yaml:"level"`
	Sinks []SinkConfig `yaml:"sinks"`
}

// SinkConfig configures one sink on a node.
type SinkConfig struct {
	// Type is "stream" or "rotate".
	Type string `yaml:"type"`
	// Target is "stdout", "stderr" or a file path; for rotate sinks it
	// is the time-layout path template.
	Target string `yaml:"target"`
	// Layout is "text" (default) or "json".
	Layout string `yaml:"layout"`
	// Separator joins text layout fields (default: tab).
	Separator string `yaml:"separator"`
	// Level is the sink-local threshold label.
	Level string `yaml:"level"`
	// MakeDirs lets a rotate sink create missing directories.
	MakeDirs bool `yaml:"make_dirs"`
}

// Load parses a YAML document into a Config.
func Load(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "config: parsing yaml")
	}
	return &cfg, nil
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading %s", path)
	}
	return Load(data)
}

// Apply installs the configuration onto the tree under root: for each
// named path, the node's level is set and its sink list replaced.
// Problems are reported per node, aggregated, and named by path;
// nodes without problems are still applied.
func (c *Config) Apply(root *logger.Logger) error {
	var err error
	if c.Root != nil {
		err = multierr.Append(err, applyNode(root, "root", *c.Root))
	}
	for path, nc := range c.Loggers {
		err = multierr.Append(err, applyNode(root.Get(path), path, nc))
	}
	return err
}

func applyNode(node *logger.Logger, path string, nc NodeConfig) error {
	sinks := make([]sink.Sink, 0, len(nc.Sinks))
	for _, sc := range nc.Sinks {
		s, err := buildSink(sc)
		if err != nil {
			// Sinks built so far were never installed; close them here
			// or the files they opened leak.
			err = multierr.Append(err, closeSinks(sinks))
			return errors.Wrapf(err, "config: logger %q", path)
		}
		sinks = append(sinks, s)
	}
	node.SetSinks(sinks)
	node.SetLevel(core.ParseLevel(nc.Level))
	return nil
}

func closeSinks(sinks []sink.Sink) error {
	var err error
	for _, s := range sinks {
		err = multierr.Append(err, s.Close())
	}
	return err
}

func buildSink(sc SinkConfig) (sink.Sink, error) {
	lay, err := buildLayout(sc)
	if err != nil {
		return nil, err
	}
	level := core.ParseLevel(sc.Level)

	switch sc.Type {
	case "", "stream":
		w, owns, err := buildTarget(sc.Target)
		if err != nil {
			return nil, err
		}
		return sink.NewStreamSink(sink.StreamConfig{
			Writer:     w,
			OwnsWriter: owns,
			Layout:     lay,
			Level:      level,
		}), nil
	case "rotate":
		if sc.Target == "" {
			return nil, errors.New("rotate sink needs a path template target")
		}
		return sink.NewRotateByTimeSink(sink.RotateConfig{
			PathTemplate: sc.Target,
			MakeDirs:     sc.MakeDirs,
			Layout:       lay,
			Level:        level,
		})
	default:
		return nil, errors.Errorf("unknown sink type %q", sc.Type)
	}
}

func buildLayout(sc SinkConfig) (layout.Layout, error) {
	switch sc.Layout {
	case "", "text":
		return layout.NewTextLayout(layout.TextConfig{Sep: sc.Separator}), nil
	case "json":
		return layout.NewJSONLayout(layout.JSONConfig{}), nil
	default:
		return nil, errors.Errorf("unknown layout %q", sc.Layout)
	}
}

// buildTarget resolves a stream target. The returned flag reports
// whether the writer was opened here; the process streams are shared
// and must never be handed to a sink for closing.
func buildTarget(target string) (io.Writer, bool, error) {
	switch target {
	case "", "stderr":
		return os.Stderr, false, nil
	case "stdout":
		return os.Stdout, false, nil
	default:
		f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, false, errors.Wrapf(err, "opening %s", target)
		}
		return f, true, nil
	}
}
