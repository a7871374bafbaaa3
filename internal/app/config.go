package app

import (
	"errors"
	"fmt"
)

// Output formats accepted by Config.Emit.
const (
	EmitNone = ""
	EmitXML  = "xml"
	EmitHCL  = "hcl"
)

// Evaluation asks for a graphical function to be evaluated at X.
type Evaluation struct {
	Name string
	X    float64
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Path string // file or directory of definitions

	LogFormat   string
	LogLevel    string
	WorkerCount int

	Emit        string
	Evaluations []Evaluation
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Path == "" {
		return nil, errors.New("Path is a required configuration field and cannot be empty")
	}
	switch cfg.Emit {
	case EmitNone, EmitXML, EmitHCL:
	default:
		return nil, fmt.Errorf("unknown emit format %q: must be %q or %q", cfg.Emit, EmitXML, EmitHCL)
	}
	for _, ev := range cfg.Evaluations {
		if ev.Name == "" {
			return nil, errors.New("evaluation needs a graphical function name")
		}
	}
	return &cfg, nil
}
