package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/specialistvlad/sdvars/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want *app.Config
	}{
		{
			name: "positional path with defaults",
			args: []string{"models/"},
			want: &app.Config{Path: "models/", LogFormat: "text", LogLevel: "info", WorkerCount: 4},
		},
		{
			name: "long flag wins over positional",
			args: []string{"-path", "a.xml", "b.xml"},
			want: &app.Config{Path: "a.xml", LogFormat: "text", LogLevel: "info", WorkerCount: 4},
		},
		{
			name: "everything",
			args: []string{"-p", "m.hcl", "-log-level", "DEBUG", "-log-format", "json", "-workers", "0", "-emit", "XML", "-eval", "effect=0.5, lookup = -2"},
			want: &app.Config{
				Path: "m.hcl", LogFormat: "json", LogLevel: "debug", WorkerCount: 0, Emit: app.EmitXML,
				Evaluations: []app.Evaluation{{Name: "effect", X: 0.5}, {Name: "lookup", X: -2}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, exit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			require.False(t, exit)
			require.Equal(t, tc.want, cfg)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		message string
	}{
		{name: "unknown flag", args: []string{"-nope"}, message: "flag provided but not defined"},
		{name: "log format", args: []string{"-log-format", "xml", "x"}, message: "invalid log-format"},
		{name: "log level", args: []string{"-log-level", "trace", "x"}, message: "invalid log-level"},
		{name: "workers", args: []string{"-workers", "-1", "x"}, message: "invalid workers"},
		{name: "eval pair", args: []string{"-eval", "effect", "x"}, message: `"effect" is not name=x`},
		{name: "eval number", args: []string{"-eval", "effect=high", "x"}, message: "invalid eval"},
		{name: "emit", args: []string{"-emit", "yaml", "x"}, message: "unknown emit format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, exit, err := Parse(tc.args, &bytes.Buffer{})
			require.False(t, exit)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.message)
		})
	}
}

func TestParse_HelpAndNoPath(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"-h"}, {}} {
		out := &bytes.Buffer{}
		cfg, exit, err := Parse(args, out)
		require.NoError(t, err)
		require.True(t, exit)
		require.Nil(t, cfg)
		require.Contains(t, out.String(), "Usage:")
	}
}
