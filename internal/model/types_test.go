package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewOptions verifies that optional fields start at their documented defaults.
func TestNewOptions(t *testing.T) {
	opts := NewOptions("foo-bar", "/tmp/foo-bar")

	assert.Equal(t, "foo-bar", opts.ProjectName)
	assert.Equal(t, "/tmp/foo-bar", opts.ProjectPath)
	assert.False(t, opts.Verbose, "verbose defaults to false")
	assert.True(t, opts.Color, "color defaults to true")
	assert.True(t, opts.CopyLintConfig, "lint config copy defaults to true")
	assert.Equal(t, DefaultLintConfig, opts.LintConfig)
	assert.Equal(t, DefaultHost, opts.Host)
	assert.Equal(t, DefaultOrg, opts.Org)
	assert.Empty(t, opts.TemplatesDir)
}

// TestOptions_Validate checks required-field detection.
func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{
			name: "valid",
			opts: NewOptions("foo", "/tmp"),
		},
		{
			name:    "missing project name",
			opts:    NewOptions("", "/tmp"),
			wantErr: "--project-name",
		},
		{
			name:    "missing project path",
			opts:    NewOptions("foo", ""),
			wantErr: "--project-path",
		},
		{
			name:    "whitespace only counts as missing",
			opts:    NewOptions("   ", "/tmp"),
			wantErr: "--project-name",
		},
		{
			name:    "both missing are reported together",
			opts:    NewOptions("", ""),
			wantErr: "--project-name, --project-path",
		},
		{
			name: "empty lint config with copy enabled",
			opts: func() Options {
				o := NewOptions("foo", "/tmp")
				o.LintConfig = ""
				return o
			}(),
			wantErr: "lint config",
		},
		{
			name: "empty lint config with copy disabled is fine",
			opts: func() Options {
				o := NewOptions("foo", "/tmp")
				o.LintConfig = ""
				o.CopyLintConfig = false
				return o
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestOptions_Tags verifies that Options feeds host and org into the URLs.
func TestOptions_Tags(t *testing.T) {
	opts := NewOptions("widget", "/tmp")
	opts.Host = "gitlab.example.com"
	opts.Org = "acme"

	tags := opts.Tags()
	assert.Equal(t, "https://gitlab.example.com/acme/widget", tags.ProjectHomeURL)
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitUsage, "required option(s) --project-name not set")
		assert.Equal(t, ExitUsage, err.Code)
		assert.Equal(t, "required option(s) --project-name not set", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := WrapCLIError(ExitFilesystemError, "failed to write CONTRIBUTING.md", inner)
		assert.Equal(t, ExitFilesystemError, err.Code)
		assert.Contains(t, err.Error(), "permission denied")
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("errors.As chain", func(t *testing.T) {
		inner := errors.New("permission denied")
		var wrapped error = WrapCLIError(ExitFilesystemError, "write failed", inner)
		var cliErr *CLIError
		require.True(t, errors.As(wrapped, &cliErr))
		assert.Equal(t, ExitFilesystemError, cliErr.Code)
		assert.True(t, errors.Is(wrapped, inner))
	})
}
