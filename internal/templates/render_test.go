package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midwire/configure-docs/internal/model"
)

// TestRender_AllTokens verifies that every token is substituted.
func TestRender_AllTokens(t *testing.T) {
	text := []byte("{{ .ProjectName }}|{{ .ProjectNameTitleized }}|{{ .ProjectHomeURL }}|" +
		"{{ .ProjectIssuesURL }}|{{ .ProjectNewIssueURL }}")

	out, err := Render("all.md", text, model.NewTags("foo-bar"))
	require.NoError(t, err)
	assert.Equal(t,
		"foo-bar|Foo Bar|https://github.com/midwire/foo-bar|"+
			"https://github.com/midwire/foo-bar/issues|https://github.com/midwire/foo-bar/issues/new",
		string(out))
}

// TestRender_PlainTextUnchanged verifies that text without tokens passes through.
func TestRender_PlainTextUnchanged(t *testing.T) {
	text := []byte("# Heading\n\nNo tokens here.\n")
	out, err := Render("plain.md", text, model.NewTags("x"))
	require.NoError(t, err)
	assert.Equal(t, text, out)
}

// TestRender_Deterministic verifies that rendering twice gives identical bytes.
func TestRender_Deterministic(t *testing.T) {
	text := []byte("Welcome to {{ .ProjectNameTitleized }} ({{ .ProjectHomeURL }})")
	tags := model.NewTags("my_project")

	first, err := Render("a.md", text, tags)
	require.NoError(t, err)
	second, err := Render("a.md", text, tags)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "Welcome to My Project (https://github.com/midwire/my_project)", string(first))
}

// TestRender_Errors covers parse and execution failures.
func TestRender_Errors(t *testing.T) {
	t.Run("parse error", func(t *testing.T) {
		_, err := Render("broken.md", []byte("{{ .ProjectName "), model.NewTags("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing template broken.md")
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := Render("unknown.md", []byte("{{ .ProjectOwner }}"), model.NewTags("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "executing template unknown.md")
	})
}
