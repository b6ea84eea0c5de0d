package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTitleize covers separator handling, camelCase splitting and casing.
func TestTitleize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"my_project", "My Project"},
		{"foo-bar", "Foo Bar"},
		{"foo bar", "Foo Bar"},
		{"configure", "Configure"},
		{"MyProject", "My Project"},
		{"myProject", "My Project"},
		{"HTTPServer", "Http Server"},
		{"ALLCAPS", "Allcaps"},
		{"  padded__name  ", "Padded Name"},
		{"mixed_Case-words here", "Mixed Case Words Here"},
		{"v2_api", "V2 Api"},
		{"2fast", "2fast"},
		{"2fast_cars", "2fast Cars"},
		{"foo.bar", "Foo.Bar"},
		{"iPhone_app", "I Phone App"},
		{"don't-stop", "Don't Stop"},
		{"", ""},
		{"___", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Titleize(tt.input))
		})
	}
}

// TestNewTags verifies the derived URLs under the default host and org.
func TestNewTags(t *testing.T) {
	tags := NewTags("foo-bar")

	assert.Equal(t, "foo-bar", tags.ProjectName)
	assert.Equal(t, "Foo Bar", tags.ProjectNameTitleized)
	assert.Equal(t, "https://github.com/midwire/foo-bar", tags.ProjectHomeURL)
	assert.Equal(t, "https://github.com/midwire/foo-bar/issues", tags.ProjectIssuesURL)
	assert.Equal(t, "https://github.com/midwire/foo-bar/issues/new", tags.ProjectNewIssueURL)
}

// TestNewTags_URLRelationships checks the URL invariants for several names.
func TestNewTags_URLRelationships(t *testing.T) {
	for _, name := range []string{"a", "my_project", "Some.Repo", "x-y-z"} {
		t.Run(name, func(t *testing.T) {
			tags := NewTags(name)
			assert.Equal(t, "https://github.com/midwire/"+name, tags.ProjectHomeURL)
			assert.Equal(t, tags.ProjectHomeURL+"/issues", tags.ProjectIssuesURL)
			assert.Equal(t, tags.ProjectHomeURL+"/issues/new", tags.ProjectNewIssueURL)
			assert.NotContains(t, tags.ProjectNewIssueURL, "/issues/issues")
		})
	}
}

// TestNewTagsFor_Defaults verifies that empty host/org fall back to defaults.
func TestNewTagsFor_Defaults(t *testing.T) {
	assert.Equal(t, NewTags("proj"), NewTagsFor("proj", "", ""))

	custom := NewTagsFor("proj", "git.example.org", "team")
	assert.Equal(t, "https://git.example.org/team/proj/issues", custom.ProjectIssuesURL)
}
