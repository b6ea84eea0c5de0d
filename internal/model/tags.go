package model

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tags is the substitution context available to every template.
// Field names are the template tokens: {{ .ProjectName }}, {{ .ProjectHomeURL }}, ...
type Tags struct {
	ProjectName          string `json:"projectName" yaml:"project_name"`
	ProjectNameTitleized string `json:"projectNameTitleized" yaml:"project_name_titleized"`
	ProjectHomeURL       string `json:"projectHomeUrl" yaml:"project_home_url"`
	ProjectIssuesURL     string `json:"projectIssuesUrl" yaml:"project_issues_url"`
	ProjectNewIssueURL   string `json:"projectNewIssueUrl" yaml:"project_new_issue_url"`
}

// NewTags derives the substitution context for a project hosted under the
// default host and org.
func NewTags(projectName string) Tags {
	return NewTagsFor(projectName, DefaultHost, DefaultOrg)
}

// NewTagsFor derives the substitution context for a project hosted at
// https://<host>/<org>/<projectName>. Empty host or org fall back to the
// defaults. The URLs are not validated.
//
// The new-issue URL is built from the home URL (home + "/issues/new"),
// not by appending "/issues/new" to the issues URL.
func NewTagsFor(projectName, host, org string) Tags {
	if host == "" {
		host = DefaultHost
	}
	if org == "" {
		org = DefaultOrg
	}
	home := fmt.Sprintf("https://%s/%s/%s", host, org, projectName)
	return Tags{
		ProjectName:          projectName,
		ProjectNameTitleized: Titleize(projectName),
		ProjectHomeURL:       home,
		ProjectIssuesURL:     home + "/issues",
		ProjectNewIssueURL:   home + "/issues/new",
	}
}

// Titleize turns an identifier into a display title: words are split on
// whitespace, underscores, hyphens and camelCase boundaries, then each word
// is lowercased and every letter that starts a word capitalized.
//
//	my_project -> My Project
//	foo-bar    -> Foo Bar
//	MyProject  -> My Project
//	foo.bar    -> Foo.Bar
//	2fast      -> 2fast
func Titleize(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	// cases.Caser keeps state between calls; one per invocation.
	lower := cases.Lower(language.English)
	for i, w := range words {
		words[i] = capitalizeWordStarts(lower.String(w))
	}
	return strings.Join(words, " ")
}

// capitalizeWordStarts upper-cases each letter that follows a non-word rune
// or starts s. A letter after a digit is not a word start ("2fast"), and an
// apostrophe or bracket directly after a word does not start a new one
// ("don't").
func capitalizeWordStarts(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			continue
		}
		if i > 0 && isWordRune(runes[i-1]) {
			continue
		}
		if i > 1 && strings.ContainsRune("'’`()", runes[i-1]) && isWordRune(runes[i-2]) {
			continue
		}
		runes[i] = unicode.ToTitle(r)
	}
	return string(runes)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '_' || r == '-'
}

// splitWords breaks s into words. A camelCase boundary is a lower-case
// letter or digit followed by an upper-case letter ("myProject"), or the
// last upper-case letter of an acronym followed by a lower-case one
// ("HTTPServer" -> "HTTP", "Server").
func splitWords(s string) []string {
	runes := []rune(s)
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}
		if len(current) > 0 && unicode.IsUpper(r) {
			prev := current[len(current)-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()
	return words
}
