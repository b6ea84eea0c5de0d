// Package templates locates, lists, renders and writes the documentation
// templates for the configure-docs CLI.
//
// A Source is a flat fs.FS holding *.md templates plus any auxiliary files
// (such as the lint config). Sources come from an explicit directory, the
// directory holding the executable, or the set built into the binary via
// //go:embed, in that order of preference.
//
// Templates use Go text/template syntax. The data passed to every template
// is a model.Tags value, so the available tokens are its field names:
//
//	{{ .ProjectName }}          foo-bar
//	{{ .ProjectNameTitleized }} Foo Bar
//	{{ .ProjectHomeURL }}       https://github.com/midwire/foo-bar
//	{{ .ProjectIssuesURL }}     https://github.com/midwire/foo-bar/issues
//	{{ .ProjectNewIssueURL }}   https://github.com/midwire/foo-bar/issues/new
//
// Outputs are written with github.com/natefinch/atomic so a failed write
// never leaves a truncated file behind.
package templates
