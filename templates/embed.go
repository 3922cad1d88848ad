// Package templates carries the built-in template set.
package templates

import "embed"

//go:embed *.tmpl
var FS embed.FS
