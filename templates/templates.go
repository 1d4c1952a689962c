// Package templates embeds the HTML pages served by the page controller.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
