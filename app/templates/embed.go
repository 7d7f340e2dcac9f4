// Package templates embeds the page templates so the binary and the tests
// render the same files regardless of the working directory.
package templates

import "embed"

//go:embed *.html layouts partials home auth dashboard admin
var FS embed.FS
