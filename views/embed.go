// Package views holds the HTML templates rendered by the server.
package views

import "embed"

//go:embed *.html layouts/*.html
var FS embed.FS
