// Package views embeds the HTML templates served by the web surface.
package views

import "embed"

// FS holds every template, addressed as "index", "layouts/main", "partials/screen" and so on.
//
//go:embed *.html layouts/*.html partials/*.html
var FS embed.FS
