// Package web embeds the single-page UI served at the root path.
package web

import _ "embed"

//go:embed index.html
var indexHTML []byte

// Index returns the UI page bytes.
func Index() []byte {
	return indexHTML
}
