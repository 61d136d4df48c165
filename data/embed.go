package data

import (
	_ "embed"
)

// ContentJSON is the built-in sample content bundle, used when no external
// bundle is configured.
//
//go:embed seed/content.json
var ContentJSON []byte
