// Package assets holds data files embedded into the binary.
package assets

import _ "embed"

// Questions is the default question set.
//
//go:embed data/questions.json
var Questions []byte
