package assets

import _ "embed"

// ModelsData holds the raw JSON catalog of vision models usable for
// breed detection.
//
//go:embed models.json
var ModelsData []byte
