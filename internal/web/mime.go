package web

import (
	"fmt"
	"mime"
)

// Browsers reject module scripts and stylesheets with the wrong Content-Type,
// and the mime package reads part of its table from host files that minimal
// systems lack.
var devTypes = map[string]string{
	".css":  "text/css; charset=utf-8",
	".html": "text/html; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".json": "application/json",
	".map":  "application/json",
	".mjs":  "text/javascript; charset=utf-8",
	".svg":  "image/svg+xml",
	".wasm": "application/wasm",
}

// RegisterMIMETypes pins the content types used for front-end assets.
func RegisterMIMETypes() error {
	for ext, typ := range devTypes {
		if err := mime.AddExtensionType(ext, typ); err != nil {
			return fmt.Errorf("register %s: %w", ext, err)
		}
	}
	return nil
}
