// Package web bundles the HTML templates and static assets into the binary.
//
// The starfield canvas is drawn by a WebAssembly build of cmd/starfield-wasm.
// Run `go generate ./web` before `go build` so both files below are embedded.
package web

//go:generate sh -c "GOOS=js GOARCH=wasm go build -o static/starfield.wasm ../cmd/starfield-wasm"
//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" static/ 2>/dev/null || cp \"$(go env GOROOT)/misc/wasm/wasm_exec.js\" static/"

import (
	"embed"
	"io/fs"
)

// Asset names requested by static/app.js
const (
	StarfieldWasm = "starfield.wasm"
	WasmExec      = "wasm_exec.js"
)

//go:embed templates/*.html
var Templates embed.FS

//go:embed static
var staticFiles embed.FS

// Static returns the static assets rooted at the static directory
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// HasStarfield reports whether the generated wasm assets were embedded
func HasStarfield() bool {
	for _, name := range []string{StarfieldWasm, WasmExec} {
		if _, err := fs.Stat(Static(), name); err != nil {
			return false
		}
	}
	return true
}
