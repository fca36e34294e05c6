//go:build !webkit_cgo

package surface

// addWebKit is a no-op without the webkit_cgo build tag.
func addWebKit(map[string]Constructor) {}
