// Package internalcheck holds static policy tests over the meos packages.
//
// The tests load the public packages with golang.org/x/tools/go/packages and
// fail when an exported declaration leaks native addresses or internal types,
// or when cgo is used outside the backend. The package has no API.
package internalcheck
