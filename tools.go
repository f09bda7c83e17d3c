//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through `go generate` on the repository, service and
// contract interfaces; importing it here keeps go.mod / go.sum in sync.
package hero_lab

import (
	_ "go.uber.org/mock/mockgen"
)
