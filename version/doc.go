// Package version reports build metadata for the fsnd binary.
//
// Values are injected with ldflags at build time:
//
//	go build -ldflags "-X github.com/milindvishnoi/FSND/version.Version=1.0.0" ./cmd/fsnd
//
// Anything left unset falls back to the VCS stamp embedded by the go tool.
package version
