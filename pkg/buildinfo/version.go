// Package buildinfo carries version information stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/archiview/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/archiview/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/archiview/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/archiview
package buildinfo

import "fmt"

// Set via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Product names the binary in version output and HTTP headers.
const Product = "archiview"

// String returns the multi-line build description.
func String() string {
	return fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s", Product, Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return String() + "\n"
}

// UserAgent returns "archiview/<version>", used as the HTTP Server header.
func UserAgent() string {
	return Product + "/" + Version
}

// CacheNamespace scopes cache keys to a release so that entries written by
// an older DOT serializer are never read back.
func CacheNamespace() string {
	return Product + ":" + Version + ":"
}
