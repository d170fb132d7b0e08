// internal/version/version.go
package version

// Version is the release version. Overridable at link time with
// -ldflags "-X .../internal/version.Version=...".
var Version = "0.3.1"
