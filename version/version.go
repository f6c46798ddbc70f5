package version

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/xen-tools/gen-policy/version.Version=v1.2.3".
var Version = "dev"
