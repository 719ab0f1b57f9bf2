package version

// VERSION is overwritten at build time via -ldflags "-X ...version.VERSION=x.y.z"
var VERSION = "dev"
