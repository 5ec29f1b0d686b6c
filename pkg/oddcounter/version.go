package oddcounter

// Version is the semantic version populated at build time via ldflags. In
// development it defaults to v0.0.0-dev.
var Version = "v0.0.0-dev"
