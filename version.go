package rapport

// Version is the rapport release, reported by the CLI and the MCP server.
var Version = "0.1.0"
