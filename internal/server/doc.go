// Package server implements the MCP (Model Context Protocol) server for blurhash tools.
//
// This package provides a JSON-RPC 2.0 server that exposes blurhash encoding
// and decoding through the MCP protocol, so that MCP clients can produce
// compact image placeholders and preview them.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata and a suggested component grid
//   - blurhash_encode: Hash an image file, a region of it or a named quadrant
//   - blurhash_decode: Render a hash as a PNG placeholder
//   - blurhash_inspect: Show the grid, AC range, average color and factors of a hash
//   - blurhash_validate: Check a hash and locate the first malformed field
//
// # Configuration
//
// LoadConfig reads BLURHASH_MCP_LOG_LEVEL, BLURHASH_MCP_WORKERS and
// BLURHASH_MCP_MAX_DIMENSION. See Config for their meaning.
//
// # Image Caching
//
// Source images are cached by path and reused across tool calls until the
// file's size or modification time changes.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// blurhash_validate is the exception: a malformed hash is its normal
// result, not an error.
//
// # Usage
//
//	srv := server.New(server.LoadConfig())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
