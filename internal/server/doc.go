// Package server implements an MCP (Model Context Protocol) server for the image resizer.
//
// The server speaks JSON-RPC 2.0 over stdio:
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
// Inspection:
//   - image_info: Width, height, format and alpha support of a file
//   - image_formats: Output formats, codec availability and default qualities
//
// Sessions:
//   - image_open: Decode a file and return a handle
//   - image_resize: Apply a resize mode (within, width, height, fill, none)
//   - image_background: Flatten transparency onto a hex color
//   - image_save: Encode the current buffer to a file
//   - image_close: Release a handle
//
// One-shot:
//   - image_resize_file: Open, resize and save in a single call
//
// # Sessions
//
// Every open handle owns one imaging.Resizer. Calls on the same handle are
// serialized; calls on different handles may run concurrently. Handles that
// are still open when Serve returns are closed.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(server.Config{Logger: logger, Options: opts})
//	if err := srv.Run(); err != nil {
//	    logger.Error("server stopped", "error", err)
//	}
package server
