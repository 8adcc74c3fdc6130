// Package server implements the MCP (Model Context Protocol) server for the
// compositing tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the composite-fit
// operation and its supporting tools through the MCP protocol, for Claude and
// other MCP-compatible clients.
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
// Compositing:
//   - image_composite_fit: Fit and paste a content image into a canvas region
//   - canvas_create: Create a blank solid-color canvas
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Result Verification:
//   - image_sample_color: Get color at pixel
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded content images, keyed
// by path and reused across tool calls. Canvas and overlay paths are resolved
// fresh by the compositing operation on every call.
//
// # Logging
//
// Diagnostics go to the standard logger (stderr); stdout is reserved for the
// protocol. Non-fatal compositing warnings, such as a missing overlay file,
// are logged at WARN level and do not fail the tool call.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
