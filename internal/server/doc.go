// Package server implements the MCP (Model Context Protocol) server for
// the raster preparation tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the
// histogram/threshold and cropping operations through the MCP protocol,
// so MCP-compatible clients can prepare raster images for downstream
// processing.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Histogram and Threshold:
//   - image_histogram: Intensity histogram plus Otsu threshold and
//     class statistics
//   - image_binarize: Binarize at a given or auto-computed threshold,
//     optionally rendering the two classes with tint colors
//
// Cropping and Tiling:
//   - image_random_crop: Random crop constrained to contain a bounding
//     box, reproducible via an optional seed
//   - image_tile_grid: Split into fixed-size tiles with edge padding,
//     written to an output directory
//   - image_tile_grid_offset: Offset tiling without padding; the
//     apply_offset_to_origin flag selects whether the offset shifts the
//     tile origins or only limits the tile count
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are
// cached by path and reused across multiple tool calls, avoiding
// redundant disk I/O. The cache persists for the lifetime of the
// server process.
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
