package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and color properties.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Histogram and Threshold
		{
			Name:        "image_histogram",
			Description: "Compute the 256-bin intensity histogram of an image and its optimal binarization threshold (Otsu's method). Color images are converted to grayscale first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_binarize",
			Description: "Binarize an image at a threshold and return the result as base64 PNG. Omit the threshold to use the Otsu optimum. Optional tint colors render the two classes in color instead of black/white.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Intensity cutoff (0-255). Pixels above it become white. Omit to auto-compute via Otsu.",
					},
					"low_color": map[string]interface{}{
						"type":        "string",
						"description": "Optional hex tint (e.g. #1B263B) for pixels at or below the threshold",
					},
					"high_color": map[string]interface{}{
						"type":        "string",
						"description": "Optional hex tint for pixels above the threshold",
					},
				},
				"required": []string{"path"},
			},
		},

		// Cropping and Tiling
		{
			Name:        "image_random_crop",
			Description: "Crop a random region of a fixed size that fully contains the given bounding box. Returns the crop as base64 PNG plus the chosen top-left offset.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"box": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x":      map[string]interface{}{"type": "integer"},
							"y":      map[string]interface{}{"type": "integer"},
							"width":  map[string]interface{}{"type": "integer"},
							"height": map[string]interface{}{"type": "integer"},
						},
						"required":    []string{"x", "y", "width", "height"},
						"description": "Bounding box the crop must contain, in image coordinates",
					},
					"crop_width": map[string]interface{}{
						"type":        "integer",
						"description": "Width of the crop in pixels (default 512)",
						"default":     512,
					},
					"crop_height": map[string]interface{}{
						"type":        "integer",
						"description": "Height of the crop in pixels (default 512)",
						"default":     512,
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Optional random seed for reproducible corner selection",
					},
				},
				"required": []string{"path", "box"},
			},
		},
		{
			Name:        "image_tile_grid",
			Description: "Split an image into a grid of fixed-size tiles and write them to a directory as PNG. Edge tiles are padded with black to the full tile size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"tile_width": map[string]interface{}{
						"type":        "integer",
						"description": "Tile width in pixels (default 512)",
						"default":     512,
					},
					"tile_height": map[string]interface{}{
						"type":        "integer",
						"description": "Tile height in pixels (default 512)",
						"default":     512,
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory to write tiles into (created if missing)",
					},
				},
				"required": []string{"path", "output_dir"},
			},
		},
		{
			Name:        "image_tile_grid_offset",
			Description: "Split an image into fixed-size tiles with an offset reserved, writing them to a directory. No padding; trailing pixels are dropped. By default the offset limits only the tile count; set apply_offset_to_origin to also shift the tile origins.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"tile_width": map[string]interface{}{
						"type":        "integer",
						"description": "Tile width in pixels (default 512)",
						"default":     512,
					},
					"tile_height": map[string]interface{}{
						"type":        "integer",
						"description": "Tile height in pixels (default 512)",
						"default":     512,
					},
					"offset_x": map[string]interface{}{
						"type":        "integer",
						"description": "Horizontal offset in pixels (default 256)",
						"default":     256,
					},
					"offset_y": map[string]interface{}{
						"type":        "integer",
						"description": "Vertical offset in pixels (default 256)",
						"default":     256,
					},
					"apply_offset_to_origin": map[string]interface{}{
						"type":        "boolean",
						"description": "Shift tile origins by the offset instead of only reducing the tile count",
						"default":     false,
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory to write tiles into (created if missing)",
					},
				},
				"required": []string{"path", "output_dir"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
