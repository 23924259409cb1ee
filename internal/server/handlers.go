package server

import (
	"encoding/json"
	"fmt"
	"image"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/rasterprep/raster-prep-tools/internal/crop"
	"github.com/rasterprep/raster-prep-tools/internal/imaging"
	"github.com/rasterprep/raster-prep-tools/internal/threshold"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_histogram", "image_tile_grid").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate threshold/crop function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Histogram and Threshold
	case "image_histogram":
		return s.handleImageHistogram(args)
	case "image_binarize":
		return s.handleImageBinarize(args)

	// Cropping and Tiling
	case "image_random_crop":
		return s.handleImageRandomCrop(args)
	case "image_tile_grid":
		return s.handleImageTileGrid(args)
	case "image_tile_grid_offset":
		return s.handleImageTileGridOffset(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Histogram and Threshold Handlers ===

func (s *Server) handleImageHistogram(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	gray, err := s.cache.LoadGray(a.Path)
	if err != nil {
		return nil, err
	}
	return threshold.Analyze(gray)
}

type imageBinarizeArgs struct {
	Path      string `json:"path"`
	Threshold *int   `json:"threshold,omitempty"`
	LowColor  string `json:"low_color,omitempty"`
	HighColor string `json:"high_color,omitempty"`
}

// BinarizeResult contains a binarized image and the threshold applied.
type BinarizeResult struct {
	Threshold   int    `json:"threshold"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handleImageBinarize(args json.RawMessage) (interface{}, error) {
	var a imageBinarizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	gray, err := s.cache.LoadGray(a.Path)
	if err != nil {
		return nil, err
	}

	var t uint8
	if a.Threshold != nil {
		if *a.Threshold < 0 || *a.Threshold > 255 {
			return nil, fmt.Errorf("threshold %d outside [0,255]", *a.Threshold)
		}
		t = uint8(*a.Threshold)
	} else {
		analysis, err := threshold.Analyze(gray)
		if err != nil {
			return nil, err
		}
		t = analysis.Threshold
	}

	var out image.Image
	if a.LowColor != "" || a.HighColor != "" {
		if a.LowColor == "" {
			a.LowColor = "#000000"
		}
		if a.HighColor == "" {
			a.HighColor = "#FFFFFF"
		}
		out, err = threshold.Preview(gray, t, a.LowColor, a.HighColor)
		if err != nil {
			return nil, err
		}
	} else {
		out = threshold.Binarize(gray, t)
	}

	encoded, err := imaging.EncodePNG(out)
	if err != nil {
		return nil, err
	}
	return &BinarizeResult{
		Threshold:   int(t),
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// === Cropping and Tiling Handlers ===

type imageRandomCropArgs struct {
	Path       string           `json:"path"`
	Box        crop.BoundingBox `json:"box"`
	CropWidth  int              `json:"crop_width"`
	CropHeight int              `json:"crop_height"`
	Seed       *int64           `json:"seed,omitempty"`
}

// RandomCropResult contains a crop and the offset at which it was taken.
type RandomCropResult struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handleImageRandomCrop(args json.RawMessage) (interface{}, error) {
	var a imageRandomCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.CropWidth == 0 {
		a.CropWidth = 512
	}
	if a.CropHeight == 0 {
		a.CropHeight = 512
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if a.Seed != nil {
		rng = rand.New(rand.NewSource(*a.Seed))
	}
	cropped, origin, err := crop.RandomCropWithBox(img, a.Box, crop.Size{Width: a.CropWidth, Height: a.CropHeight}, rng)
	if err != nil {
		return nil, err
	}

	encoded, err := imaging.EncodePNG(cropped)
	if err != nil {
		return nil, err
	}
	return &RandomCropResult{
		X:           origin.X,
		Y:           origin.Y,
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

type imageTileGridArgs struct {
	Path       string `json:"path"`
	TileWidth  int    `json:"tile_width"`
	TileHeight int    `json:"tile_height"`
	OutputDir  string `json:"output_dir"`
}

// TileGridResult lists the tiles written by a tiling tool.
type TileGridResult struct {
	TileWidth  int      `json:"tile_width"`
	TileHeight int      `json:"tile_height"`
	Count      int      `json:"count"`
	Files      []string `json:"files"`
}

func (s *Server) handleImageTileGrid(args json.RawMessage) (interface{}, error) {
	var a imageTileGridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.TileWidth == 0 {
		a.TileWidth = 512
	}
	if a.TileHeight == 0 {
		a.TileHeight = 512
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	tiles, err := crop.TileGrid(img, crop.Size{Width: a.TileWidth, Height: a.TileHeight})
	if err != nil {
		return nil, err
	}
	files, err := writeTiles(tiles, a.OutputDir)
	if err != nil {
		return nil, err
	}
	return &TileGridResult{
		TileWidth:  a.TileWidth,
		TileHeight: a.TileHeight,
		Count:      len(tiles),
		Files:      files,
	}, nil
}

type imageTileGridOffsetArgs struct {
	Path                string `json:"path"`
	TileWidth           int    `json:"tile_width"`
	TileHeight          int    `json:"tile_height"`
	OffsetX             *int   `json:"offset_x,omitempty"`
	OffsetY             *int   `json:"offset_y,omitempty"`
	ApplyOffsetToOrigin bool   `json:"apply_offset_to_origin"`
	OutputDir           string `json:"output_dir"`
}

func (s *Server) handleImageTileGridOffset(args json.RawMessage) (interface{}, error) {
	var a imageTileGridOffsetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.TileWidth == 0 {
		a.TileWidth = 512
	}
	if a.TileHeight == 0 {
		a.TileHeight = 512
	}
	offX, offY := 256, 256
	if a.OffsetX != nil {
		offX = *a.OffsetX
	}
	if a.OffsetY != nil {
		offY = *a.OffsetY
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	size := crop.Size{Width: a.TileWidth, Height: a.TileHeight}
	off := crop.Offset{X: offX, Y: offY}

	var tiles []*image.NRGBA
	if a.ApplyOffsetToOrigin {
		tiles, err = crop.TileGridOffsetAligned(img, size, off)
	} else {
		tiles, err = crop.TileGridOffset(img, size, off)
	}
	if err != nil {
		return nil, err
	}
	files, err := writeTiles(tiles, a.OutputDir)
	if err != nil {
		return nil, err
	}
	return &TileGridResult{
		TileWidth:  a.TileWidth,
		TileHeight: a.TileHeight,
		Count:      len(tiles),
		Files:      files,
	}, nil
}

// writeTiles saves tiles as tile_000.png, tile_001.png, ... in dir,
// creating it if needed, and returns the written paths in tile order.
func writeTiles(tiles []*image.NRGBA, dir string) ([]string, error) {
	if dir == "" {
		return nil, fmt.Errorf("output_dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	files := make([]string, 0, len(tiles))
	for i, tile := range tiles {
		path := filepath.Join(dir, fmt.Sprintf("tile_%03d.png", i))
		if err := imaging.SavePNG(tile, path); err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}
