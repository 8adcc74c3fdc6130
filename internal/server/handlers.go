package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-compose-mcp/internal/compose"
	"github.com/ironsheep/image-compose-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_composite_fit").
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
//  4. Calls the appropriate compose/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Compositing
	case "image_composite_fit":
		return s.handleImageCompositeFit(args)
	case "canvas_create":
		return s.handleCanvasCreate(args)

	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Result Verification
	case "image_sample_color":
		return s.handleImageSampleColor(args)

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

// === Compositing Handlers ===

type imageCompositeFitArgs struct {
	// Canvas: either a file to decode or a blank solid-color canvas.
	CanvasPath   string `json:"canvas_path"`
	CanvasWidth  int    `json:"canvas_width"`
	CanvasHeight int    `json:"canvas_height"`
	CanvasColor  string `json:"canvas_color"`

	// Target region corners.
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`

	ContentPath string `json:"content_path"`

	Align        string `json:"align"`
	Valign       string `json:"valign"`
	Padding      int    `json:"padding"`
	AllowUpscale bool   `json:"allow_upscale"`
	KeepAlpha    *bool  `json:"keep_alpha"` // defaults to true when omitted
	OverlayPath  string `json:"overlay_path"`

	// OutputPath optionally writes the composited PNG to disk in addition
	// to returning it.
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageCompositeFit(args json.RawMessage) (interface{}, error) {
	var a imageCompositeFitArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	align, err := compose.ParseAlign(a.Align)
	if err != nil {
		return nil, err
	}
	valign, err := compose.ParseVAlign(a.Valign)
	if err != nil {
		return nil, err
	}
	if a.Padding < 0 {
		return nil, fmt.Errorf("padding must not be negative: %d", a.Padding)
	}

	var canvas compose.Source
	switch {
	case a.CanvasPath != "":
		canvas = compose.PathSource(a.CanvasPath)
	case a.CanvasWidth > 0 && a.CanvasHeight > 0:
		color := a.CanvasColor
		if color == "" {
			color = "#FFFFFF"
		}
		blank, err := imaging.NewCanvas(a.CanvasWidth, a.CanvasHeight, color)
		if err != nil {
			return nil, err
		}
		canvas = compose.ImageSource(blank)
	default:
		return nil, fmt.Errorf("either canvas_path or canvas_width/canvas_height is required")
	}

	// The compositing core requires a decoded content image, so the path is
	// resolved here at the tool boundary.
	content, err := s.cache.Load(a.ContentPath)
	if err != nil {
		return nil, err
	}

	opts := &compose.Options{
		Align:        align,
		VAlign:       valign,
		Padding:      a.Padding,
		AllowUpscale: a.AllowUpscale,
		KeepAlpha:    a.KeepAlpha == nil || *a.KeepAlpha,
	}
	if a.OverlayPath != "" {
		overlay := compose.PathSource(a.OverlayPath)
		opts.Overlay = &overlay
	}

	img, err := compose.FitImage(canvas, compose.Rect(a.X1, a.Y1, a.X2, a.Y2), content, opts)
	if err != nil {
		return nil, err
	}

	if a.OutputPath != "" {
		if err := imaging.WritePNG(a.OutputPath, img); err != nil {
			return nil, err
		}
	}

	return imaging.EncodePNGResult(img)
}

type canvasCreateArgs struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Color      string `json:"color"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleCanvasCreate(args json.RawMessage) (interface{}, error) {
	var a canvasCreateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		a.Color = "#FFFFFF"
	}

	canvas, err := imaging.NewCanvas(a.Width, a.Height, a.Color)
	if err != nil {
		return nil, err
	}

	if a.OutputPath != "" {
		if err := imaging.WritePNG(a.OutputPath, canvas); err != nil {
			return nil, err
		}
	}

	return imaging.EncodePNGResult(canvas)
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
	return imaging.LoadImageInfo(a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Result Verification Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}
