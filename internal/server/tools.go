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
		// Compositing
		{
			Name: "image_composite_fit",
			Description: "Scale a content image to the largest size that fits a rectangular region of a canvas " +
				"(preserving aspect ratio), place it according to alignment and padding, composite it onto the canvas " +
				"using alpha transparency, optionally paste a full-canvas overlay on top, and return the result as " +
				"base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"canvas_path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the base canvas image. Omit to use a blank canvas (canvas_width/canvas_height).",
					},
					"canvas_width": map[string]interface{}{
						"type":        "integer",
						"description": "Blank canvas width in pixels, used when canvas_path is omitted",
					},
					"canvas_height": map[string]interface{}{
						"type":        "integer",
						"description": "Blank canvas height in pixels, used when canvas_path is omitted",
					},
					"canvas_color": map[string]interface{}{
						"type":        "string",
						"description": "Blank canvas fill color as #RRGGBB. Default #FFFFFF",
					},
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Region left edge X coordinate (inclusive, 0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Region top edge Y coordinate (inclusive, 0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Region right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Region bottom edge Y coordinate (exclusive)",
					},
					"content_path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the content image to place inside the region",
					},
					"align": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"left", "center", "right"},
						"description": "Horizontal alignment within the region. Default center",
					},
					"valign": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"top", "middle", "bottom"},
						"description": "Vertical alignment within the region. Default middle",
					},
					"padding": map[string]interface{}{
						"type":        "integer",
						"description": "Uniform inset in pixels applied to all four region sides. Default 0",
					},
					"allow_upscale": map[string]interface{}{
						"type":        "boolean",
						"description": "Permit scaling the content beyond its native size. Default false",
					},
					"keep_alpha": map[string]interface{}{
						"type":        "boolean",
						"description": "Use the content's alpha channel as the paste mask. Default true",
					},
					"overlay_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional overlay image pasted over the full canvas after the content. A missing file is skipped with a warning.",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also write the composited PNG to disk",
					},
				},
				"required": []string{"x1", "y1", "x2", "y2", "content_path"},
			},
		},
		{
			Name:        "canvas_create",
			Description: "Create a blank solid-color canvas and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Canvas width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Canvas height in pixels",
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Fill color as #RRGGBB. Default #FFFFFF",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also write the canvas PNG to disk",
					},
				},
				"required": []string{"width", "height"},
			},
		},

		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, alpha presence and file size.",
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

		// Result Verification
		{
			Name:        "image_sample_color",
			Description: "Get the color at a pixel coordinate as hex and RGBA components. Useful for verifying composite output.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
	}
}
