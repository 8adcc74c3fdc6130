package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"image_composite_fit",
		"canvas_create",
		"image_load",
		"image_dimensions",
		"image_sample_color",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	// Check all expected tools exist
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			// Name should not be empty
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}

			// Description should not be empty
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}

			// InputSchema should exist
			if tool.InputSchema == nil {
				t.Error("Tool InputSchema is nil")
			}

			// InputSchema should be an object type
			schemaType, ok := tool.InputSchema["type"]
			if !ok {
				t.Error("InputSchema missing 'type' field")
			}
			if schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			// InputSchema should have properties
			props, ok := tool.InputSchema["properties"]
			if !ok {
				t.Error("InputSchema missing 'properties' field")
			}
			if props == nil {
				t.Error("InputSchema properties is nil")
			}
		})
	}
}

func TestToolDefinitions_RequiredPath(t *testing.T) {
	// The inspection tools all operate on a single image file
	toolsRequiringPath := []string{
		"image_load",
		"image_dimensions",
		"image_sample_color",
	}

	tools := GetToolDefinitions()
	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range toolsRequiringPath {
		tool, ok := toolMap[name]
		if !ok {
			continue // Skip if tool not found
		}

		t.Run(name, func(t *testing.T) {
			required, ok := tool.InputSchema["required"]
			if !ok {
				t.Error("InputSchema missing 'required' field")
				return
			}

			requiredList, ok := required.([]string)
			if !ok {
				t.Error("'required' should be a string slice")
				return
			}

			hasPath := false
			for _, r := range requiredList {
				if r == "path" {
					hasPath = true
					break
				}
			}

			if !hasPath {
				t.Error("Tool should require 'path' parameter")
			}
		})
	}
}

func TestToolDefinitions_CompositeFitCoordinates(t *testing.T) {
	tools := GetToolDefinitions()

	var fitTool Tool
	for _, tool := range tools {
		if tool.Name == "image_composite_fit" {
			fitTool = tool
			break
		}
	}

	if fitTool.Name == "" {
		t.Fatal("image_composite_fit tool not found")
	}

	required, ok := fitTool.InputSchema["required"].([]string)
	if !ok {
		t.Fatal("required should be a string slice")
	}

	// image_composite_fit requires the region corners and the content image
	expectedRequired := map[string]bool{
		"x1":           true,
		"y1":           true,
		"x2":           true,
		"y2":           true,
		"content_path": true,
	}

	for _, r := range required {
		if expectedRequired[r] {
			delete(expectedRequired, r)
		}
	}

	for missing := range expectedRequired {
		t.Errorf("image_composite_fit should require '%s' parameter", missing)
	}

	// The canvas is chosen per call, so neither canvas form may be required
	for _, r := range required {
		if r == "canvas_path" || r == "canvas_width" || r == "canvas_height" {
			t.Errorf("'%s' should not be required", r)
		}
	}
}

func TestToolDefinitions_AlignmentEnums(t *testing.T) {
	tools := GetToolDefinitions()

	var fitTool Tool
	for _, tool := range tools {
		if tool.Name == "image_composite_fit" {
			fitTool = tool
			break
		}
	}

	if fitTool.Name == "" {
		t.Fatal("image_composite_fit tool not found")
	}

	props, ok := fitTool.InputSchema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("properties should be a map")
	}

	checkEnum := func(param string, expected []string) {
		prop, ok := props[param].(map[string]interface{})
		if !ok {
			t.Fatalf("%s property should exist and be a map", param)
		}
		enum, ok := prop["enum"].([]string)
		if !ok {
			t.Fatalf("%s should have enum", param)
		}

		enumMap := make(map[string]bool)
		for _, e := range enum {
			enumMap[e] = true
		}
		for _, want := range expected {
			if !enumMap[want] {
				t.Errorf("%s: expected value '%s' not in enum", param, want)
			}
		}
		if len(enum) != len(expected) {
			t.Errorf("%s: enum length got %d, want %d", param, len(enum), len(expected))
		}
	}

	checkEnum("align", []string{"left", "center", "right"})
	checkEnum("valign", []string{"top", "middle", "bottom"})
}

func TestToolDefinitions_CanvasCreateRequired(t *testing.T) {
	tools := GetToolDefinitions()

	var tool Tool
	for _, tt := range tools {
		if tt.Name == "canvas_create" {
			tool = tt
			break
		}
	}

	if tool.Name == "" {
		t.Fatal("canvas_create tool not found")
	}

	required, ok := tool.InputSchema["required"].([]string)
	if !ok {
		t.Fatal("required should be a string slice")
	}

	expectedRequired := map[string]bool{
		"width":  true,
		"height": true,
	}

	for _, r := range required {
		if expectedRequired[r] {
			delete(expectedRequired, r)
		} else {
			t.Errorf("'%s' should not be required", r)
		}
	}

	for missing := range expectedRequired {
		t.Errorf("canvas_create should require '%s' parameter", missing)
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	tools, ok := result["tools"]
	if !ok {
		t.Fatal("Result should contain 'tools' key")
	}

	toolsList, ok := tools.([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	// Should match GetToolDefinitions
	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}

func TestToolStruct(t *testing.T) {
	tool := Tool{
		Name:        "test_tool",
		Description: "A test tool",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"param1": map[string]interface{}{
					"type":        "string",
					"description": "A test parameter",
				},
			},
			"required": []string{"param1"},
		},
	}

	if tool.Name != "test_tool" {
		t.Errorf("Name: got %s, want test_tool", tool.Name)
	}
	if tool.Description != "A test tool" {
		t.Errorf("Description: got %s, want 'A test tool'", tool.Description)
	}
	if tool.InputSchema == nil {
		t.Error("InputSchema should not be nil")
	}
}
