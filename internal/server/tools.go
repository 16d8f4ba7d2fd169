package server

import "github.com/ironsheep/image-resizer/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to a JPEG, GIF or PNG file",
	}
}

func handleProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Handle returned by image_open",
	}
}

// resizeProperties describes mode, width and height.
func resizeProperties() map[string]interface{} {
	return map[string]interface{}{
		"mode": map[string]interface{}{
			"type": "string",
			"enum": imaging.ModeNames(),
			"description": "within: fit inside width x height keeping the aspect ratio. " +
				"width/height: set one side exactly, the other follows the aspect ratio. " +
				"fill: cover width x height and center-crop to exactly that size. " +
				"none: keep the original size",
		},
		"width": map[string]interface{}{
			"type":        "integer",
			"description": "Target width in pixels (ignored by mode height and none)",
		},
		"height": map[string]interface{}{
			"type":        "integer",
			"description": "Target height in pixels (ignored by mode width and none)",
		},
	}
}

// saveProperties describes output, format, quality and background.
func saveProperties() map[string]interface{} {
	return map[string]interface{}{
		"output": map[string]interface{}{
			"type":        "string",
			"description": "Output path without extension; the format's extension is appended",
		},
		"format": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"jpeg", "gif", "png"},
			"description": "Output format. Default: the source format",
		},
		"quality": map[string]interface{}{
			"type":        "integer",
			"description": "JPEG quality 0-100 or PNG compression 0-9, clamped. Ignored for GIF",
		},
		"background": map[string]interface{}{
			"type":        "string",
			"description": "Six hex digits without '#', e.g. FFFFFF. Transparent pixels become this color",
		},
	}
}

func merge(maps ...map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Inspection
		{
			Name:        "image_info",
			Description: "Read an image's width, height, format and alpha support without decoding its pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_formats",
			Description: "List output formats with codec availability and default quality, plus the resize modes and resamplers.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Sessions
		{
			Name:        "image_open",
			Description: "Decode an image and keep it open under a handle for image_resize, image_background and image_save.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_resize",
			Description: "Resize an open image from its original pixels. Replaces any earlier resize of the same handle.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": merge(map[string]interface{}{"handle": handleProperty()}, resizeProperties()),
				"required":   []string{"handle", "mode"},
			},
		},
		{
			Name:        "image_background",
			Description: "Flatten transparency of the current resize onto a solid color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"handle": handleProperty(),
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Six hex digits without '#', e.g. FF0000",
					},
				},
				"required": []string{"handle", "color"},
			},
		},
		{
			Name:        "image_save",
			Description: "Write the current resize (or an unscaled copy) to output plus extension. The image stays open for further resizes.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": merge(map[string]interface{}{"handle": handleProperty()}, saveProperties()),
				"required":   []string{"handle", "output"},
			},
		},
		{
			Name:        "image_close",
			Description: "Release an open image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"handle": handleProperty(),
				},
				"required": []string{"handle"},
			},
		},

		// One-shot
		{
			Name:        "image_resize_file",
			Description: "Open, resize and save in one call.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": merge(map[string]interface{}{"path": pathProperty()}, resizeProperties(), saveProperties()),
				"required":   []string{"path", "mode", "output"},
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
