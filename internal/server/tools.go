package server

import "github.com/ironsheep/blurhash-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var hashProperty = map[string]interface{}{
	"type":        "string",
	"description": "Blurhash string",
}

var punchProperty = map[string]interface{}{
	"type":        "number",
	"description": "Contrast multiplier for the AC components. Values above 1 exaggerate detail. Must be greater than 0.",
	"default":     1,
}

func componentProperty(axis string, def int) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Number of basis functions along " + axis + " (1-9). More components keep more detail but make a longer hash.",
		"minimum":     1,
		"maximum":     9,
		"default":     def,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and a component grid that suits its aspect ratio.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "blurhash_encode",
			Description: "Compute the blurhash of an image file, or of a region of it. Returns the hash, its component grid and the average color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":         pathProperty,
					"x_components": componentProperty("x", defaultXComponents),
					"y_components": componentProperty("y", defaultYComponents),
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Encode only this rectangle. (x1,y1) is inclusive, (x2,y2) exclusive.",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x1", "y1", "x2", "y2"},
					},
					"quadrant": map[string]interface{}{
						"type":        "string",
						"description": "Encode only a named part of the image. Cannot be combined with region.",
						"enum":        imaging.QuadrantNames,
					},
					"max_dimension": map[string]interface{}{
						"type":        "integer",
						"description": "Downscale so neither side exceeds this before encoding. 0 encodes at full size. Defaults to the server setting.",
						"minimum":     0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "blurhash_decode",
			Description: "Render a blurhash as a base64-encoded PNG or lossless WebP placeholder.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hash": hashProperty,
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Width in pixels at which the hash is evaluated",
						"default":     defaultRenderSize,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Height in pixels at which the hash is evaluated",
						"default":     defaultRenderSize,
					},
					"punch": punchProperty,
					"scale": map[string]interface{}{
						"type":        "integer",
						"description": "Integer upscale factor applied after evaluation. Placeholders are smooth, so a small size with a large scale looks the same as a large size and is much faster.",
						"default":     1,
					},
					"format": map[string]interface{}{
						"type":        "string",
						"description": "Output image format",
						"enum":        []string{imaging.FormatPNG, imaging.FormatWebP},
						"default":     imaging.FormatPNG,
					},
				},
				"required": []string{"hash"},
			},
		},
		{
			Name:        "blurhash_inspect",
			Description: "Decode a blurhash and report its component grid, maximum AC value, average color and every factor.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hash":  hashProperty,
					"punch": punchProperty,
				},
				"required": []string{"hash"},
			},
		},
		{
			Name:        "blurhash_validate",
			Description: "Check whether a string is a well-formed blurhash. Invalid hashes are reported in the result, not as a tool error.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hash": hashProperty,
				},
				"required": []string{"hash"},
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
