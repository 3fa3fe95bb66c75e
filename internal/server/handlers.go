package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/blurhash-mcp/internal/base83"
	"github.com/ironsheep/blurhash-mcp/internal/blurhash"
	"github.com/ironsheep/blurhash-mcp/internal/imaging"
)

// Defaults for optional tool arguments.
const (
	defaultXComponents = 4
	defaultYComponents = 3
	defaultRenderSize  = 32
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "blurhash_encode").
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
//  4. Calls the appropriate imaging/blurhash function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "blurhash_encode":
		return s.handleBlurhashEncode(args)
	case "blurhash_decode":
		return s.handleBlurhashDecode(args)
	case "blurhash_inspect":
		return s.handleBlurhashInspect(args)
	case "blurhash_validate":
		return s.handleBlurhashValidate(args)
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

type blurhashEncodeArgs struct {
	Path         string          `json:"path"`
	XComponents  int             `json:"x_components"`
	YComponents  int             `json:"y_components"`
	Region       *imaging.Region `json:"region"`
	Quadrant     string          `json:"quadrant"`
	MaxDimension *int            `json:"max_dimension"`
}

func (s *Server) handleBlurhashEncode(args json.RawMessage) (interface{}, error) {
	var a blurhashEncodeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.XComponents == 0 {
		a.XComponents = defaultXComponents
	}
	if a.YComponents == 0 {
		a.YComponents = defaultYComponents
	}
	if a.Region != nil && a.Quadrant != "" {
		return nil, errors.New("region and quadrant are mutually exclusive")
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := imaging.EncodeOptions{
		XComponents:  a.XComponents,
		YComponents:  a.YComponents,
		Region:       a.Region,
		MaxDimension: s.cfg.MaxDimension,
		Workers:      s.cfg.Workers,
	}
	if a.MaxDimension != nil {
		if *a.MaxDimension < 0 {
			return nil, fmt.Errorf("max_dimension must not be negative, got %d", *a.MaxDimension)
		}
		opts.MaxDimension = *a.MaxDimension
	}
	if a.Quadrant != "" {
		b := img.Bounds()
		region, err := imaging.NamedRegion(b.Dx(), b.Dy(), a.Quadrant)
		if err != nil {
			return nil, err
		}
		opts.Region = &region
	}

	return imaging.EncodeImage(img, opts)
}

type blurhashDecodeArgs struct {
	Hash   string   `json:"hash"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Punch  *float32 `json:"punch"`
	Scale  int      `json:"scale"`
	Format string   `json:"format"`
}

type blurhashDecodeResult struct {
	XComponents int `json:"x_components"`
	YComponents int `json:"y_components"`
	*imaging.RenderResult
}

func (s *Server) handleBlurhashDecode(args json.RawMessage) (interface{}, error) {
	var a blurhashDecodeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = defaultRenderSize
	}
	if a.Height == 0 {
		a.Height = defaultRenderSize
	}

	r, err := blurhash.Decode(a.Hash, punchOrDefault(a.Punch))
	if err != nil {
		return nil, err
	}

	rendered, err := imaging.RenderEncoded(r, a.Width, a.Height, a.Scale, a.Format)
	if err != nil {
		return nil, err
	}

	return &blurhashDecodeResult{
		XComponents:  r.XComponents(),
		YComponents:  r.YComponents(),
		RenderResult: rendered,
	}, nil
}

type blurhashInspectArgs struct {
	Hash  string   `json:"hash"`
	Punch *float32 `json:"punch"`
}

// ComponentInfo is one factor of a decoded blurhash.
type ComponentInfo struct {
	X      int        `json:"x"`
	Y      int        `json:"y"`
	Factor [3]float32 `json:"factor"`
}

// InspectResult describes the contents of a blurhash.
type InspectResult struct {
	XComponents  int                 `json:"x_components"`
	YComponents  int                 `json:"y_components"`
	Length       int                 `json:"length"`
	MaxACDigit   uint32              `json:"max_ac_digit"`
	ACMax        float32             `json:"ac_max"`
	AverageColor imaging.ColorResult `json:"average_color"`
	Components   []ComponentInfo     `json:"components"`
}

func (s *Server) handleBlurhashInspect(args json.RawMessage) (interface{}, error) {
	var a blurhashInspectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	r, err := blurhash.Decode(a.Hash, punchOrDefault(a.Punch))
	if err != nil {
		return nil, err
	}

	xc, yc := r.Dim()
	components := make([]ComponentInfo, 0, xc*yc)
	for cy := 0; cy < yc; cy++ {
		for cx := 0; cx < xc; cx++ {
			components = append(components, ComponentInfo{X: cx, Y: cy, Factor: [3]float32(r.At(cx, cy))})
		}
	}

	return &InspectResult{
		XComponents:  xc,
		YComponents:  yc,
		Length:       len(a.Hash),
		MaxACDigit:   base83.DecodeASCII(a.Hash[1:2]),
		ACMax:        r.ACMax(),
		AverageColor: imaging.ColorFromLinear(blurhash.LinearColor(r.DC())),
		Components:   components,
	}, nil
}

type blurhashValidateArgs struct {
	Hash string `json:"hash"`
}

// ValidateResult reports whether a string is a well-formed blurhash.
//
// For invalid hashes Reason names the failing check: "invalid_length",
// "unsupported_mode" or "bad_format". Field and Offset locate a bad_format
// failure inside the hash.
type ValidateResult struct {
	Valid          bool   `json:"valid"`
	Reason         string `json:"reason,omitempty"`
	Error          string `json:"error,omitempty"`
	Field          string `json:"field,omitempty"`
	Offset         *int   `json:"offset,omitempty"`
	XComponents    int    `json:"x_components,omitempty"`
	YComponents    int    `json:"y_components,omitempty"`
	Length         int    `json:"length"`
	ExpectedLength int    `json:"expected_length,omitempty"`
}

func (s *Server) handleBlurhashValidate(args json.RawMessage) (interface{}, error) {
	var a blurhashValidateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return validateHash(a.Hash), nil
}

func validateHash(hash string) *ValidateResult {
	result := &ValidateResult{Length: len(hash)}

	if x, y, err := blurhash.Components(hash); err == nil {
		result.XComponents = x
		result.YComponents = y
		result.ExpectedLength = blurhash.EncodedLen(x, y)
	}

	_, err := blurhash.Decode(hash, 1)
	if err == nil {
		result.Valid = true
		return result
	}

	result.Error = err.Error()

	var fe *blurhash.FormatError
	switch {
	case errors.As(err, &fe):
		result.Reason = "bad_format"
		result.Field = fe.Field
		result.Offset = &fe.Offset
	case errors.Is(err, blurhash.ErrUnsupportedMode):
		result.Reason = "unsupported_mode"
	case errors.Is(err, blurhash.ErrInvalidLength):
		result.Reason = "invalid_length"
	}
	return result
}

func punchOrDefault(p *float32) float32 {
	if p == nil {
		return 1
	}
	return *p
}
