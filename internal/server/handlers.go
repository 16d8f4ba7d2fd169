package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-resizer/internal/imaging"
	"github.com/ironsheep/image-resizer/internal/resample"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_open", "image_resize").
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
		s.logger.Error("tool failed", "tool", params.Name, "error", err)
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
//  2. Looks up the session for handle-based tools
//  3. Calls the matching Resizer operation
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Inspection
	case "image_info":
		return s.handleImageInfo(args)
	case "image_formats":
		return s.handleImageFormats(args)

	// Sessions
	case "image_open":
		return s.handleImageOpen(args)
	case "image_resize":
		return s.handleImageResize(args)
	case "image_background":
		return s.handleImageBackground(args)
	case "image_save":
		return s.handleImageSave(args)
	case "image_close":
		return s.handleImageClose(args)

	// One-shot
	case "image_resize_file":
		return s.handleImageResizeFile(args)

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

// === Inspection Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.Stat(a.Path)
}

type formatsResult struct {
	Formats    []imaging.FormatInfo `json:"formats"`
	Modes      []string             `json:"modes"`
	Resamplers []string             `json:"resamplers"`
}

func (s *Server) handleImageFormats(json.RawMessage) (interface{}, error) {
	return &formatsResult{
		Formats:    imaging.Formats(s.options...),
		Modes:      imaging.ModeNames(),
		Resamplers: resample.Names(),
	}, nil
}

// === Session Handlers ===

type sessionResult struct {
	Handle       string         `json:"handle"`
	Path         string         `json:"path,omitempty"`
	SourceWidth  int            `json:"source_width"`
	SourceHeight int            `json:"source_height"`
	SourceFormat imaging.Format `json:"source_format"`
	Width        int            `json:"width,omitempty"`
	Height       int            `json:"height,omitempty"`
}

func newSessionResult(handle, path string, r *imaging.Resizer) *sessionResult {
	w, h := r.Dimensions()
	return &sessionResult{
		Handle:       handle,
		Path:         path,
		SourceWidth:  r.SourceWidth(),
		SourceHeight: r.SourceHeight(),
		SourceFormat: r.SourceFormat(),
		Width:        w,
		Height:       h,
	}
}

func (s *Server) handleImageOpen(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	handle, r, err := s.sessions.Open(a.Path, s.options...)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("opened session", "handle", handle, "path", a.Path)
	return newSessionResult(handle, a.Path, r), nil
}

type resizeArgs struct {
	Mode   string `json:"mode"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type imageResizeArgs struct {
	Handle string `json:"handle"`
	resizeArgs
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	mode, err := imaging.ParseMode(a.Mode)
	if err != nil {
		return nil, err
	}

	var result *sessionResult
	err = s.sessions.With(a.Handle, func(path string, r *imaging.Resizer) error {
		if err := r.Apply(mode, a.Width, a.Height); err != nil {
			return err
		}
		result = newSessionResult(a.Handle, path, r)
		return nil
	})
	return result, err
}

type imageBackgroundArgs struct {
	Handle string `json:"handle"`
	Color  string `json:"color"`
}

func (s *Server) handleImageBackground(args json.RawMessage) (interface{}, error) {
	var a imageBackgroundArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var result *sessionResult
	err := s.sessions.With(a.Handle, func(path string, r *imaging.Resizer) error {
		if err := r.AddBackgroundColor(a.Color); err != nil {
			return err
		}
		result = newSessionResult(a.Handle, path, r)
		return nil
	})
	return result, err
}

type saveArgs struct {
	Output     string `json:"output"`
	Format     string `json:"format"`
	Quality    *int   `json:"quality"`
	Background string `json:"background"`
}

// options converts the optional save arguments. The returned format is the
// one the file will be written in.
func (a saveArgs) options(r *imaging.Resizer) ([]imaging.SaveOption, imaging.Format, error) {
	if a.Output == "" {
		return nil, 0, fmt.Errorf("output name is required")
	}

	format := r.SourceFormat()
	var opts []imaging.SaveOption
	if a.Format != "" {
		f, err := imaging.ParseFormat(a.Format)
		if err != nil {
			return nil, 0, err
		}
		format = f
		opts = append(opts, imaging.WithFormat(f))
	}
	if a.Quality != nil {
		opts = append(opts, imaging.WithQuality(*a.Quality))
	}
	if a.Background != "" {
		opts = append(opts, imaging.WithBackground(a.Background))
	}
	return opts, format, nil
}

type saveResult struct {
	File   string         `json:"file"`
	Format imaging.Format `json:"format"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
}

// save writes the Resizer's buffer. Width and height are read before Save
// releases the buffer.
func save(r *imaging.Resizer, a saveArgs) (*saveResult, error) {
	opts, format, err := a.options(r)
	if err != nil {
		return nil, err
	}
	w, h := r.Dimensions()
	if w == 0 {
		w, h = r.SourceWidth(), r.SourceHeight()
	}
	file, err := r.Save(a.Output, opts...)
	if err != nil {
		return nil, err
	}
	return &saveResult{File: file, Format: format, Width: w, Height: h}, nil
}

type imageSaveArgs struct {
	Handle string `json:"handle"`
	saveArgs
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a imageSaveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var result *saveResult
	err := s.sessions.With(a.Handle, func(_ string, r *imaging.Resizer) error {
		var err error
		result, err = save(r, a.saveArgs)
		return err
	})
	return result, err
}

type imageCloseArgs struct {
	Handle string `json:"handle"`
}

func (s *Server) handleImageClose(args json.RawMessage) (interface{}, error) {
	var a imageCloseArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.sessions.Close(a.Handle); err != nil {
		return nil, err
	}
	s.logger.Debug("closed session", "handle", a.Handle)
	return map[string]interface{}{"handle": a.Handle, "closed": true}, nil
}

// === One-shot Handler ===

type imageResizeFileArgs struct {
	Path string `json:"path"`
	resizeArgs
	saveArgs
}

func (s *Server) handleImageResizeFile(args json.RawMessage) (interface{}, error) {
	var a imageResizeFileArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	mode, err := imaging.ParseMode(a.Mode)
	if err != nil {
		return nil, err
	}

	r, err := imaging.Open(a.Path, s.options...)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if err := r.Apply(mode, a.Width, a.Height); err != nil {
		return nil, err
	}
	return save(r, a.saveArgs)
}
