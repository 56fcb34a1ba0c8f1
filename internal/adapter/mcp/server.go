package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

const (
	protocolVersion = "2024-11-05"
	serverName      = "construction-estimator"
	serverVersion   = "1.0.0"
)

// Server speaks newline-delimited JSON-RPC 2.0 over a reader/writer pair,
// normally stdin/stdout. Diagnostics go through the standard logger, which
// the entrypoint points at stderr so stdout stays a pure protocol stream.
type Server struct {
	reader *bufio.Reader
	writer io.Writer
	tools  *Toolset
}

func NewServer(r io.Reader, w io.Writer, tools *Toolset) *Server {
	return &Server{
		reader: bufio.NewReader(r),
		writer: w,
		tools:  tools,
	}
}

// Run processes requests line by line until the input stream is exhausted.
// A closed stdin is a normal shutdown, not an error.
func (s *Server) Run(ctx context.Context) error {
	log.Println("listening for requests on stdin")

	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				if resp := s.handleLine(ctx, strings.TrimSpace(line)); resp != nil {
					if werr := s.send(resp); werr != nil {
						return werr
					}
				}
				log.Println("stdin closed, shutting down")
				return nil
			}
			return fmt.Errorf("failed to read request: %w", err)
		}

		resp := s.handleLine(ctx, strings.TrimSpace(line))
		if resp == nil {
			continue
		}
		if err := s.send(resp); err != nil {
			return err
		}
	}
}

// handleLine parses and dispatches one raw input line. Blank lines and
// lines that are not JSON objects are dropped without a response so a
// stray log line on the pipe cannot wedge the session. A panic while
// handling a request is converted into an internal error response.
func (s *Server) handleLine(ctx context.Context, line string) (resp *JSONRPCResponse) {
	if line == "" {
		return nil
	}

	var req JSONRPCRequest
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		log.Printf("ignoring unparsable input line: %v", err)
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic while handling %q: %v", req.Method, r)
			resp = errorResponse(req.ID, CodeInternalError, "Internal error", fmt.Sprintf("%v", r))
		}
	}()

	return s.handleRequest(ctx, &req)
}

// handleRequest dispatches a parsed request. A nil return means the
// message was a notification and must not be answered.
func (s *Server) handleRequest(ctx context.Context, req *JSONRPCRequest) *JSONRPCResponse {
	log.Printf("received request: %s", req.Method)

	switch req.Method {
	case "initialize":
		return resultResponse(req.ID, InitializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities:    Capability{Tools: &ToolCapability{}},
			ServerInfo:      ServerInfo{Name: serverName, Version: serverVersion},
		})

	case "tools/list":
		return resultResponse(req.ID, ToolsListResult{Tools: toolDefinitions()})

	case "tools/call":
		return s.handleToolCall(ctx, req)

	case "prompts/list":
		return resultResponse(req.ID, PromptsListResult{Prompts: []any{}})

	case "resources/list":
		return resultResponse(req.ID, ResourcesListResult{Resources: []any{}})

	case "ping":
		return resultResponse(req.ID, struct{}{})

	case "notifications/initialized", "notifications/cancelled":
		return nil

	default:
		if req.ID == nil {
			return nil
		}
		return errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), nil)
	}
}

func (s *Server) handleToolCall(ctx context.Context, req *JSONRPCRequest) *JSONRPCResponse {
	var params ToolCallParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return errorResponse(req.ID, CodeInvalidParams, "Invalid params", err.Error())
		}
	}

	log.Printf("calling tool: %s", params.Name)

	text, ok := s.tools.Call(ctx, params.Name, params.Arguments)
	if !ok {
		return errorResponse(req.ID, CodeInvalidParams, fmt.Sprintf("Unknown tool: %s", params.Name), nil)
	}

	return resultResponse(req.ID, ToolCallResult{
		Content: []ContentItem{{Type: "text", Text: text}},
	})
}

// send writes one response as a single line on the output stream.
func (s *Server) send(resp *JSONRPCResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	if _, err := fmt.Fprintf(s.writer, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func resultResponse(id any, result any) *JSONRPCResponse {
	return &JSONRPCResponse{JSONRPC: "2.0", ID: id, Result: result}
}

func errorResponse(id any, code int, message string, data any) *JSONRPCResponse {
	return &JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &RPCError{Code: code, Message: message, Data: data},
	}
}
