package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

// runServer feeds input through a server with no backing use cases and
// returns the emitted response lines. Only protocol-level paths may be
// exercised this way.
func runServer(t *testing.T, tools *Toolset, input string) []string {
	t.Helper()
	var out bytes.Buffer
	srv := NewServer(strings.NewReader(input), &out, tools)
	if err := srv.Run(context.Background()); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	trimmed := strings.TrimSpace(out.String())
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func decodeResponse(t *testing.T, line string) JSONRPCResponse {
	t.Helper()
	var resp struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      any             `json:"id"`
		Result  json.RawMessage `json:"result"`
		Error   *RPCError       `json:"error"`
	}
	if err := json.Unmarshal([]byte(line), &resp); err != nil {
		t.Fatalf("invalid response line %q: %v", line, err)
	}
	return JSONRPCResponse{JSONRPC: resp.JSONRPC, ID: resp.ID, Result: resp.Result, Error: resp.Error}
}

func TestServerInitialize(t *testing.T) {
	lines := runServer(t, NewToolset(nil, nil, nil, ""), `{"jsonrpc":"2.0","id":1,"method":"initialize"}`+"\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 response line, got %d", len(lines))
	}

	resp := decodeResponse(t, lines[0])
	if resp.JSONRPC != "2.0" {
		t.Errorf("expected jsonrpc 2.0, got %q", resp.JSONRPC)
	}
	if id, ok := resp.ID.(float64); !ok || id != 1 {
		t.Errorf("expected id 1, got %v", resp.ID)
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}

	var result InitializeResult
	if err := json.Unmarshal(resp.Result.(json.RawMessage), &result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if result.ProtocolVersion != "2024-11-05" {
		t.Errorf("expected protocol version 2024-11-05, got %q", result.ProtocolVersion)
	}
	if result.ServerInfo.Name != "construction-estimator" {
		t.Errorf("expected server name construction-estimator, got %q", result.ServerInfo.Name)
	}
	if result.Capabilities.Tools == nil {
		t.Error("expected tools capability to be advertised")
	}
}

func TestServerToolsList(t *testing.T) {
	lines := runServer(t, NewToolset(nil, nil, nil, ""), `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`+"\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 response line, got %d", len(lines))
	}

	resp := decodeResponse(t, lines[0])
	var result ToolsListResult
	if err := json.Unmarshal(resp.Result.(json.RawMessage), &result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if len(result.Tools) != 11 {
		t.Fatalf("expected 11 tools, got %d", len(result.Tools))
	}

	byName := map[string]ToolDefinition{}
	for _, tool := range result.Tools {
		byName[tool.Name] = tool
	}
	for _, name := range []string{
		"list_clients", "get_client_details", "list_estimates", "get_estimate_details",
		"create_estimate", "update_estimate", "get_estimate_statistics", "list_invoices",
		"get_client_financial_summary", "get_database_schema", "get_api_routes",
	} {
		if _, ok := byName[name]; !ok {
			t.Errorf("missing tool %q", name)
		}
	}

	create := byName["create_estimate"]
	if len(create.InputSchema.Required) != 4 {
		t.Errorf("expected 4 required fields on create_estimate, got %v", create.InputSchema.Required)
	}
	if _, ok := create.InputSchema.Properties["total_amount"]; !ok {
		t.Error("create_estimate schema missing total_amount")
	}
}

func TestServerPing(t *testing.T) {
	lines := runServer(t, NewToolset(nil, nil, nil, ""), `{"jsonrpc":"2.0","id":"p1","method":"ping"}`+"\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 response line, got %d", len(lines))
	}

	resp := decodeResponse(t, lines[0])
	if resp.ID != "p1" {
		t.Errorf("expected id p1, got %v", resp.ID)
	}
	if string(resp.Result.(json.RawMessage)) != "{}" {
		t.Errorf("expected empty object result, got %s", resp.Result)
	}
}

func TestServerEmptyListStubs(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":1,"method":"prompts/list"}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"resources/list"}` + "\n"
	lines := runServer(t, NewToolset(nil, nil, nil, ""), input)
	if len(lines) != 2 {
		t.Fatalf("expected 2 response lines, got %d", len(lines))
	}
	if got := string(decodeResponse(t, lines[0]).Result.(json.RawMessage)); got != `{"prompts":[]}` {
		t.Errorf("unexpected prompts/list result: %s", got)
	}
	if got := string(decodeResponse(t, lines[1]).Result.(json.RawMessage)); got != `{"resources":[]}` {
		t.Errorf("unexpected resources/list result: %s", got)
	}
}

func TestServerMethodNotFound(t *testing.T) {
	lines := runServer(t, NewToolset(nil, nil, nil, ""), `{"jsonrpc":"2.0","id":7,"method":"bogus/method"}`+"\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 response line, got %d", len(lines))
	}

	resp := decodeResponse(t, lines[0])
	if resp.Error == nil {
		t.Fatal("expected an error response")
	}
	if resp.Error.Code != CodeMethodNotFound {
		t.Errorf("expected code %d, got %d", CodeMethodNotFound, resp.Error.Code)
	}
	if resp.Error.Message != "Method not found: bogus/method" {
		t.Errorf("unexpected message %q", resp.Error.Message)
	}
}

func TestServerSilentInputs(t *testing.T) {
	// Notifications, id-less unknown methods, blank lines, and junk must
	// all be swallowed without a response.
	input := `{"jsonrpc":"2.0","method":"notifications/initialized"}` + "\n" +
		`{"jsonrpc":"2.0","method":"notifications/cancelled"}` + "\n" +
		`{"jsonrpc":"2.0","method":"bogus/method"}` + "\n" +
		"\n" +
		"   \n" +
		"this is not json\n" +
		"null\n"
	lines := runServer(t, NewToolset(nil, nil, nil, ""), input)
	if len(lines) != 0 {
		t.Fatalf("expected no output, got %v", lines)
	}
}

func TestServerUnknownTool(t *testing.T) {
	lines := runServer(t, NewToolset(nil, nil, nil, ""), `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"no_such_tool","arguments":{}}}`+"\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 response line, got %d", len(lines))
	}

	resp := decodeResponse(t, lines[0])
	if resp.Error == nil {
		t.Fatal("expected an error response")
	}
	if resp.Error.Code != CodeInvalidParams {
		t.Errorf("expected code %d, got %d", CodeInvalidParams, resp.Error.Code)
	}
	if resp.Error.Message != "Unknown tool: no_such_tool" {
		t.Errorf("unexpected message %q", resp.Error.Message)
	}
}

func TestServerRecoversFromPanic(t *testing.T) {
	// A nil toolset makes tools/call dereference nil use cases, which the
	// per-line recovery must turn into an internal error response.
	input := `{"jsonrpc":"2.0","id":9,"method":"tools/call","params":{"name":"list_clients"}}` + "\n" +
		`{"jsonrpc":"2.0","id":10,"method":"ping"}` + "\n"
	lines := runServer(t, NewToolset(nil, nil, nil, ""), input)
	if len(lines) != 2 {
		t.Fatalf("expected 2 response lines, got %d", len(lines))
	}

	first := decodeResponse(t, lines[0])
	if first.Error == nil || first.Error.Code != CodeInternalError {
		t.Fatalf("expected internal error, got %+v", first.Error)
	}
	if id, ok := first.ID.(float64); !ok || id != 9 {
		t.Errorf("expected id 9 on error response, got %v", first.ID)
	}

	// The loop keeps serving after a panic.
	second := decodeResponse(t, lines[1])
	if second.Error != nil {
		t.Fatalf("expected ping to succeed after panic, got %+v", second.Error)
	}
}

func TestServerFinalLineWithoutNewline(t *testing.T) {
	lines := runServer(t, NewToolset(nil, nil, nil, ""), `{"jsonrpc":"2.0","id":4,"method":"ping"}`)
	if len(lines) != 1 {
		t.Fatalf("expected 1 response line, got %d", len(lines))
	}
	if resp := decodeResponse(t, lines[0]); resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
}
