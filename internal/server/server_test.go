package server

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	s := New(DefaultConfig())
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
}

func TestNew_ClampsWorkers(t *testing.T) {
	s := New(Config{Workers: 0})
	if s.cfg.Workers != 1 {
		t.Errorf("Workers: got %d, want 1", s.cfg.Workers)
	}
}

func TestServe(t *testing.T) {
	s := New(DefaultConfig())

	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"blurhash_validate","arguments":{"hash":"LlMF%n00%#MwS|WCWEM{R*bbWBbH"}}}`,
	}, "\n")

	var out bytes.Buffer
	if err := s.Serve(strings.NewReader(in), &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	dec := json.NewDecoder(&out)
	var ids []float64
	for dec.More() {
		var resp MCPResponse
		if err := dec.Decode(&resp); err != nil {
			t.Fatalf("bad response line: %v", err)
		}
		if resp.Error != nil {
			t.Errorf("response %v: unexpected error %v", resp.ID, resp.Error)
		}
		ids = append(ids, resp.ID.(float64))
	}

	if want := []float64{1, 2, 3}; !slices.Equal(ids, want) {
		t.Errorf("response ids: got %v, want %v", ids, want)
	}
}

func TestHandleRequest_Dispatch(t *testing.T) {
	s := New(DefaultConfig())

	tests := []struct {
		method   string
		id       interface{}
		wantNil  bool
		wantCode int
	}{
		{"initialize", "init-1", false, 0},
		{"ping", float64(7), false, 0},
		{"tools/list", 1, false, 0},
		{"notifications/initialized", nil, true, 0},
		{"resources/list", 2, false, -32601},
		{"blurhash_encode", 3, false, -32601},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: tt.id, Method: tt.method})

			if tt.wantNil {
				if resp != nil {
					t.Errorf("%s should not be answered, got %+v", tt.method, resp)
				}
				return
			}
			if resp == nil {
				t.Fatal("handleRequest returned nil")
			}
			if resp.ID != tt.id {
				t.Errorf("ID: got %v, want %v", resp.ID, tt.id)
			}
			if resp.JSONRPC != "2.0" {
				t.Errorf("JSONRPC: got %s, want 2.0", resp.JSONRPC)
			}
			switch {
			case tt.wantCode == 0 && resp.Error != nil:
				t.Errorf("unexpected error: %+v", resp.Error)
			case tt.wantCode != 0 && (resp.Error == nil || resp.Error.Code != tt.wantCode):
				t.Errorf("error: got %+v, want code %d", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestHandleRequest_ToolsList(t *testing.T) {
	s := New(DefaultConfig())
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	var names []string
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	want := []string{"image_load", "blurhash_encode", "blurhash_decode", "blurhash_inspect", "blurhash_validate"}
	if !slices.Equal(names, want) {
		t.Errorf("tool names: got %v, want %v", names, want)
	}
}

func TestHandleInitialize(t *testing.T) {
	s := New(DefaultConfig())
	resp := s.handleInitialize(&MCPRequest{JSONRPC: "2.0", ID: "init-1"})

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}

	capabilities, _ := result["capabilities"].(map[string]interface{})
	if _, ok := capabilities["tools"]; !ok {
		t.Error("capabilities should advertise tools")
	}

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo should be a map")
	}
	if serverInfo["name"] != "blurhash-mcp" {
		t.Errorf("serverInfo.name: got %v", serverInfo["name"])
	}
}
