// Package tools defines the MCP tool surface of the server. Every JotForm
// client method is exposed as one tool whose handler forwards the call and
// normalizes the outcome to a pretty-printed JSON string; failures become a
// structured {"error": ...} payload instead of a protocol-level fault.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/The-AI-Workshops/jotform-mcp-server/internal/jotform"
	"github.com/The-AI-Workshops/jotform-mcp-server/log"
	"github.com/The-AI-Workshops/jotform-mcp-server/search"
)

type handlerFunc = func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Entry pairs a tool definition with its handler, ready to be registered on
// either the stdio or the HTTP MCP server.
type Entry struct {
	Tool    *mcp.Tool
	Handler handlerFunc
}

// All returns every tool the server exposes.
func All(client *jotform.Client, searcher *search.Searcher) []Entry {
	var entries []Entry
	entries = append(entries, userTools(client)...)
	entries = append(entries, formTools(client)...)
	entries = append(entries, submissionTools(client)...)
	entries = append(entries, folderTools(client)...)
	entries = append(entries, reportTools(client)...)
	entries = append(entries, searchTools(searcher)...)
	return entries
}

// argError reports a bad or missing tool argument. It is distinguished from
// collaborator failures so the response does not claim the API was at fault.
type argError struct {
	msg string
}

func (e *argError) Error() string { return e.msg }

func argErrorf(format string, args ...any) error {
	return &argError{msg: fmt.Sprintf(format, args...)}
}

// forward adapts a client call into a tool handler. Whatever the call
// produces, the caller receives a well-formed JSON string: results are
// normalized via normalize, collaborator errors are logged and converted to
// {"error": "Jotform API Error: ..."}; nothing escapes as a handler error.
func forward(name string, call func(ctx context.Context, req *mcp.CallToolRequest) (any, error)) handlerFunc {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := call(ctx, req)
		if err != nil {
			var argErr *argError
			if errors.As(err, &argErr) {
				return mcp.NewTextResult(errorJSON(argErr.msg)), nil
			}
			log.Errorf("error during JotForm API request for tool %s: %v", name, err)
			return mcp.NewTextResult(errorJSON(fmt.Sprintf("Jotform API Error: %v", err))), nil
		}
		return mcp.NewTextResult(normalize(result)), nil
	}
}

// normalize renders a collaborator result as pretty-printed JSON. Maps and
// sequences are re-serialized as-is; strings that themselves parse as JSON
// are collapsed to the parsed value; any other string is wrapped as
// {"data": <string>}; a nil result becomes {"data": null}.
func normalize(result any) string {
	switch v := result.(type) {
	case nil:
		return marshalIndent(map[string]any{"data": nil})
	case string:
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err == nil {
			return marshalIndent(parsed)
		}
		return marshalIndent(map[string]any{"data": v})
	default:
		return marshalIndent(v)
	}
}

func marshalIndent(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorJSON(fmt.Sprintf("failed to encode result: %v", err))
	}
	return string(data)
}

func errorJSON(msg string) string {
	data, _ := json.MarshalIndent(map[string]string{"error": msg}, "", "  ")
	return string(data)
}

// --- argument helpers ---

func stringArg(req *mcp.CallToolRequest, name string) string {
	value, _ := req.Params.Arguments[name].(string)
	return value
}

func requireStringArg(req *mcp.CallToolRequest, name string) (string, error) {
	value := stringArg(req, name)
	if value == "" {
		return "", argErrorf("missing required parameter: %s", name)
	}
	return value, nil
}

// intArg reads a numeric argument; JSON numbers arrive as float64.
func intArg(req *mcp.CallToolRequest, name string, def int) int {
	switch v := req.Params.Arguments[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

// mapArg parses an argument holding a JSON object string, e.g. a filter or
// a submission payload. An absent argument yields a nil map.
func mapArg(req *mcp.CallToolRequest, name string) (map[string]any, error) {
	value := stringArg(req, name)
	if value == "" {
		return nil, nil
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(value), &parsed); err != nil {
		return nil, argErrorf("parameter %s must be a JSON object: %v", name, err)
	}
	return parsed, nil
}

func requireMapArg(req *mcp.CallToolRequest, name string) (map[string]any, error) {
	parsed, err := mapArg(req, name)
	if err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, argErrorf("missing required parameter: %s", name)
	}
	return parsed, nil
}

// requireJSONArrayArg validates an argument holding a JSON array and returns
// it verbatim for use as a PUT body.
func requireJSONArrayArg(req *mcp.CallToolRequest, name string) (string, error) {
	value := stringArg(req, name)
	if value == "" {
		return "", argErrorf("missing required parameter: %s", name)
	}
	var parsed []any
	if err := json.Unmarshal([]byte(value), &parsed); err != nil {
		return "", argErrorf("parameter %s must be a JSON array: %v", name, err)
	}
	return value, nil
}

// requireJSONObjectArg validates an argument holding a JSON object and
// returns it verbatim for use as a PUT body.
func requireJSONObjectArg(req *mcp.CallToolRequest, name string) (string, error) {
	value := stringArg(req, name)
	if value == "" {
		return "", argErrorf("missing required parameter: %s", name)
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(value), &parsed); err != nil {
		return "", argErrorf("parameter %s must be a JSON object: %v", name, err)
	}
	return value, nil
}

// csvArg splits a comma-separated argument into trimmed, non-empty items.
func csvArg(req *mcp.CallToolRequest, name string) []string {
	value := stringArg(req, name)
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
