package tools

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/The-AI-Workshops/jotform-mcp-server/internal/jotform"
	"github.com/The-AI-Workshops/jotform-mcp-server/search"
)

func callRequest(args map[string]any) *mcp.CallToolRequest {
	req := &mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{
			name: "map is pretty printed",
			in:   map[string]any{"id": "1"},
			want: "{\n  \"id\": \"1\"\n}",
		},
		{
			name: "list is pretty printed",
			in:   []any{"a", "b"},
			want: "[\n  \"a\",\n  \"b\"\n]",
		},
		{
			name: "JSON string collapses to its value",
			in:   `{"nested": true}`,
			want: "{\n  \"nested\": true\n}",
		},
		{
			name: "plain string is wrapped",
			in:   "deleted",
			want: "{\n  \"data\": \"deleted\"\n}",
		},
		{
			name: "nil is wrapped",
			in:   nil,
			want: "{\n  \"data\": null\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize(tt.in))
		})
	}
}

func TestForward_WrapsCollaboratorError(t *testing.T) {
	handler := forward("get_user", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
		return nil, errors.New("API returned 401: Invalid API key")
	})

	result, err := handler(context.Background(), callRequest(nil))
	require.NoError(t, err, "handler errors stay in-band")

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.Equal(t, "Jotform API Error: API returned 401: Invalid API key", payload["error"])
}

func TestForward_ArgumentErrorIsNotAPIError(t *testing.T) {
	handler := forward("get_form", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
		_, err := requireStringArg(req, "form_id")
		return nil, err
	})

	result, err := handler(context.Background(), callRequest(nil))
	require.NoError(t, err)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.Equal(t, "missing required parameter: form_id", payload["error"])
	assert.NotContains(t, payload["error"], "Jotform API Error")
}

func TestForward_NormalizesSuccess(t *testing.T) {
	handler := forward("get_form", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
		return map[string]any{"id": "42"}, nil
	})

	result, err := handler(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "42"}`, resultText(t, result))
}

func TestArgumentHelpers(t *testing.T) {
	req := callRequest(map[string]any{
		"name":    "value",
		"count":   float64(7),
		"object":  `{"k": "v"}`,
		"array":   `[1, 2]`,
		"ids":     "f1, f2 ,,f3",
		"invalid": `{not json`,
	})

	assert.Equal(t, "value", stringArg(req, "name"))
	assert.Empty(t, stringArg(req, "absent"))

	assert.Equal(t, 7, intArg(req, "count", 0))
	assert.Equal(t, 99, intArg(req, "absent", 99))

	obj, err := requireMapArg(req, "object")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": "v"}, obj)

	_, err = requireMapArg(req, "invalid")
	var argErr *argError
	assert.ErrorAs(t, err, &argErr)

	_, err = requireMapArg(req, "absent")
	assert.ErrorAs(t, err, &argErr)

	arr, err := requireJSONArrayArg(req, "array")
	require.NoError(t, err)
	assert.Equal(t, `[1, 2]`, arr)

	_, err = requireJSONArrayArg(req, "object")
	assert.ErrorAs(t, err, &argErr, "a JSON object is not an array")

	assert.Equal(t, []string{"f1", "f2", "f3"}, csvArg(req, "ids"))
	assert.Nil(t, csvArg(req, "absent"))

	absent, err := mapArg(req, "absent")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestAll_UniqueToolNames(t *testing.T) {
	client := jotform.NewClient(jotform.ClientConfig{APIKey: "k"})
	searcher := search.New(client)

	entries := All(client, searcher)
	require.NotEmpty(t, entries)

	seen := map[string]bool{}
	for _, e := range entries {
		require.NotNil(t, e.Tool)
		require.NotNil(t, e.Handler)
		assert.False(t, seen[e.Tool.Name], "duplicate tool name %s", e.Tool.Name)
		seen[e.Tool.Name] = true
	}
	assert.True(t, seen["search_submissions_by_date"])
	assert.True(t, seen["get_form_submissions"])
	assert.True(t, seen["get_user"])
}

// End-to-end: the search tool against a stubbed JotForm API.
func TestSearchTool(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/form/f1/submissions":
			_, _ = w.Write([]byte(`{"responseCode":200,"message":"success","content":[{"id":"s1","created_at":"2024-02-10 12:00:00"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"responseCode":404,"message":"not found","content":""}`))
		}
	}))
	t.Cleanup(server.Close)

	client := jotform.NewClient(jotform.ClientConfig{APIKey: "k", BaseURL: server.URL})
	searcher := search.New(client, search.WithNowFunc(func() time.Time {
		return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	}))

	entries := searchTools(searcher)
	require.Len(t, entries, 1)

	result, err := entries[0].Handler(context.Background(), callRequest(map[string]any{
		"form_ids": "f1",
		"period":   "last_month",
	}))
	require.NoError(t, err)

	var payload struct {
		Submissions []map[string]any `json:"submissions"`
		Details     *struct {
			DateFilterUsed map[string]string `json:"date_filter_used"`
		} `json:"search_details"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	require.Len(t, payload.Submissions, 1)
	assert.Equal(t, "s1", payload.Submissions[0]["id"])
	assert.Equal(t, "f1", payload.Submissions[0]["retrieved_from_form_id"])
	require.NotNil(t, payload.Details)
	assert.Equal(t, "2024-02-01 00:00:00", payload.Details.DateFilterUsed["created_at:gt"])
}

func TestSearchTool_ValidationError(t *testing.T) {
	client := jotform.NewClient(jotform.ClientConfig{APIKey: "k"})
	searcher := search.New(client)

	entries := searchTools(searcher)
	require.Len(t, entries, 1)

	result, err := entries[0].Handler(context.Background(), callRequest(map[string]any{
		"period":     "last_month",
		"start_date": "2024-01-01",
	}))
	require.NoError(t, err, "validation failures stay in-band")

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.Contains(t, payload["error"], "period")
}
