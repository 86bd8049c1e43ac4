package tools

import (
	"context"

	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/The-AI-Workshops/jotform-mcp-server/internal/jotform"
)

// submissionTools covers the single-submission endpoints.
func submissionTools(client *jotform.Client) []Entry {
	return []Entry{
		{
			Tool: mcp.NewTool("get_submission",
				mcp.WithDescription("Get submission data: information and answers of a specific submission."),
				mcp.WithString("sid", mcp.Required(), mcp.Description("Submission ID.")),
			),
			Handler: forward("get_submission", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				sid, err := requireStringArg(req, "sid")
				if err != nil {
					return nil, err
				}
				return client.GetSubmission(ctx, sid)
			}),
		},
		{
			Tool: mcp.NewTool("delete_submission",
				mcp.WithDescription("Delete a single submission."),
				mcp.WithString("sid", mcp.Required(), mcp.Description("Submission ID.")),
			),
			Handler: forward("delete_submission", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				sid, err := requireStringArg(req, "sid")
				if err != nil {
					return nil, err
				}
				return client.DeleteSubmission(ctx, sid)
			}),
		},
		{
			Tool: mcp.NewTool("edit_submission",
				mcp.WithDescription("Edit a single submission."),
				mcp.WithString("sid", mcp.Required(), mcp.Description("Submission ID.")),
				mcp.WithString("submission", mcp.Required(), mcp.Description("New submission data as a JSON object keyed by question ID.")),
			),
			Handler: forward("edit_submission", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				sid, err := requireStringArg(req, "sid")
				if err != nil {
					return nil, err
				}
				submission, err := requireMapArg(req, "submission")
				if err != nil {
					return nil, err
				}
				return client.EditSubmission(ctx, sid, submission)
			}),
		},
	}
}
