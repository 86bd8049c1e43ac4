package tools

import (
	"context"

	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/The-AI-Workshops/jotform-mcp-server/internal/jotform"
)

// reportTools covers the report endpoints.
func reportTools(client *jotform.Client) []Entry {
	return []Entry{
		{
			Tool: mcp.NewTool("get_report",
				mcp.WithDescription("Get report details: properties of a specific report."),
				mcp.WithString("report_id", mcp.Required(), mcp.Description("Report ID.")),
			),
			Handler: forward("get_report", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				reportID, err := requireStringArg(req, "report_id")
				if err != nil {
					return nil, err
				}
				return client.GetReport(ctx, reportID)
			}),
		},
		{
			Tool: mcp.NewTool("create_report",
				mcp.WithDescription("Create new report of a form."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
				mcp.WithString("report", mcp.Required(), mcp.Description("Report details (list_type, title, etc.) as a JSON object.")),
			),
			Handler: forward("create_report", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				report, err := requireMapArg(req, "report")
				if err != nil {
					return nil, err
				}
				return client.CreateReport(ctx, formID, report)
			}),
		},
		{
			Tool: mcp.NewTool("delete_report",
				mcp.WithDescription("Delete a specific report."),
				mcp.WithString("report_id", mcp.Required(), mcp.Description("Report ID.")),
			),
			Handler: forward("delete_report", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				reportID, err := requireStringArg(req, "report_id")
				if err != nil {
					return nil, err
				}
				return client.DeleteReport(ctx, reportID)
			}),
		},
	}
}
