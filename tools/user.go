package tools

import (
	"context"

	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/The-AI-Workshops/jotform-mcp-server/internal/jotform"
)

// userTools covers the account-level endpoints: profile, usage, account
// lists, settings, history and session management.
func userTools(client *jotform.Client) []Entry {
	return []Entry{
		{
			Tool: mcp.NewTool("get_user",
				mcp.WithDescription("Get user account details for a JotForm user: account type, avatar URL, name, email, website URL and account limits."),
			),
			Handler: forward("get_user", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				return client.GetUser(ctx)
			}),
		},
		{
			Tool: mcp.NewTool("get_usage",
				mcp.WithDescription("Get number of form submissions received this month, SSL submissions, payment submissions and upload space used."),
			),
			Handler: forward("get_usage", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				return client.GetUsage(ctx)
			}),
		},
		{
			Tool: mcp.NewTool("get_forms",
				mcp.WithDescription("Get a list of forms for this account."),
				mcp.WithNumber("offset", mcp.Description("Start of each result set for form list.")),
				mcp.WithNumber("limit", mcp.Description("Number of results in each result set for form list.")),
				mcp.WithString("filter", mcp.Description(`Filters the query results as a JSON object, e.g. {"status:eq": "ENABLED"}.`)),
				mcp.WithString("order_by", mcp.Description("Order results by a form field name.")),
			),
			Handler: forward("get_forms", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				filter, err := mapArg(req, "filter")
				if err != nil {
					return nil, err
				}
				return client.GetForms(ctx, intArg(req, "offset", 0), intArg(req, "limit", 0), filter, stringArg(req, "order_by"))
			}),
		},
		{
			Tool: mcp.NewTool("get_submissions",
				mcp.WithDescription("Get a list of submissions for this account."),
				mcp.WithNumber("offset", mcp.Description("Start of each result set.")),
				mcp.WithNumber("limit", mcp.Description("Number of results in each result set.")),
				mcp.WithString("filter", mcp.Description("Filters the query results as a JSON object.")),
				mcp.WithString("order_by", mcp.Description("Order results by a field name.")),
			),
			Handler: forward("get_submissions", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				filter, err := mapArg(req, "filter")
				if err != nil {
					return nil, err
				}
				return client.GetSubmissions(ctx, intArg(req, "offset", 0), intArg(req, "limit", 0), filter, stringArg(req, "order_by"))
			}),
		},
		{
			Tool: mcp.NewTool("get_subusers",
				mcp.WithDescription("Get a list of sub users for this account with their forms and access privileges."),
			),
			Handler: forward("get_subusers", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				return client.GetSubusers(ctx)
			}),
		},
		{
			Tool: mcp.NewTool("get_folders",
				mcp.WithDescription("Get a list of form folders for this account."),
			),
			Handler: forward("get_folders", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				return client.GetFolders(ctx)
			}),
		},
		{
			Tool: mcp.NewTool("get_reports",
				mcp.WithDescription("List of URLs for reports in this account (Excel, CSV, etc.)."),
			),
			Handler: forward("get_reports", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				return client.GetReports(ctx)
			}),
		},
		{
			Tool: mcp.NewTool("get_settings",
				mcp.WithDescription("Get user's settings for this account, such as time zone and language."),
			),
			Handler: forward("get_settings", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				return client.GetSettings(ctx)
			}),
		},
		{
			Tool: mcp.NewTool("update_settings",
				mcp.WithDescription("Update user's settings."),
				mcp.WithString("settings", mcp.Required(), mcp.Description("New user setting values as a JSON object keyed by setting name.")),
			),
			Handler: forward("update_settings", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				settings, err := requireMapArg(req, "settings")
				if err != nil {
					return nil, err
				}
				return client.UpdateSettings(ctx, settings)
			}),
		},
		{
			Tool: mcp.NewTool("get_history",
				mcp.WithDescription("Get user activity log."),
				mcp.WithString("action", mcp.Description("Filter results by activity performed. Default is 'all'.")),
				mcp.WithString("date", mcp.Description("Limit results by a date range.")),
				mcp.WithString("sort_by", mcp.Description("Lists results by ascending and descending order.")),
				mcp.WithString("start_date", mcp.Description("Limit results to only after a specific date. Format: MM/DD/YYYY.")),
				mcp.WithString("end_date", mcp.Description("Limit results to only before a specific date. Format: MM/DD/YYYY.")),
			),
			Handler: forward("get_history", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				return client.GetHistory(ctx,
					stringArg(req, "action"),
					stringArg(req, "date"),
					stringArg(req, "sort_by"),
					stringArg(req, "start_date"),
					stringArg(req, "end_date"))
			}),
		},
		{
			Tool: mcp.NewTool("register_user",
				mcp.WithDescription("Register with username, password and email."),
				mcp.WithString("user_details", mcp.Required(), mcp.Description("Username, password and email as a JSON object.")),
			),
			Handler: forward("register_user", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				details, err := requireMapArg(req, "user_details")
				if err != nil {
					return nil, err
				}
				return client.RegisterUser(ctx, details)
			}),
		},
		{
			Tool: mcp.NewTool("login_user",
				mcp.WithDescription("Login user with given credentials."),
				mcp.WithString("credentials", mcp.Required(), mcp.Description("Username, password, application name and access type as a JSON object.")),
			),
			Handler: forward("login_user", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				credentials, err := requireMapArg(req, "credentials")
				if err != nil {
					return nil, err
				}
				return client.LoginUser(ctx, credentials)
			}),
		},
		{
			Tool: mcp.NewTool("logout_user",
				mcp.WithDescription("Logout user."),
			),
			Handler: forward("logout_user", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				return client.LogoutUser(ctx)
			}),
		},
		{
			Tool: mcp.NewTool("get_plan",
				mcp.WithDescription("Get details of a plan."),
				mcp.WithString("plan_name", mcp.Required(), mcp.Description("Name of the requested plan (e.g., FREE, PREMIUM).")),
			),
			Handler: forward("get_plan", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				planName, err := requireStringArg(req, "plan_name")
				if err != nil {
					return nil, err
				}
				return client.GetPlan(ctx, planName)
			}),
		},
	}
}
