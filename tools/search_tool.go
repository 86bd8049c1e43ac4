package tools

import (
	"context"

	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/The-AI-Workshops/jotform-mcp-server/log"
	"github.com/The-AI-Workshops/jotform-mcp-server/search"
)

// searchTools exposes the cross-form submission search.
func searchTools(searcher *search.Searcher) []Entry {
	return []Entry{
		{
			Tool: mcp.NewTool("search_submissions_by_date",
				mcp.WithDescription("Search submissions by date range or period across specified forms or all enabled forms. "+
					"Provide EITHER 'period' OR ('start_date' and/or 'end_date'). "+
					"Returns a JSON object with the aggregated submissions, the search parameters used and any per-form errors."),
				mcp.WithString("form_ids", mcp.Description("Comma-separated list of form IDs to search. If omitted, searches all enabled forms.")),
				mcp.WithString("start_date", mcp.Description("Start date in YYYY-MM-DD format (inclusive). Use with end_date.")),
				mcp.WithString("end_date", mcp.Description("End date in YYYY-MM-DD format (inclusive). Use with start_date.")),
				mcp.WithString("period", mcp.Description("Relative period. Cannot be used with start_date/end_date."),
					mcp.Enum(search.PeriodLast7Days, search.PeriodLast30Days, search.PeriodCurrentMonth,
						search.PeriodLastMonth, search.PeriodCurrentAccountingMonth, search.PeriodLastAccountingMonth)),
				mcp.WithNumber("limit_per_form", mcp.Description("Max submissions per form request (default/max 1000).")),
			),
			Handler: func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				result, err := searcher.Search(ctx, search.Request{
					FormIDs:      csvArg(req, "form_ids"),
					StartDate:    stringArg(req, "start_date"),
					EndDate:      stringArg(req, "end_date"),
					Period:       stringArg(req, "period"),
					LimitPerForm: intArg(req, "limit_per_form", search.DefaultLimitPerForm),
				})
				if err != nil {
					log.Errorf("search_submissions_by_date failed: %v", err)
					return mcp.NewTextResult(errorJSON(err.Error())), nil
				}
				return mcp.NewTextResult(marshalIndent(result)), nil
			},
		},
	}
}
