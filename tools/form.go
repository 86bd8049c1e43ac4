package tools

import (
	"context"

	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/The-AI-Workshops/jotform-mcp-server/internal/jotform"
)

// formTools covers the per-form endpoints: form CRUD, questions, properties,
// per-form submissions, files, webhooks and reports.
func formTools(client *jotform.Client) []Entry {
	return []Entry{
		{
			Tool: mcp.NewTool("get_form",
				mcp.WithDescription("Get basic information about a form."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
			),
			Handler: forward("get_form", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				return client.GetForm(ctx, formID)
			}),
		},
		{
			Tool: mcp.NewTool("get_form_questions",
				mcp.WithDescription("Get a list of all questions on a form."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
			),
			Handler: forward("get_form_questions", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				return client.GetFormQuestions(ctx, formID)
			}),
		},
		{
			Tool: mcp.NewTool("get_form_question",
				mcp.WithDescription("Get details about a question."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
				mcp.WithString("qid", mcp.Required(), mcp.Description("Question ID.")),
			),
			Handler: forward("get_form_question", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				qid, err := requireStringArg(req, "qid")
				if err != nil {
					return nil, err
				}
				return client.GetFormQuestion(ctx, formID, qid)
			}),
		},
		{
			Tool: mcp.NewTool("get_form_submissions",
				mcp.WithDescription("List of a form submissions."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
				mcp.WithNumber("offset", mcp.Description("Start of each result set.")),
				mcp.WithNumber("limit", mcp.Description("Number of results in each result set.")),
				mcp.WithString("filter", mcp.Description(`Filters the query results as a JSON object, e.g. {"created_at:gt": "2024-01-01 00:00:00"}.`)),
				mcp.WithString("order_by", mcp.Description("Order results by a field name.")),
			),
			Handler: forward("get_form_submissions", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				filter, err := mapArg(req, "filter")
				if err != nil {
					return nil, err
				}
				return client.GetFormSubmissions(ctx, formID, intArg(req, "offset", 0), intArg(req, "limit", 0), filter, stringArg(req, "order_by"))
			}),
		},
		{
			Tool: mcp.NewTool("create_form_submission",
				mcp.WithDescription("Submit data to this form using the API. For complex fields like name (qid_first, qid_last) or address (qid_addr_line1), use the underscore notation in the payload keys."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
				mcp.WithString("submission", mcp.Required(), mcp.Description(`Submission data as a JSON object keyed by question ID, e.g. {"1_first": "John", "1_last": "Doe", "2": "test@example.com"}.`)),
			),
			Handler: forward("create_form_submission", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				submission, err := requireMapArg(req, "submission")
				if err != nil {
					return nil, err
				}
				return client.CreateFormSubmission(ctx, formID, submission)
			}),
		},
		{
			Tool: mcp.NewTool("create_form_submissions",
				mcp.WithDescription("Submit multiple data entries to a form using the API (via PUT request)."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
				mcp.WithString("submissions", mcp.Required(), mcp.Description(`A JSON array of submission objects, e.g. [{"1_first": "Jane", "2": "jane@example.com"}].`)),
			),
			Handler: forward("create_form_submissions", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				submissions, err := requireJSONArrayArg(req, "submissions")
				if err != nil {
					return nil, err
				}
				return client.CreateFormSubmissions(ctx, formID, submissions)
			}),
		},
		{
			Tool: mcp.NewTool("get_form_files",
				mcp.WithDescription("List of files uploaded on a form with their URLs."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
			),
			Handler: forward("get_form_files", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				return client.GetFormFiles(ctx, formID)
			}),
		},
		{
			Tool: mcp.NewTool("get_form_webhooks",
				mcp.WithDescription("Get list of webhooks for a form."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
			),
			Handler: forward("get_form_webhooks", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				return client.GetFormWebhooks(ctx, formID)
			}),
		},
		{
			Tool: mcp.NewTool("create_form_webhook",
				mcp.WithDescription("Add a new webhook to a form."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
				mcp.WithString("webhook_url", mcp.Required(), mcp.Description("Webhook URL.")),
			),
			Handler: forward("create_form_webhook", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				webhookURL, err := requireStringArg(req, "webhook_url")
				if err != nil {
					return nil, err
				}
				return client.CreateFormWebhook(ctx, formID, webhookURL)
			}),
		},
		{
			Tool: mcp.NewTool("delete_form_webhook",
				mcp.WithDescription("Delete a specific webhook of a form."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
				mcp.WithString("webhook_id", mcp.Required(), mcp.Description("Webhook ID.")),
			),
			Handler: forward("delete_form_webhook", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				webhookID, err := requireStringArg(req, "webhook_id")
				if err != nil {
					return nil, err
				}
				return client.DeleteFormWebhook(ctx, formID, webhookID)
			}),
		},
		{
			Tool: mcp.NewTool("get_form_properties",
				mcp.WithDescription("Get a list of all properties on a form."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
			),
			Handler: forward("get_form_properties", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				return client.GetFormProperties(ctx, formID)
			}),
		},
		{
			Tool: mcp.NewTool("get_form_property",
				mcp.WithDescription("Get a specific property of the form."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
				mcp.WithString("property_key", mcp.Required(), mcp.Description("Property key.")),
			),
			Handler: forward("get_form_property", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				propertyKey, err := requireStringArg(req, "property_key")
				if err != nil {
					return nil, err
				}
				return client.GetFormProperty(ctx, formID, propertyKey)
			}),
		},
		{
			Tool: mcp.NewTool("set_form_properties",
				mcp.WithDescription("Add or edit properties of a specific form (POST)."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
				mcp.WithString("form_properties", mcp.Required(), mcp.Description("New properties as a JSON object.")),
			),
			Handler: forward("set_form_properties", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				properties, err := requireMapArg(req, "form_properties")
				if err != nil {
					return nil, err
				}
				return client.SetFormProperties(ctx, formID, properties)
			}),
		},
		{
			Tool: mcp.NewTool("set_multiple_form_properties",
				mcp.WithDescription("Add or edit properties of a specific form (PUT)."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
				mcp.WithString("form_properties", mcp.Required(), mcp.Description("New properties as a JSON object.")),
			),
			Handler: forward("set_multiple_form_properties", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				properties, err := requireJSONObjectArg(req, "form_properties")
				if err != nil {
					return nil, err
				}
				return client.SetMultipleFormProperties(ctx, formID, properties)
			}),
		},
		{
			Tool: mcp.NewTool("get_form_reports",
				mcp.WithDescription("Get all the reports of a form."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
			),
			Handler: forward("get_form_reports", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				return client.GetFormReports(ctx, formID)
			}),
		},
		{
			Tool: mcp.NewTool("clone_form",
				mcp.WithDescription("Clone a single form."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
			),
			Handler: forward("clone_form", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				return client.CloneForm(ctx, formID)
			}),
		},
		{
			Tool: mcp.NewTool("delete_form_question",
				mcp.WithDescription("Delete a single form question."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
				mcp.WithString("qid", mcp.Required(), mcp.Description("Question ID.")),
			),
			Handler: forward("delete_form_question", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				qid, err := requireStringArg(req, "qid")
				if err != nil {
					return nil, err
				}
				return client.DeleteFormQuestion(ctx, formID, qid)
			}),
		},
		{
			Tool: mcp.NewTool("create_form_question",
				mcp.WithDescription("Add new question to specified form."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
				mcp.WithString("question", mcp.Required(), mcp.Description("New question properties as a JSON object.")),
			),
			Handler: forward("create_form_question", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				question, err := requireMapArg(req, "question")
				if err != nil {
					return nil, err
				}
				return client.CreateFormQuestion(ctx, formID, question)
			}),
		},
		{
			Tool: mcp.NewTool("create_form_questions",
				mcp.WithDescription("Add new questions to specified form (PUT)."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
				mcp.WithString("questions", mcp.Required(), mcp.Description("New questions as a JSON array of question objects.")),
			),
			Handler: forward("create_form_questions", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				questions, err := requireJSONArrayArg(req, "questions")
				if err != nil {
					return nil, err
				}
				return client.CreateFormQuestions(ctx, formID, questions)
			}),
		},
		{
			Tool: mcp.NewTool("edit_form_question",
				mcp.WithDescription("Add or edit a single question properties."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
				mcp.WithString("qid", mcp.Required(), mcp.Description("Question ID.")),
				mcp.WithString("question_properties", mcp.Required(), mcp.Description("New question properties as a JSON object.")),
			),
			Handler: forward("edit_form_question", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				qid, err := requireStringArg(req, "qid")
				if err != nil {
					return nil, err
				}
				properties, err := requireMapArg(req, "question_properties")
				if err != nil {
					return nil, err
				}
				return client.EditFormQuestion(ctx, formID, qid, properties)
			}),
		},
		{
			Tool: mcp.NewTool("create_form",
				mcp.WithDescription("Create a new form."),
				mcp.WithString("form_definition", mcp.Required(), mcp.Description(`Questions, properties and emails of the new form as a JSON object, e.g. {"questions": [{"type": "control_textbox", "text": "Name", "order": "1"}], "properties": {"title": "My New Form"}}.`)),
			),
			Handler: forward("create_form", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				definition, err := requireMapArg(req, "form_definition")
				if err != nil {
					return nil, err
				}
				return client.CreateForm(ctx, definition)
			}),
		},
		{
			Tool: mcp.NewTool("create_forms",
				mcp.WithDescription("Create new forms (PUT)."),
				mcp.WithString("forms_definition", mcp.Required(), mcp.Description("List of form definitions as a JSON array.")),
			),
			Handler: forward("create_forms", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				forms, err := requireJSONArrayArg(req, "forms_definition")
				if err != nil {
					return nil, err
				}
				return client.CreateForms(ctx, forms)
			}),
		},
		{
			Tool: mcp.NewTool("delete_form",
				mcp.WithDescription("Delete a specific form."),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
			),
			Handler: forward("delete_form", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				return client.DeleteForm(ctx, formID)
			}),
		},
	}
}
