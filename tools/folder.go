package tools

import (
	"context"

	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/The-AI-Workshops/jotform-mcp-server/internal/jotform"
)

// folderTools covers the folder endpoints.
func folderTools(client *jotform.Client) []Entry {
	return []Entry{
		{
			Tool: mcp.NewTool("get_folder",
				mcp.WithDescription("Get folder details: a list of forms in a folder and its properties."),
				mcp.WithString("folder_id", mcp.Required(), mcp.Description("Folder ID.")),
			),
			Handler: forward("get_folder", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				folderID, err := requireStringArg(req, "folder_id")
				if err != nil {
					return nil, err
				}
				return client.GetFolder(ctx, folderID)
			}),
		},
		{
			Tool: mcp.NewTool("create_folder",
				mcp.WithDescription("Create a new folder."),
				mcp.WithString("folder_properties", mcp.Required(), mcp.Description("Properties of the new folder as a JSON object.")),
			),
			Handler: forward("create_folder", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				properties, err := requireMapArg(req, "folder_properties")
				if err != nil {
					return nil, err
				}
				return client.CreateFolder(ctx, properties)
			}),
		},
		{
			Tool: mcp.NewTool("delete_folder",
				mcp.WithDescription("Delete a specific folder and its subfolders."),
				mcp.WithString("folder_id", mcp.Required(), mcp.Description("Folder ID.")),
			),
			Handler: forward("delete_folder", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				folderID, err := requireStringArg(req, "folder_id")
				if err != nil {
					return nil, err
				}
				return client.DeleteFolder(ctx, folderID)
			}),
		},
		{
			Tool: mcp.NewTool("update_folder",
				mcp.WithDescription("Update a specific folder."),
				mcp.WithString("folder_id", mcp.Required(), mcp.Description("Folder ID.")),
				mcp.WithString("folder_properties", mcp.Required(), mcp.Description("New properties of the folder as a JSON object.")),
			),
			Handler: forward("update_folder", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				folderID, err := requireStringArg(req, "folder_id")
				if err != nil {
					return nil, err
				}
				properties, err := requireJSONObjectArg(req, "folder_properties")
				if err != nil {
					return nil, err
				}
				return client.UpdateFolder(ctx, folderID, properties)
			}),
		},
		{
			Tool: mcp.NewTool("add_forms_to_folder",
				mcp.WithDescription("Add forms to a folder."),
				mcp.WithString("folder_id", mcp.Required(), mcp.Description("Folder ID.")),
				mcp.WithString("form_ids", mcp.Required(), mcp.Description("Comma-separated list of form IDs.")),
			),
			Handler: forward("add_forms_to_folder", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				folderID, err := requireStringArg(req, "folder_id")
				if err != nil {
					return nil, err
				}
				formIDs := csvArg(req, "form_ids")
				if len(formIDs) == 0 {
					return nil, argErrorf("missing required parameter: form_ids")
				}
				return client.AddFormsToFolder(ctx, folderID, formIDs)
			}),
		},
		{
			Tool: mcp.NewTool("add_form_to_folder",
				mcp.WithDescription("Add a specific form to a folder."),
				mcp.WithString("folder_id", mcp.Required(), mcp.Description("Folder ID.")),
				mcp.WithString("form_id", mcp.Required(), mcp.Description("Form ID.")),
			),
			Handler: forward("add_form_to_folder", func(ctx context.Context, req *mcp.CallToolRequest) (any, error) {
				folderID, err := requireStringArg(req, "folder_id")
				if err != nil {
					return nil, err
				}
				formID, err := requireStringArg(req, "form_id")
				if err != nil {
					return nil, err
				}
				return client.AddFormToFolder(ctx, folderID, formID)
			}),
		},
	}
}
