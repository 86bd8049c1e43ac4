package jotform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// --- User ---

// GetUser returns user account details: account type, avatar URL, name,
// email, website URL and account limits.
func (c *Client) GetUser(ctx context.Context) (any, error) {
	return c.executeGet(ctx, "/user", nil)
}

// GetUsage returns the number of form submissions received this month.
func (c *Client) GetUsage(ctx context.Context) (any, error) {
	return c.executeGet(ctx, "/user/usage", nil)
}

// GetForms returns a list of forms for this account.
func (c *Client) GetForms(ctx context.Context, offset, limit int, filter map[string]any, orderBy string) (any, error) {
	params, err := createConditions(offset, limit, filter, orderBy)
	if err != nil {
		return nil, err
	}
	return c.executeGet(ctx, "/user/forms", params)
}

// GetSubmissions returns a list of submissions for this account.
func (c *Client) GetSubmissions(ctx context.Context, offset, limit int, filter map[string]any, orderBy string) (any, error) {
	params, err := createConditions(offset, limit, filter, orderBy)
	if err != nil {
		return nil, err
	}
	return c.executeGet(ctx, "/user/submissions", params)
}

// GetSubusers returns a list of sub users for this account.
func (c *Client) GetSubusers(ctx context.Context) (any, error) {
	return c.executeGet(ctx, "/user/subusers", nil)
}

// GetFolders returns a list of form folders for this account.
func (c *Client) GetFolders(ctx context.Context) (any, error) {
	return c.executeGet(ctx, "/user/folders", nil)
}

// GetReports returns the list of report URLs for this account.
func (c *Client) GetReports(ctx context.Context) (any, error) {
	return c.executeGet(ctx, "/user/reports", nil)
}

// GetSettings returns the user's time zone and language.
func (c *Client) GetSettings(ctx context.Context) (any, error) {
	return c.executeGet(ctx, "/user/settings", nil)
}

// UpdateSettings updates the user's settings.
func (c *Client) UpdateSettings(ctx context.Context, settings map[string]any) (any, error) {
	return c.executePost(ctx, "/user/settings", flatten(settings))
}

// GetHistory returns the user activity log, optionally filtered.
// startDate and endDate use the MM/DD/YYYY format the history endpoint expects.
func (c *Client) GetHistory(ctx context.Context, action, date, sortBy, startDate, endDate string) (any, error) {
	params := url.Values{}
	setIfPresent(params, "action", action)
	setIfPresent(params, "date", date)
	setIfPresent(params, "sortBy", sortBy)
	setIfPresent(params, "startDate", startDate)
	setIfPresent(params, "endDate", endDate)
	return c.executeGet(ctx, "/user/history", params)
}

// RegisterUser registers a new user with username, password and email.
func (c *Client) RegisterUser(ctx context.Context, details map[string]any) (any, error) {
	return c.executePost(ctx, "/user/register", flatten(details))
}

// LoginUser logs in a user with the given credentials.
func (c *Client) LoginUser(ctx context.Context, credentials map[string]any) (any, error) {
	return c.executePost(ctx, "/user/login", flatten(credentials))
}

// LogoutUser logs out the current user.
func (c *Client) LogoutUser(ctx context.Context) (any, error) {
	return c.executeGet(ctx, "/user/logout", nil)
}

// --- Forms ---

// GetForm returns basic information about a form.
func (c *Client) GetForm(ctx context.Context, formID string) (any, error) {
	return c.executeGet(ctx, "/form/"+formID, nil)
}

// GetFormQuestions returns a list of all questions on a form.
func (c *Client) GetFormQuestions(ctx context.Context, formID string) (any, error) {
	return c.executeGet(ctx, "/form/"+formID+"/questions", nil)
}

// GetFormQuestion returns details about a single question.
func (c *Client) GetFormQuestion(ctx context.Context, formID, qid string) (any, error) {
	return c.executeGet(ctx, "/form/"+formID+"/question/"+qid, nil)
}

// GetFormSubmissions returns the submissions of a specific form.
func (c *Client) GetFormSubmissions(ctx context.Context, formID string, offset, limit int, filter map[string]any, orderBy string) (any, error) {
	params, err := createConditions(offset, limit, filter, orderBy)
	if err != nil {
		return nil, err
	}
	return c.executeGet(ctx, "/form/"+formID+"/submissions", params)
}

// CreateFormSubmission submits data to a form. Keys with an underscore are
// split into question sub-fields, e.g. "1_first" becomes submission[1][first].
func (c *Client) CreateFormSubmission(ctx context.Context, formID string, submission map[string]any) (any, error) {
	return c.executePost(ctx, "/form/"+formID+"/submissions", encodeSubmission(submission))
}

// CreateFormSubmissions submits multiple entries to a form. The body is a
// JSON array of submission objects.
func (c *Client) CreateFormSubmissions(ctx context.Context, formID, submissionsJSON string) (any, error) {
	return c.executePut(ctx, "/form/"+formID+"/submissions", submissionsJSON)
}

// GetFormFiles returns the files uploaded on a form.
func (c *Client) GetFormFiles(ctx context.Context, formID string) (any, error) {
	return c.executeGet(ctx, "/form/"+formID+"/files", nil)
}

// GetFormWebhooks returns the webhooks of a form.
func (c *Client) GetFormWebhooks(ctx context.Context, formID string) (any, error) {
	return c.executeGet(ctx, "/form/"+formID+"/webhooks", nil)
}

// CreateFormWebhook adds a new webhook to a form.
func (c *Client) CreateFormWebhook(ctx context.Context, formID, webhookURL string) (any, error) {
	params := url.Values{}
	params.Set("webhookURL", webhookURL)
	return c.executePost(ctx, "/form/"+formID+"/webhooks", params)
}

// DeleteFormWebhook deletes a specific webhook of a form.
func (c *Client) DeleteFormWebhook(ctx context.Context, formID, webhookID string) (any, error) {
	return c.executeDelete(ctx, "/form/"+formID+"/webhooks/"+webhookID)
}

// GetFormProperties returns all properties of a form.
func (c *Client) GetFormProperties(ctx context.Context, formID string) (any, error) {
	return c.executeGet(ctx, "/form/"+formID+"/properties", nil)
}

// GetFormProperty returns a single form property.
func (c *Client) GetFormProperty(ctx context.Context, formID, propertyKey string) (any, error) {
	return c.executeGet(ctx, "/form/"+formID+"/properties/"+propertyKey, nil)
}

// SetFormProperties adds or edits form properties via POST.
func (c *Client) SetFormProperties(ctx context.Context, formID string, properties map[string]any) (any, error) {
	return c.executePost(ctx, "/form/"+formID+"/properties", prefixed("properties", properties))
}

// SetMultipleFormProperties adds or edits form properties via PUT. The body
// is a JSON object of property key/value pairs.
func (c *Client) SetMultipleFormProperties(ctx context.Context, formID, propertiesJSON string) (any, error) {
	return c.executePut(ctx, "/form/"+formID+"/properties", propertiesJSON)
}

// GetFormReports returns all reports of a form.
func (c *Client) GetFormReports(ctx context.Context, formID string) (any, error) {
	return c.executeGet(ctx, "/form/"+formID+"/reports", nil)
}

// CloneForm clones a single form.
func (c *Client) CloneForm(ctx context.Context, formID string) (any, error) {
	return c.executePost(ctx, "/form/"+formID+"/clone", nil)
}

// DeleteFormQuestion deletes a single form question.
func (c *Client) DeleteFormQuestion(ctx context.Context, formID, qid string) (any, error) {
	return c.executeDelete(ctx, "/form/"+formID+"/question/"+qid)
}

// CreateFormQuestion adds a new question to a form.
func (c *Client) CreateFormQuestion(ctx context.Context, formID string, question map[string]any) (any, error) {
	return c.executePost(ctx, "/form/"+formID+"/questions", prefixed("question", question))
}

// CreateFormQuestions adds new questions to a form via PUT. The body is a
// JSON array of question objects.
func (c *Client) CreateFormQuestions(ctx context.Context, formID, questionsJSON string) (any, error) {
	return c.executePut(ctx, "/form/"+formID+"/questions", questionsJSON)
}

// EditFormQuestion adds or edits properties of a single question.
func (c *Client) EditFormQuestion(ctx context.Context, formID, qid string, properties map[string]any) (any, error) {
	return c.executePost(ctx, "/form/"+formID+"/question/"+qid, prefixed("question", properties))
}

// CreateForm creates a new form from a definition containing questions,
// properties and emails.
func (c *Client) CreateForm(ctx context.Context, form map[string]any) (any, error) {
	return c.executePost(ctx, "/user/forms", encodeFormDefinition(form))
}

// CreateForms creates new forms via PUT. The body is a JSON array of form
// definitions.
func (c *Client) CreateForms(ctx context.Context, formsJSON string) (any, error) {
	return c.executePut(ctx, "/user/forms", formsJSON)
}

// DeleteForm deletes a specific form.
func (c *Client) DeleteForm(ctx context.Context, formID string) (any, error) {
	return c.executeDelete(ctx, "/form/"+formID)
}

// --- Submissions ---

// GetSubmission returns the data of a single submission.
func (c *Client) GetSubmission(ctx context.Context, sid string) (any, error) {
	return c.executeGet(ctx, "/submission/"+sid, nil)
}

// DeleteSubmission deletes a single submission.
func (c *Client) DeleteSubmission(ctx context.Context, sid string) (any, error) {
	return c.executeDelete(ctx, "/submission/"+sid)
}

// EditSubmission edits a single submission. Keys follow the same underscore
// convention as CreateFormSubmission.
func (c *Client) EditSubmission(ctx context.Context, sid string, submission map[string]any) (any, error) {
	return c.executePost(ctx, "/submission/"+sid, encodeSubmission(submission))
}

// --- Reports ---

// GetReport returns the properties of a specific report.
func (c *Client) GetReport(ctx context.Context, reportID string) (any, error) {
	return c.executeGet(ctx, "/report/"+reportID, nil)
}

// CreateReport creates a new report of a form. The report map holds fields
// such as list_type and title.
func (c *Client) CreateReport(ctx context.Context, formID string, report map[string]any) (any, error) {
	return c.executePost(ctx, "/form/"+formID+"/reports", flatten(report))
}

// DeleteReport deletes a specific report.
func (c *Client) DeleteReport(ctx context.Context, reportID string) (any, error) {
	return c.executeDelete(ctx, "/report/"+reportID)
}

// --- Folders ---

// GetFolder returns the details of a folder, including its forms.
func (c *Client) GetFolder(ctx context.Context, folderID string) (any, error) {
	return c.executeGet(ctx, "/folder/"+folderID, nil)
}

// CreateFolder creates a new folder.
func (c *Client) CreateFolder(ctx context.Context, properties map[string]any) (any, error) {
	return c.executePost(ctx, "/folder", flatten(properties))
}

// DeleteFolder deletes a folder and its subfolders.
func (c *Client) DeleteFolder(ctx context.Context, folderID string) (any, error) {
	return c.executeDelete(ctx, "/folder/"+folderID)
}

// UpdateFolder updates a folder. The body is a JSON object of folder
// properties.
func (c *Client) UpdateFolder(ctx context.Context, folderID, propertiesJSON string) (any, error) {
	return c.executePut(ctx, "/folder/"+folderID, propertiesJSON)
}

// AddFormsToFolder adds the given forms to a folder.
func (c *Client) AddFormsToFolder(ctx context.Context, folderID string, formIDs []string) (any, error) {
	body, err := json.Marshal(map[string]any{"forms": formIDs})
	if err != nil {
		return nil, fmt.Errorf("failed to encode folder update: %w", err)
	}
	return c.executePut(ctx, "/folder/"+folderID, string(body))
}

// AddFormToFolder adds a single form to a folder.
func (c *Client) AddFormToFolder(ctx context.Context, folderID, formID string) (any, error) {
	return c.AddFormsToFolder(ctx, folderID, []string{formID})
}

// --- System ---

// GetPlan returns the details of a plan, e.g. FREE or PREMIUM.
func (c *Client) GetPlan(ctx context.Context, planName string) (any, error) {
	return c.executeGet(ctx, "/system/plan/"+planName, nil)
}
