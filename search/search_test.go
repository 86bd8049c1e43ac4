package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient is an in-memory stand-in for the JotForm API client.
type fakeClient struct {
	mu sync.Mutex

	forms    any
	formsErr error

	submissions    map[string]any
	submissionsErr map[string]error

	formsCalls      int
	submissionCalls []submissionCall
}

type submissionCall struct {
	formID  string
	offset  int
	limit   int
	filter  map[string]any
	orderBy string
}

func (f *fakeClient) GetForms(ctx context.Context, offset, limit int, filter map[string]any, orderBy string) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.formsCalls++
	if f.formsErr != nil {
		return nil, f.formsErr
	}
	return f.forms, nil
}

func (f *fakeClient) GetFormSubmissions(ctx context.Context, formID string, offset, limit int, filter map[string]any, orderBy string) (any, error) {
	f.mu.Lock()
	f.submissionCalls = append(f.submissionCalls, submissionCall{formID: formID, offset: offset, limit: limit, filter: filter, orderBy: orderBy})
	f.mu.Unlock()
	if err, ok := f.submissionsErr[formID]; ok {
		return nil, err
	}
	return f.submissions[formID], nil
}

func (f *fakeClient) calls() []submissionCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]submissionCall(nil), f.submissionCalls...)
}

func submission(id string) map[string]any {
	return map[string]any{"id": id, "answers": map[string]any{"1": "hello"}}
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSearch_RejectsPeriodWithExplicitDates(t *testing.T) {
	client := &fakeClient{}
	searcher := New(client)

	_, err := searcher.Search(context.Background(), Request{Period: PeriodLast7Days, StartDate: "2024-01-01"})
	assert.ErrorIs(t, err, ErrPeriodConflict)

	_, err = searcher.Search(context.Background(), Request{Period: PeriodLast7Days, EndDate: "2024-01-31"})
	assert.ErrorIs(t, err, ErrPeriodConflict)

	// Validation short-circuits before any collaborator call.
	assert.Zero(t, client.formsCalls)
	assert.Empty(t, client.calls())
}

func TestSearch_RejectsMissingDateArguments(t *testing.T) {
	client := &fakeClient{}
	searcher := New(client)

	_, err := searcher.Search(context.Background(), Request{FormIDs: []string{"f1"}})
	assert.ErrorIs(t, err, ErrNoDateArgs)
	assert.Empty(t, client.calls())
}

func TestSearch_RejectsInvalidPeriod(t *testing.T) {
	client := &fakeClient{}
	searcher := New(client)

	_, err := searcher.Search(context.Background(), Request{Period: "fortnight"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fortnight")
	assert.Empty(t, client.calls())
}

func TestSearch_AggregatesAcrossForms(t *testing.T) {
	client := &fakeClient{
		submissions: map[string]any{
			"f1": []any{submission("s1"), submission("s2")},
			"f2": []any{submission("s3")},
		},
	}
	searcher := New(client, WithNowFunc(fixedNow(day(2024, time.March, 15))))

	result, err := searcher.Search(context.Background(), Request{
		FormIDs: []string{"f1", "f2"},
		Period:  PeriodLastMonth,
	})
	require.NoError(t, err)
	require.Len(t, result.Submissions, 3)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Message)

	// Every record carries its source form tag.
	sources := map[string]int{}
	for _, sub := range result.Submissions {
		source, ok := sub[sourceFormIDKey].(string)
		require.True(t, ok, "submission %v missing source form tag", sub)
		sources[source]++
	}
	assert.Equal(t, map[string]int{"f1": 2, "f2": 1}, sources)

	require.NotNil(t, result.SearchDetails)
	assert.Equal(t, []string{"f1", "f2"}, result.SearchDetails.FormsSearched)
	assert.Equal(t, map[string]string{
		"created_at:gt": "2024-02-01 00:00:00",
		"created_at:lt": "2024-03-01 00:00:00",
	}, result.SearchDetails.DateFilterUsed)
	assert.Equal(t, PeriodLastMonth, result.SearchDetails.Period)
	assert.Equal(t, DefaultLimitPerForm, result.SearchDetails.LimitPerForm)

	// Each form got exactly one bounded, ordered query with the filter.
	calls := client.calls()
	require.Len(t, calls, 2)
	for _, call := range calls {
		assert.Equal(t, DefaultLimitPerForm, call.limit)
		assert.Equal(t, "created_at", call.orderBy)
		assert.Equal(t, "2024-02-01 00:00:00", call.filter["created_at:gt"])
		assert.Equal(t, "2024-03-01 00:00:00", call.filter["created_at:lt"])
	}
}

func TestSearch_IsolatesPerFormFailures(t *testing.T) {
	client := &fakeClient{
		submissions: map[string]any{
			"f1": []any{submission("s1")},
			"f3": []any{submission("s2"), submission("s3")},
		},
		submissionsErr: map[string]error{
			"f2": errors.New("API returned 500: internal error"),
		},
	}
	searcher := New(client)

	result, err := searcher.Search(context.Background(), Request{
		FormIDs:   []string{"f1", "f2", "f3"},
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "f2", result.Errors[0].FormID)
	assert.Contains(t, result.Errors[0].Error, "internal error")

	require.Len(t, result.Submissions, 3)
	for _, sub := range result.Submissions {
		assert.NotEqual(t, "f2", sub[sourceFormIDKey])
	}
}

func TestSearch_NonListSubmissionResultBecomesFormError(t *testing.T) {
	client := &fakeClient{
		submissions: map[string]any{
			"f1": map[string]any{"unexpected": true},
		},
	}
	searcher := New(client)

	result, err := searcher.Search(context.Background(), Request{
		FormIDs:   []string{"f1"},
		StartDate: "2024-01-01",
	})
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "f1", result.Errors[0].FormID)
	assert.Empty(t, result.Submissions)
}

func TestSearch_DiscoversEnabledForms(t *testing.T) {
	client := &fakeClient{
		forms: []any{
			map[string]any{"id": "f1", "status": "ENABLED"},
			map[string]any{"id": "f2", "status": "DISABLED"},
			map[string]any{"id": "f3", "status": "ENABLED"},
			map[string]any{"id": "f4", "status": "DELETED"},
		},
		submissions: map[string]any{
			"f1": []any{submission("s1")},
			"f3": []any{},
		},
	}
	searcher := New(client)

	result, err := searcher.Search(context.Background(), Request{Period: PeriodLast7Days})
	require.NoError(t, err)

	assert.Equal(t, 1, client.formsCalls)
	require.NotNil(t, result.SearchDetails)
	assert.Equal(t, []string{"f1", "f3"}, result.SearchDetails.FormsSearched)

	queried := map[string]bool{}
	for _, call := range client.calls() {
		queried[call.formID] = true
	}
	assert.Equal(t, map[string]bool{"f1": true, "f3": true}, queried)
}

func TestSearch_DiscoveryFailureIsTerminal(t *testing.T) {
	client := &fakeClient{formsErr: errors.New("API returned 401: invalid key")}
	searcher := New(client)

	_, err := searcher.Search(context.Background(), Request{Period: PeriodLast7Days})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error fetching forms list")
	assert.Contains(t, err.Error(), "invalid key")
	assert.Empty(t, client.calls(), "no fan-out after discovery failure")
}

func TestSearch_DiscoveryUnexpectedShapeIsTerminal(t *testing.T) {
	client := &fakeClient{forms: map[string]any{"error": "nope"}}
	searcher := New(client)

	_, err := searcher.Search(context.Background(), Request{Period: PeriodLast7Days})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected result format")
}

func TestSearch_NoEnabledFormsIsNotAnError(t *testing.T) {
	client := &fakeClient{forms: []any{
		map[string]any{"id": "f1", "status": "DISABLED"},
	}}
	searcher := New(client)

	result, err := searcher.Search(context.Background(), Request{Period: PeriodLast7Days})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Message)
	assert.Empty(t, result.Submissions)
	assert.Empty(t, result.Errors)
	assert.Nil(t, result.SearchDetails)
	assert.Empty(t, client.calls())
}

func TestSearch_AccountingPeriodUsesConfiguredStartDay(t *testing.T) {
	client := &fakeClient{submissions: map[string]any{"f1": []any{}}}
	searcher := New(client,
		WithAccountingMonthStartDay(26),
		WithNowFunc(fixedNow(day(2024, time.March, 10))),
	)

	result, err := searcher.Search(context.Background(), Request{
		FormIDs: []string{"f1"},
		Period:  PeriodCurrentAccountingMonth,
	})
	require.NoError(t, err)
	require.NotNil(t, result.SearchDetails)
	assert.Equal(t, "2024-02-26 00:00:00", result.SearchDetails.DateFilterUsed["created_at:gt"])
}

func TestSearch_CustomLimitPerForm(t *testing.T) {
	client := &fakeClient{submissions: map[string]any{"f1": []any{}}}
	searcher := New(client)

	result, err := searcher.Search(context.Background(), Request{
		FormIDs:      []string{"f1"},
		StartDate:    "2024-01-01",
		LimitPerForm: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, result.SearchDetails.LimitPerForm)

	calls := client.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, 50, calls[0].limit)
}

// A bounded worker pool must still produce one outcome per form.
func TestSearch_BoundedConcurrency(t *testing.T) {
	submissions := map[string]any{}
	formIDs := make([]string, 0, 10)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		submissions[id] = []any{submission("s-" + id)}
		formIDs = append(formIDs, id)
	}
	client := &fakeClient{submissions: submissions}
	searcher := New(client, WithConcurrency(2))

	result, err := searcher.Search(context.Background(), Request{
		FormIDs:   formIDs,
		StartDate: "2024-01-01",
	})
	require.NoError(t, err)
	assert.Len(t, result.Submissions, len(formIDs))
	assert.Empty(t, result.Errors)
}

// Two searches with identical arguments against unchanged data produce the
// same search details and the same multiset of submissions.
func TestSearch_Idempotent(t *testing.T) {
	client := &fakeClient{
		submissions: map[string]any{
			"f1": []any{submission("s1")},
			"f2": []any{submission("s2")},
		},
	}
	searcher := New(client, WithNowFunc(fixedNow(day(2024, time.March, 15))))
	req := Request{FormIDs: []string{"f1", "f2"}, Period: PeriodLastMonth}

	first, err := searcher.Search(context.Background(), req)
	require.NoError(t, err)
	second, err := searcher.Search(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.SearchDetails, second.SearchDetails)
	assert.ElementsMatch(t, first.Submissions, second.Submissions)
}
