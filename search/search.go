// Package search implements the cross-form submission search: it resolves a
// relative period or explicit date pair into an absolute created_at range,
// discovers the target form set when none is given, fans the per-form
// submission queries out concurrently and aggregates the results, isolating
// each form's failure from the others.
package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/The-AI-Workshops/jotform-mcp-server/log"
)

// Client is the slice of the JotForm API the searcher depends on.
// *jotform.Client satisfies it; tests substitute a fake.
type Client interface {
	GetForms(ctx context.Context, offset, limit int, filter map[string]any, orderBy string) (any, error)
	GetFormSubmissions(ctx context.Context, formID string, offset, limit int, filter map[string]any, orderBy string) (any, error)
}

const (
	// DefaultLimitPerForm is the JotForm API maximum page size; one page of
	// up to this many submissions is fetched per form per search.
	DefaultLimitPerForm = 1000

	// discoveryPageSize bounds the enabled-form lookup. Accounts with more
	// forms than this need explicit form_ids.
	discoveryPageSize = 1000

	formStatusEnabled = "ENABLED"

	// sourceFormIDKey tags each aggregated submission with the form it was
	// retrieved from.
	sourceFormIDKey = "retrieved_from_form_id"
)

// Validation errors, surfaced to the caller as structured tool errors.
var (
	ErrPeriodConflict = errors.New("cannot use 'period' together with 'start_date' or 'end_date'")
	ErrNoDateArgs     = errors.New("please provide either 'period' or at least one of 'start_date'/'end_date'")
	ErrEmptyDateRange = errors.New("could not determine a valid date range for filtering")
)

// Searcher runs cross-form submission searches against an injected client.
type Searcher struct {
	client Client

	// accountingStartDay is the day-of-month opening an accounting month.
	accountingStartDay int
	// concurrency bounds the fan-out; 0 means one worker per target form.
	concurrency int
	// now supplies "today" and is replaceable in tests.
	now func() time.Time
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithAccountingMonthStartDay sets the day-of-month that starts an
// accounting month for the accounting period tokens.
func WithAccountingMonthStartDay(day int) Option {
	return func(s *Searcher) {
		s.accountingStartDay = day
	}
}

// WithConcurrency bounds the number of simultaneous per-form submission
// queries. Zero or negative keeps one worker per form.
func WithConcurrency(n int) Option {
	return func(s *Searcher) {
		s.concurrency = n
	}
}

// WithNowFunc overrides the clock used to resolve relative periods.
func WithNowFunc(now func() time.Time) Option {
	return func(s *Searcher) {
		s.now = now
	}
}

// New creates a Searcher around the given client.
func New(client Client, opts ...Option) *Searcher {
	s := &Searcher{
		client:             client,
		accountingStartDay: 1,
		now:                time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Request holds the parameters of one search call. Period is mutually
// exclusive with StartDate/EndDate; exactly one of the two styles must be
// supplied.
type Request struct {
	FormIDs      []string
	StartDate    string
	EndDate      string
	Period       string
	LimitPerForm int
}

// Details records the parameters a search actually used, echoed back for
// caller-side auditability.
type Details struct {
	FormsSearched  []string          `json:"forms_searched"`
	DateFilterUsed map[string]string `json:"date_filter_used"`
	Period         string            `json:"period"`
	StartDate      string            `json:"start_date"`
	EndDate        string            `json:"end_date"`
	LimitPerForm   int               `json:"limit_per_form"`
}

// FormError describes a single form whose submission query failed.
type FormError struct {
	FormID string `json:"form_id"`
	Error  string `json:"error"`
}

// Result is the search response envelope. Errors is present only when at
// least one per-form query failed; Message only when no form was searched.
type Result struct {
	Message       string           `json:"message,omitempty"`
	Submissions   []map[string]any `json:"submissions"`
	SearchDetails *Details         `json:"search_details,omitempty"`
	Errors        []FormError      `json:"errors,omitempty"`
}

// Search runs one cross-form submission search. Validation, date
// resolution and form discovery failures are terminal and returned as an
// error; per-form query failures are collected in the result instead.
func (s *Searcher) Search(ctx context.Context, req Request) (*Result, error) {
	if req.Period != "" && (req.StartDate != "" || req.EndDate != "") {
		return nil, ErrPeriodConflict
	}
	if req.Period == "" && req.StartDate == "" && req.EndDate == "" {
		return nil, ErrNoDateArgs
	}

	gt, lt, err := ResolveDateRange(req.Period, req.StartDate, req.EndDate, s.accountingStartDay, s.now())
	if err != nil {
		return nil, err
	}
	dateFilter := map[string]string{}
	if gt != "" {
		dateFilter["created_at:gt"] = gt
	}
	if lt != "" {
		dateFilter["created_at:lt"] = lt
	}
	if len(dateFilter) == 0 {
		return nil, ErrEmptyDateRange
	}

	limit := req.LimitPerForm
	if limit <= 0 {
		limit = DefaultLimitPerForm
	}

	targets := req.FormIDs
	if len(targets) == 0 {
		log.Info("no form_ids provided, fetching all enabled forms")
		targets, err = s.discoverEnabledForms(ctx)
		if err != nil {
			return nil, fmt.Errorf("error fetching forms list: %w", err)
		}
		log.Infof("found %d enabled forms", len(targets))
	}
	if len(targets) == 0 {
		return &Result{
			Message:     "No specific form IDs provided and no enabled forms found.",
			Submissions: []map[string]any{},
		}, nil
	}

	log.Infof("fetching submissions for %d forms with date filter: %v", len(targets), dateFilter)
	outcomes := s.fetchAll(ctx, targets, dateFilter, limit)

	result := &Result{
		Submissions: make([]map[string]any, 0),
		SearchDetails: &Details{
			FormsSearched:  targets,
			DateFilterUsed: dateFilter,
			Period:         req.Period,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			LimitPerForm:   limit,
		},
	}
	for _, o := range outcomes {
		if o.err != nil {
			log.Errorf("error fetching submissions for form %s: %v", o.formID, o.err)
			result.Errors = append(result.Errors, FormError{FormID: o.formID, Error: o.err.Error()})
			continue
		}
		result.Submissions = append(result.Submissions, o.submissions...)
	}
	return result, nil
}

// discoverEnabledForms lists the account's forms and keeps the IDs of the
// enabled ones, preserving the API's ordering.
func (s *Searcher) discoverEnabledForms(ctx context.Context) ([]string, error) {
	raw, err := s.client.GetForms(ctx, 0, discoveryPageSize, nil, "")
	if err != nil {
		return nil, err
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, errors.New("unexpected result format from forms list")
	}
	var ids []string
	for _, entry := range list {
		form, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if status, _ := form["status"].(string); status != formStatusEnabled {
			continue
		}
		if id, ok := form["id"].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// outcome is the result of one form's submission query: either a record
// list or the error that query produced.
type outcome struct {
	formID      string
	submissions []map[string]any
	err         error
}

// fetchAll queries every target form, at most s.concurrency at a time, and
// returns one outcome per form, order-aligned with formIDs. A failing form
// never aborts or cancels the others.
func (s *Searcher) fetchAll(ctx context.Context, formIDs []string, dateFilter map[string]string, limit int) []outcome {
	filter := make(map[string]any, len(dateFilter))
	for k, v := range dateFilter {
		filter[k] = v
	}

	outcomes := make([]outcome, len(formIDs))

	size := s.concurrency
	if size <= 0 || size > len(formIDs) {
		size = len(formIDs)
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		log.Errorf("failed to create fetch worker pool: %v", err)
		for i, id := range formIDs {
			outcomes[i] = s.fetchForm(ctx, id, filter, limit)
		}
		return outcomes
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, id := range formIDs {
		wg.Add(1)
		// Capture loop variables for the closure.
		idx, formID := i, id
		if err := pool.Submit(func() {
			defer wg.Done()
			outcomes[idx] = s.fetchForm(ctx, formID, filter, limit)
		}); err != nil {
			wg.Done()
			outcomes[idx] = outcome{formID: formID, err: fmt.Errorf("failed to submit fetch task: %w", err)}
		}
	}
	wg.Wait()
	return outcomes
}

// fetchForm fetches a single page of submissions for one form, ordered by
// creation time, and tags each record with its source form ID.
func (s *Searcher) fetchForm(ctx context.Context, formID string, filter map[string]any, limit int) outcome {
	raw, err := s.client.GetFormSubmissions(ctx, formID, 0, limit, filter, "created_at")
	if err != nil {
		return outcome{formID: formID, err: err}
	}
	list, ok := raw.([]any)
	if !ok {
		return outcome{formID: formID, err: errors.New("unexpected result type from API")}
	}
	submissions := make([]map[string]any, 0, len(list))
	for _, entry := range list {
		sub, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		sub[sourceFormIDKey] = formID
		submissions = append(submissions, sub)
	}
	return outcome{formID: formID, submissions: submissions}
}
