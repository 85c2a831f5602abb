package validator

import (
	"encoding/json"
	"testing"

	"courseadmin/internal/delivery/api/request"
	domainerrors "courseadmin/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string         `json:"name" label:"Sample name" validate:"notblank"`
	Kind     string         `json:"kind" validate:"omitempty,oneof=percentage fixed"`
	Score    request.Number `json:"score" validate:"present,numeric,integer,min=0,max=100"`
	Ratio    request.Number `json:"ratio" validate:"omitempty,numeric,min=0,max=1"`
	Active   request.Bool   `json:"active" validate:"omitempty,boolean"`
	Starts   request.Date   `json:"starts" validate:"omitempty,date"`
	Homepage string         `json:"homepage" validate:"omitempty,url"`
}

type rangeRequest struct {
	From request.Date `json:"from" validate:"omitempty,date"`
	To   request.Date `json:"to" validate:"omitempty,date"`
}

func (r *rangeRequest) CheckCrossFields(verr *domainerrors.ValidationError) {
	if r.From.Valid() && r.To.Valid() && r.To.Time().Before(r.From.Time()) {
		verr.Add("to", "to must not be before from")
	}
}

func decode(t *testing.T, body string, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), out))
}

func issues(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)

	out := make(map[string]string, len(verr.Issues))
	for _, issue := range verr.Issues {
		out[issue.Field] = issue.Message
	}

	return out
}

func TestValidator_AcceptsNumbersAsStrings(t *testing.T) {
	v := New()

	for _, body := range []string{
		`{"name":"a","score":42,"ratio":0.5,"active":true,"starts":"2025-01-31"}`,
		`{"name":"a","score":"42","ratio":"0.5","active":"true","starts":"2025-01-31T10:00:00Z"}`,
		`{"name":"a","score":0}`,
	} {
		var req sampleRequest
		decode(t, body, &req)
		assert.NoError(t, v.Validate(&req), body)
	}
}

func TestValidator_ReportsFieldIssues(t *testing.T) {
	v := New()

	var req sampleRequest
	decode(t, `{"name":"  ","kind":"bogus","score":"ten","ratio":2,"active":"maybe","starts":"31/01/2025","homepage":"example"}`, &req)

	got := issues(t, v.Validate(&req))

	assert.Equal(t, map[string]string{
		"name":     "Sample name is required.",
		"kind":     "kind must be one of: percentage, fixed",
		"score":    "score must be a number",
		"ratio":    "ratio must be 1 or less",
		"active":   "active must be true or false",
		"starts":   "starts must be a date (YYYY-MM-DD or RFC 3339)",
		"homepage": "homepage must be an absolute URL",
	}, got)
}

func TestValidator_MissingAndFractionalNumbers(t *testing.T) {
	v := New()

	var missing sampleRequest
	decode(t, `{"name":"a"}`, &missing)
	assert.Equal(t, "score is required", issues(t, v.Validate(&missing))["score"])

	var fractional sampleRequest
	decode(t, `{"name":"a","score":"12.5"}`, &fractional)
	assert.Equal(t, "score must be a whole number", issues(t, v.Validate(&fractional))["score"])

	var tooHigh sampleRequest
	decode(t, `{"name":"a","score":101}`, &tooHigh)
	assert.Equal(t, "score must be 100 or less", issues(t, v.Validate(&tooHigh))["score"])
}

func TestValidator_CrossFieldRules(t *testing.T) {
	v := New()

	var bad rangeRequest
	decode(t, `{"from":"2025-02-01","to":"2025-01-01"}`, &bad)
	assert.Equal(t, map[string]string{"to": "to must not be before from"}, issues(t, v.Validate(&bad)))

	var equal rangeRequest
	decode(t, `{"from":"2025-02-01","to":"2025-02-01"}`, &equal)
	assert.NoError(t, v.Validate(&equal))

	var partial rangeRequest
	decode(t, `{"to":"2025-01-01"}`, &partial)
	assert.NoError(t, v.Validate(&partial))
}

type countRequest struct {
	Count request.Number `json:"count" validate:"present,numeric,integer"`
}

func TestValidator_RejectsNonFiniteNumbers(t *testing.T) {
	v := New()

	for _, raw := range []string{`"Infinity"`, `"-Inf"`, `"NaN"`, `"1e400"`} {
		var req sampleRequest
		decode(t, `{"name":"a","score":`+raw+`}`, &req)
		assert.Equal(t, "score must be a number", issues(t, v.Validate(&req))["score"], raw)
	}
}

func TestValidator_IntegerMustFitColumn(t *testing.T) {
	v := New()

	for _, body := range []string{`{"count":2147483647}`, `{"count":-2147483648}`} {
		var ok countRequest
		decode(t, body, &ok)
		assert.NoError(t, v.Validate(&ok), body)
	}

	for _, body := range []string{`{"count":2147483648}`, `{"count":1e300}`, `{"count":"-1e17"}`} {
		var tooBig countRequest
		decode(t, body, &tooBig)
		assert.Equal(t, "count must be a whole number", issues(t, v.Validate(&tooBig))["count"], body)
	}

	var huge sampleRequest
	decode(t, `{"name":"a","score":1e300}`, &huge)
	assert.Contains(t, issues(t, v.Validate(&huge)), "score")
}
