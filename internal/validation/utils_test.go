package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/games-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nameRequest struct {
	Name  string `json:"name" validate:"required,notblank"`
	Count int    `json:"count" validate:"gte=0,lte=10"`
}

func (r *nameRequest) Validate() error {
	return Struct(r)
}

type messagedRequest struct {
	nameRequest
}

func (r *messagedRequest) ValidationMessage() string {
	return "Invalid name."
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "thing", Message: "is wrong"}}
}

type pageRequest struct {
	Limit int64 `query:"limit" validate:"gte=0"`
}

func (r *pageRequest) Validate() error {
	return Struct(r)
}

func newContext(method, body string) echo.Context {
	contentType := ""
	if body != "" {
		contentType = echo.MIMEApplicationJSON
	}
	return newContextWithType(method, "/", body, contentType)
}

func newContextWithType(method, target, body, contentType string) echo.Context {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidateSuccess(t *testing.T) {
	req := &nameRequest{}
	err := BindAndValidate(newContext(http.MethodPost, `{"name":"  Chess ","count":3}`), req)

	require.NoError(t, err)
	assert.Equal(t, "  Chess ", req.Name)
	assert.Equal(t, 3, req.Count)
}

func TestBindAndValidateFailures(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		msg   string
	}{
		{"missing", `{}`, "name", "is required"},
		{"empty", `{"name":""}`, "name", "is required"},
		{"blank", `{"name":" \t\n "}`, "name", "must not be blank"},
		{"too many", `{"name":"x","count":11}`, "count", "must not exceed 10"},
		{"no body", ``, "name", "is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BindAndValidate(newContext(http.MethodPost, tt.body), &nameRequest{})

			httpErr := asHTTPError(t, err)
			assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
			assert.Equal(t, "Validation failed", httpErr.Message)
			require.Len(t, httpErr.Errors, 1)
			assert.Equal(t, tt.field, httpErr.Errors[0].Field)
			assert.Equal(t, tt.msg, httpErr.Errors[0].Error)
		})
	}
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, `{"name":`), &nameRequest{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Malformed JSON body", httpErr.Message)
	assert.NotContains(t, httpErr.Message, "offset")
}

func TestBindAndValidateWrongFieldType(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, `{"name":5}`), &messagedRequest{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, "Invalid name.", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "has an invalid type"}}, httpErr.Errors)
}

func TestBindAndValidateIgnoresNonJSONBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
	}{
		{name: "plain text", contentType: echo.MIMETextPlain},
		{name: "no content type", contentType: ""},
		{name: "form", contentType: echo.MIMEApplicationForm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &nameRequest{}
			err := BindAndValidate(newContextWithType(http.MethodPost, "/", `{"name":"Chess"}`, tt.contentType), req)

			httpErr := asHTTPError(t, err)
			assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
			assert.Empty(t, req.Name)
		})
	}
}

func TestBindAndValidateJSONWithCharset(t *testing.T) {
	req := &nameRequest{}
	err := BindAndValidate(newContextWithType(http.MethodPost, "/", `{"name":"Chess"}`, "application/json; charset=utf-8"), req)

	require.NoError(t, err)
	assert.Equal(t, "Chess", req.Name)
}

func TestBindAndValidateQuery(t *testing.T) {
	req := &pageRequest{}
	require.NoError(t, BindAndValidate(newContextWithType(http.MethodGet, "/?limit=5", "", ""), req))
	assert.Equal(t, int64(5), req.Limit)

	err := BindAndValidate(newContextWithType(http.MethodGet, "/?limit=five", "", ""), &pageRequest{})
	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Invalid request parameters", httpErr.Message)
}

func TestNotBlankRule(t *testing.T) {
	assert.Error(t, Validator().Var(" \t ", "notblank"))
	assert.NoError(t, Validator().Var(" x ", "notblank"))
}

func TestBindAndValidateFailureMessage(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, `{"name":"   "}`), &messagedRequest{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, "Invalid name.", httpErr.Message)
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodGet, ""), &customRequest{})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, []errs.FieldError{{Field: "thing", Error: "is wrong"}}, httpErr.Errors)
}
