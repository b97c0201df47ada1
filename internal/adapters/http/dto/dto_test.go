package dto

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotestagram/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewErrorResponse(t *testing.T) {
	got := NewErrorResponse(ErrorCodeInternal, "an internal error occurred")

	assert.Equal(t, &ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrorCodeInternal,
			Message: "an internal error occurred",
		},
	}, got)

	body, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"code":"INTERNAL_ERROR","message":"an internal error occurred"}}`, string(body))
}

func TestWithTraceID(t *testing.T) {
	resp := NewErrorResponse(ErrorCodeInternal, "an internal error occurred").
		WithTraceID("4bf92f3577b34da6a3ce929d0e0e4736")
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", resp.TraceID)

	resp.WithTraceID("")
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", resp.TraceID, "empty id keeps the previous value")
}

func TestTraceIDFromContext(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", TraceIDFromContext(ctx))
}

func TestQuoteForm_ToInput(t *testing.T) {
	form := QuoteForm{ID: "3", Content: "Be water.", Author: "Bruce Lee", GenreID: "2"}

	t.Run("path id wins", func(t *testing.T) {
		assert.Equal(t, domain.QuoteInput{
			ID:      "9",
			Content: "Be water.",
			Author:  "Bruce Lee",
			GenreID: "2",
		}, form.ToInput("9"))
	})

	t.Run("body id kept without a path id", func(t *testing.T) {
		assert.Equal(t, "3", form.ToInput("").ID)
	})
}

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    FlexString
		wantErr bool
	}{
		{name: "string", body: `{"genre_id":"2"}`, want: "2"},
		{name: "integer", body: `{"genre_id":2}`, want: "2"},
		{name: "decimal", body: `{"genre_id":2.5}`, want: "2.5"},
		{name: "null", body: `{"genre_id":null}`, want: ""},
		{name: "missing", body: `{}`, want: ""},
		{name: "non-numeric string kept raw", body: `{"genre_id":"abc"}`, want: "abc"},
		{name: "boolean rejected", body: `{"genre_id":true}`, wantErr: true},
		{name: "object rejected", body: `{"genre_id":{}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var form QuoteForm
			err := json.Unmarshal([]byte(tt.body), &form)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, form.GenreID)
		})
	}
}

func TestValidator(t *testing.T) {
	v1 := Validator()
	v2 := Validator()

	require.NotNil(t, v1)
	assert.Same(t, v1, v2)
}

func TestValidate(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		assert.NoError(t, Validate(&QuoteForm{GenreID: "1"}))
	})

	t.Run("missing genre", func(t *testing.T) {
		err := Validate(&QuoteForm{Content: "Be water."})

		require.Error(t, err)
		require.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, map[string]string{"genre_id": "this field is required"}, ValidationErrors(err))
	})
}

func newBindContext(t *testing.T, contentType, body string) *gin.Context {
	t.Helper()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", contentType)

	return c
}

func TestBindBodyAndValidate(t *testing.T) {
	form := url.Values{
		"content":  {"Be water."},
		"author":   {"Bruce Lee"},
		"genre_id": {"2"},
	}.Encode()

	tests := []struct {
		name        string
		contentType string
		body        string
		want        QuoteForm
		wantErr     error
	}{
		{
			name:        "urlencoded form",
			contentType: "application/x-www-form-urlencoded",
			body:        form,
			want:        QuoteForm{Content: "Be water.", Author: "Bruce Lee", GenreID: "2"},
		},
		{
			name:        "json with numeric genre",
			contentType: "application/json",
			body:        `{"content":"Be water.","author":"Bruce Lee","genre_id":2}`,
			want:        QuoteForm{Content: "Be water.", Author: "Bruce Lee", GenreID: "2"},
		},
		{
			name:        "malformed json",
			contentType: "application/json",
			body:        `{"content":`,
			wantErr:     ErrBinding,
		},
		{
			name:        "form without genre",
			contentType: "application/x-www-form-urlencoded",
			body:        "content=hello&author=me",
			wantErr:     ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newBindContext(t, tt.contentType, tt.body)

			var got QuoteForm
			err := BindBodyAndValidate(c, &got)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidationErrors_NonValidatorError(t *testing.T) {
	assert.Empty(t, ValidationErrors(errors.New("boom")))
}

func TestValidationMessage(t *testing.T) {
	type testStruct struct {
		Name string `json:"name" validate:"required"`
		Mail string `json:"mail" validate:"email"`
	}

	err := Validator().Struct(&testStruct{Mail: "nope"})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	got := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		got[fe.Field()] = validationMessage(fe)
	}

	assert.Equal(t, map[string]string{
		"name": "this field is required",
		"mail": "failed validation: email",
	}, got)
}
