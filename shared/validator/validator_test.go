package validator_test

import (
	"strings"
	"taskboard/shared/failure"
	"taskboard/shared/validator"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testPayload struct {
	Title       string `json:"title" validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"required,notblank,max=255"`
	IsCompleted bool   `json:"isCompleted"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		wantMsg []string
	}{
		{
			name: "valid payload",
			body: `{"title":"Buy milk","description":"2%"}`,
		},
		{
			name:    "missing title",
			body:    `{"description":"x"}`,
			wantErr: true,
			wantMsg: []string{"title is required"},
		},
		{
			name:    "whitespace-only description",
			body:    `{"title":"x","description":"   "}`,
			wantErr: true,
			wantMsg: []string{"description is required"},
		},
		{
			name:    "both fields blank reported together",
			body:    `{"title":"","description":""}`,
			wantErr: true,
			wantMsg: []string{"title is required", "description is required"},
		},
		{
			name:    "malformed json",
			body:    `{"title":`,
			wantErr: true,
			wantMsg: []string{"failed to decode request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := testPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))

			for _, fragment := range tt.wantMsg {
				assert.Contains(t, err.Error(), fragment)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	payload := testPayload{Title: "ok", Description: "ok"}
	assert.NoError(t, validator.ValidateStruct(&payload))

	payload = testPayload{Title: " ", Description: "ok"}
	err := validator.ValidateStruct(&payload)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("hello", "notblank"))
	assert.Error(t, validator.ValidateVar("  ", "notblank"))
}
