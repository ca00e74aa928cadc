package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/restoreassist/billing/internal/dto"
	"github.com/restoreassist/billing/internal/generation"
	"github.com/restoreassist/billing/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ReportHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGenerateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.GenerateReportResponseDTO
	}{
		{
			name: "Successful generation",
			body: `{"prompt":"Summarize water damage at 12 Harbour St","max_tokens":1024}`,
			prepareMock: func() {
				service.EXPECT().
					Generate(gomock.Any(), generation.PromptPayload{
						Prompt:    "Summarize water damage at 12 Harbour St",
						MaxTokens: 1024,
					}).
					Return(&generation.Result{
						Text:      "Category 2 water loss affecting two rooms.",
						ModelUsed: "claude-3-5-sonnet-20241022",
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.GenerateReportResponseDTO{
				Text:      "Category 2 water loss affecting two rooms.",
				ModelUsed: "claude-3-5-sonnet-20241022",
			},
		},
		{
			name:          "Invalid request body",
			body:          `{"prompt":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Empty prompt",
			body:          `{"prompt":""}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "prompt is required",
		},
		{
			name: "All models exhausted",
			body: `{"prompt":"Summarize"}`,
			prepareMock: func() {
				service.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: all 3 models exhausted", generation.ErrGenerationFailed))
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "generation failed",
		},
		{
			name: "Internal server error",
			body: `{"prompt":"Summarize"}`,
			prepareMock: func() {
				service.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/reports/generate", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.Generate(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.GenerateReportResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
