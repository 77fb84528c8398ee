package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-portfolio-backend/config"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/client"
	"go-portfolio-backend/pkg/form"
	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	m.Run()
}

type MockContactUC struct {
	mock.Mock
}

func (m *MockContactUC) Dispatch(ctx context.Context, req *domain.ContactRequest) *domain.DispatchResult {
	return m.Called(ctx, req).Get(0).(*domain.DispatchResult)
}

type MockChatUC struct {
	mock.Mock
}

func (m *MockChatUC) Reply(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func newTestRouter(contactUC domain.ContactUsecase, chatUC domain.ChatUsecase) *gin.Engine {
	return v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ChatUC:    chatUC,
		Config:    &config.Config{FrontendURL: "http://localhost:3000"},
	})
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestSubmitContactSuccess(t *testing.T) {
	contactUC := new(MockContactUC)
	contactUC.On("Dispatch", mock.Anything, &domain.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello, this is a test message.",
	}).Return(&domain.DispatchResult{Success: true, MessageID: "<id@relay>"}).Once()

	router := newTestRouter(contactUC, new(MockChatUC))
	rec := postJSON(router, "/v1/contact", `{"name":"Jane Doe","email":"jane@example.com","message":"Hello, this is a test message."}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Your message has been sent successfully!", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "<id@relay>", data["message_id"])
	assert.NotEmpty(t, body["request_id"])
	contactUC.AssertExpectations(t)
}

func TestSubmitContactFailureStatus(t *testing.T) {
	tests := []struct {
		name       string
		result     *domain.DispatchResult
		wantStatus int
	}{
		{
			name: "invalid input is a bad request",
			result: &domain.DispatchResult{
				Success:  false,
				Category: domain.CategoryInvalidInput,
				Error:    "Missing required fields",
				Detail:   "Name, email, and message are required",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "transport unavailable is 503",
			result: &domain.DispatchResult{
				Success:  false,
				Category: domain.CategoryTransportUnavailable,
				Error:    "Email service configuration error",
				Detail:   "Unable to connect to email service",
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "auth failure is a bad gateway",
			result: &domain.DispatchResult{
				Success:  false,
				Category: domain.CategoryAuthFailure,
				Error:    "Email authentication failed",
				Detail:   "Please check your email credentials and app password",
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "unknown is a 500",
			result: &domain.DispatchResult{
				Success:  false,
				Category: domain.CategoryUnknown,
				Error:    "Failed to send email",
				Detail:   "552 message size exceeds limit",
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contactUC := new(MockContactUC)
			contactUC.On("Dispatch", mock.Anything, mock.Anything).Return(tt.result).Once()

			router := newTestRouter(contactUC, new(MockChatUC))
			rec := postJSON(router, "/v1/contact", `{"name":"Jane Doe","email":"jane@example.com","message":"Hello, this is a test message."}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeEnvelope(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.result.Error, body["message"])
			errBody := body["error"].(map[string]interface{})
			assert.Equal(t, string(tt.result.Category), errBody["category"])
			assert.Equal(t, tt.result.Detail, errBody["details"])
		})
	}
}

func TestSubmitContactMalformedJSON(t *testing.T) {
	contactUC := new(MockContactUC)
	router := newTestRouter(contactUC, new(MockChatUC))

	rec := postJSON(router, "/v1/contact", `{"name": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	contactUC.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestContactInfo(t *testing.T) {
	router := newTestRouter(new(MockContactUC), new(MockChatUC))

	req := httptest.NewRequest(http.MethodGet, "/v1/contact", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Contact form endpoint is working. Use POST to send messages.", body["message"])
}

func TestChatReply(t *testing.T) {
	chatUC := new(MockChatUC)
	chatUC.On("Reply", mock.Anything, "Who am I?").Return("- A developer\n- With opinions", nil).Once()

	router := newTestRouter(new(MockContactUC), chatUC)
	rec := postJSON(router, "/v1/chat", `{"message":"Who am I?"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "- A developer\n- With opinions", data["reply"])
	chatUC.AssertExpectations(t)
}

// The full boundary: form controller -> HTTP client -> router -> usecase.
func TestContactRoundTripThroughFormController(t *testing.T) {
	contactUC := new(MockContactUC)
	contactUC.On("Dispatch", mock.Anything, &domain.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello, this is a test message.",
	}).Return(&domain.DispatchResult{Success: true, MessageID: "<rt@relay>"}).Once()

	srv := httptest.NewServer(newTestRouter(contactUC, new(MockChatUC)))
	defer srv.Close()

	ctrl := form.NewController(client.New(srv.URL))
	ctrl.UpdateField(form.FieldName, "Jane Doe")
	ctrl.UpdateField(form.FieldEmail, "jane@example.com")
	ctrl.UpdateField(form.FieldMessage, "Hello, this is a test message.")

	assert.NoError(t, ctrl.Submit(context.Background()))
	assert.Equal(t, form.StatusSucceeded, ctrl.Status())
	assert.Equal(t, form.Draft{}, ctrl.Draft())
	contactUC.AssertExpectations(t)
}

func TestContactRoundTripAuthFailure(t *testing.T) {
	contactUC := new(MockContactUC)
	contactUC.On("Dispatch", mock.Anything, mock.Anything).Return(&domain.DispatchResult{
		Success:  false,
		Category: domain.CategoryAuthFailure,
		Error:    "Email authentication failed",
		Detail:   "Please check your email credentials and app password",
	}).Once()

	srv := httptest.NewServer(newTestRouter(contactUC, new(MockChatUC)))
	defer srv.Close()

	ctrl := form.NewController(client.New(srv.URL))
	ctrl.UpdateField(form.FieldName, "Jane Doe")
	ctrl.UpdateField(form.FieldEmail, "jane@example.com")
	ctrl.UpdateField(form.FieldMessage, "Hello, this is a test message.")

	assert.NoError(t, ctrl.Submit(context.Background()))
	assert.Equal(t, form.StatusFailed, ctrl.Status())
	assert.Equal(t, "Please check your email credentials and app password", ctrl.StatusMessage())
}
