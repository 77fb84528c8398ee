package genai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-portfolio-backend/pkg/genai"

	"github.com/stretchr/testify/assert"
)

func TestGenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hello back"}]}}]}`))
	}))
	defer srv.Close()

	c := genai.NewClient("test-key", "gemini-1.5-flash")
	c.BaseURL = srv.URL

	text, err := c.GenerateText(context.Background(), "Hello")
	assert.NoError(t, err)
	assert.Equal(t, "Hello back", text)
}

func TestGenerateTextAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	c := genai.NewClient("bad-key", "gemini-1.5-flash")
	c.BaseURL = srv.URL

	_, err := c.GenerateText(context.Background(), "Hello")
	assert.ErrorContains(t, err, "API key not valid")
}

func TestGenerateTextNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := genai.NewClient("test-key", "gemini-1.5-flash")
	c.BaseURL = srv.URL

	_, err := c.GenerateText(context.Background(), "Hello")
	assert.ErrorContains(t, err, "no candidates")
}
