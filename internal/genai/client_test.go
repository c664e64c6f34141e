package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_GenerateText_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "part one "},
					{"text": "part two"},
				}}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gemini-2.5-flash", "key123")
	text, err := c.GenerateText(context.Background(), "make me a quiz")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if text != "part one part two" {
		t.Fatalf("text: got %q", text)
	}

	if gotPath != "/v1beta/models/gemini-2.5-flash:generateContent" {
		t.Fatalf("path: got %q", gotPath)
	}
	if gotKey != "key123" {
		t.Fatalf("api key header: got %q", gotKey)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "make me a quiz" {
		t.Fatalf("request body: %+v", gotBody)
	}
}

func TestClient_GenerateText_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gemini-2.5-flash", "key123")
	_, err := c.GenerateText(context.Background(), "p")
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("error should carry the status code: %v", err)
	}
}

func TestClient_GenerateText_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gemini-2.5-flash", "key123")
	if _, err := c.GenerateText(context.Background(), "p"); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}
