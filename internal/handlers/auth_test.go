package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"quizforge/internal/service"
)

func TestSignUp_Success(t *testing.T) {
	auth := &mockAuth{}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := formRequest("/signup", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"s3cr3t"},
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["status"] != "success" {
		t.Fatalf("expected status success, got %v", m["status"])
	}
	if auth.lastSignUpEmail != "alice@example.com" || auth.lastSignUpUsername != "alice" {
		t.Fatalf("service got username=%q email=%q", auth.lastSignUpUsername, auth.lastSignUpEmail)
	}
}

func TestSignUp_DuplicateEmailIsSoftFailure(t *testing.T) {
	auth := &mockAuth{signUpErr: service.ErrEmailTaken}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/signup", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"s3cr3t"},
	}))

	// Soft failure: HTTP 200 with status "fail" in the body.
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for duplicate email, got %d", w.Code)
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["status"] != "fail" {
		t.Fatalf("expected status fail, got %v", m["status"])
	}
	if m["msg"] != "Email already registered" {
		t.Fatalf("unexpected msg: %v", m["msg"])
	}
}

func TestSignUp_MissingFields(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest("/signup", url.Values{"username": {"alice"}}))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}
}

func TestLogIn(t *testing.T) {
	cases := []struct {
		name       string
		loginToken string
		loginErr   error
		wantCode   int
		wantStatus string
		wantToken  string
		wantMsg    string
	}{
		{
			name:       "success returns token",
			loginToken: "tok123",
			wantCode:   http.StatusOK,
			wantStatus: "success",
			wantToken:  "tok123",
		},
		{
			name:       "unknown email is soft failure",
			loginErr:   service.ErrUserNotFound,
			wantCode:   http.StatusOK,
			wantStatus: "fail",
			wantMsg:    "User not found",
		},
		{
			name:       "wrong password is soft failure",
			loginErr:   service.ErrWrongPassword,
			wantCode:   http.StatusOK,
			wantStatus: "fail",
			wantMsg:    "Wrong password",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{loginToken: tc.loginToken, loginErr: tc.loginErr}
			s := &service.Service{Authorization: auth}
			r := newTestRouter(s)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, formRequest("/login", url.Values{
				"email":    {"alice@example.com"},
				"password": {"s3cr3t"},
			}))

			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			var m map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &m)
			if m["status"] != tc.wantStatus {
				t.Fatalf("body status: got %v, want %q", m["status"], tc.wantStatus)
			}
			if tc.wantToken != "" && m["token"] != tc.wantToken {
				t.Fatalf("token: got %v, want %q", m["token"], tc.wantToken)
			}
			if tc.wantMsg != "" && m["msg"] != tc.wantMsg {
				t.Fatalf("msg: got %v, want %q", m["msg"], tc.wantMsg)
			}
			// No token key on failed logins.
			if tc.wantStatus == "fail" {
				if _, ok := m["token"]; ok {
					t.Fatalf("failed login must not include a token, body=%s", w.Body.String())
				}
			}
		})
	}
}
