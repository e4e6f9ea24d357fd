package handlers

import (
	"net/http"
	"testing"

	"github.com/lunara-store/go-store-backend/internal/domain"
	"github.com/lunara-store/go-store-backend/internal/services"
)

func TestRegister_Success(t *testing.T) {
	auth := &stubAuthSvc{
		registerUser: &domain.PublicUser{ID: "u1", Name: "Meera", Email: "meera@example.com"},
		token:        "tok-1",
	}
	h := New(&stubChatSvc{}, auth, &stubPaySvc{}, &stubNewsSvc{}, &stubCatalogSvc{})
	r := newEngine(h, "")

	w := doJSON(t, r, http.MethodPost, "/register",
		RegisterRequest{Name: "Meera", Email: "meera@example.com", Password: "secret1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
	var got AuthResponse
	decode(t, w, &got)
	if !got.Success || got.User.ID != "u1" || got.Token != "tok-1" {
		t.Errorf("response = %+v", got)
	}
}

func TestRegister_ErrorMapping(t *testing.T) {
	cases := map[string]struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		"missing fields":  {services.ErrMissingFields, http.StatusBadRequest, ErrCodeBadRequest},
		"weak password":   {services.ErrWeakPassword, http.StatusBadRequest, ErrCodeWeakPassword},
		"duplicate email": {services.ErrDuplicateEmail, http.StatusConflict, ErrCodeConflict},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h := New(&stubChatSvc{}, &stubAuthSvc{registerErr: tc.err}, &stubPaySvc{}, &stubNewsSvc{}, &stubCatalogSvc{})
			r := newEngine(h, "")

			w := doJSON(t, r, http.MethodPost, "/register",
				RegisterRequest{Name: "A", Email: "a@b.com", Password: "x"})
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			var got ErrorResponse
			decode(t, w, &got)
			if got.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", got.Code, tc.wantCode)
			}
		})
	}
}

func TestLogin_Success(t *testing.T) {
	auth := &stubAuthSvc{
		loginUser: &domain.PublicUser{ID: "u1", Name: "Meera", Email: "meera@example.com"},
		token:     "tok-2",
	}
	h := New(&stubChatSvc{}, auth, &stubPaySvc{}, &stubNewsSvc{}, &stubCatalogSvc{})
	r := newEngine(h, "")

	w := doJSON(t, r, http.MethodPost, "/login",
		LoginRequest{Email: "meera@example.com", Password: "secret1"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got AuthResponse
	decode(t, w, &got)
	if !got.Success || got.Token != "tok-2" {
		t.Errorf("response = %+v", got)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h := New(&stubChatSvc{}, &stubAuthSvc{loginErr: services.ErrInvalidCredentials}, &stubPaySvc{}, &stubNewsSvc{}, &stubCatalogSvc{})
	r := newEngine(h, "")

	w := doJSON(t, r, http.MethodPost, "/login",
		LoginRequest{Email: "meera@example.com", Password: "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	var got ErrorResponse
	decode(t, w, &got)
	if got.Code != ErrCodeInvalidCredentials {
		t.Errorf("code = %q", got.Code)
	}
}

func TestLogout(t *testing.T) {
	h := New(&stubChatSvc{}, &stubAuthSvc{}, &stubPaySvc{}, &stubNewsSvc{}, &stubCatalogSvc{})
	r := newEngine(h, "")

	w := doJSON(t, r, http.MethodPost, "/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got map[string]any
	decode(t, w, &got)
	if got["success"] != true {
		t.Errorf("body = %v", got)
	}
}

func TestCurrentUser(t *testing.T) {
	auth := &stubAuthSvc{currentUser: &domain.PublicUser{ID: "u1", Name: "Meera", Email: "meera@example.com"}}
	h := New(&stubChatSvc{}, auth, &stubPaySvc{}, &stubNewsSvc{}, &stubCatalogSvc{})

	// Authenticated
	w := doJSON(t, newEngine(h, "u1"), http.MethodGet, "/user", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got UserResponse
	decode(t, w, &got)
	if !got.Success || got.User.Email != "meera@example.com" {
		t.Errorf("response = %+v", got)
	}

	// Anonymous
	w = doJSON(t, newEngine(h, ""), http.MethodGet, "/user", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d", w.Code)
	}

	// Stale token: user deleted since issuance
	h = New(&stubChatSvc{}, &stubAuthSvc{currentErr: services.ErrUserNotFound}, &stubPaySvc{}, &stubNewsSvc{}, &stubCatalogSvc{})
	w = doJSON(t, newEngine(h, "gone"), http.MethodGet, "/user", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("stale token status = %d", w.Code)
	}
}
