package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/land-records", nil)
	w := httptest.NewRecorder()
	JWTMiddleware(okHandler()).ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestJWTMiddlewareRejectsMalformedHeader(t *testing.T) {
	for _, header := range []string{"Token abc", "bearer", "abc"} {
		req := httptest.NewRequest("GET", "/api/v1/land-records", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		JWTMiddleware(okHandler()).ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestJWTMiddlewareAcceptsIssuedToken(t *testing.T) {
	token, err := GenerateToken("0b7cb10e-7e9c-4d61-a1f3-02a3f8f2f2aa", "registrar", "Test User")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var got *Claims
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetClaims(r)
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest("GET", "/api/v1/land-records", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	JWTMiddleware(inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got == nil || got.Role != "registrar" || got.Name != "Test User" {
		t.Fatalf("claims = %+v, want registrar/Test User", got)
	}
	if _, err := got.UserUUID(); err != nil {
		t.Errorf("UserUUID: %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
		want    int
	}{
		{"matching role", "registrar", []string{"registrar"}, http.StatusOK},
		{"admin bypass", "admin", []string{"registrar"}, http.StatusOK},
		{"wrong role", "operator", []string{"registrar"}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken("0b7cb10e-7e9c-4d61-a1f3-02a3f8f2f2aa", tt.role, "Test User")
			if err != nil {
				t.Fatalf("GenerateToken: %v", err)
			}
			req := httptest.NewRequest("GET", "/api/v1/regions", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			JWTMiddleware(RequireRole(tt.allowed...)(okHandler())).ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
