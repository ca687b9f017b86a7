package authz

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-api/internal/service"
)

type stubVerifier struct {
	claims *service.Claims
	err    error
	tokens []string
}

func (s *stubVerifier) Verify(token string) (*service.Claims, error) {
	s.tokens = append(s.tokens, token)
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func guarded(v *stubVerifier) (http.Handler, *bool, **service.Claims) {
	reached := false
	var seen *service.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		seen, _ = ClaimsFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return NewGuard(v).Middleware(next), &reached, &seen
}

func TestGuardAdmitsValidToken(t *testing.T) {
	v := &stubVerifier{claims: &service.Claims{UserID: 5, Email: "a@x.com"}}
	handler, reached, seen := guarded(v)

	req := httptest.NewRequest(http.MethodGet, "/orders/user/5/current", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !*reached {
		t.Fatal("handler must run for a valid token")
	}
	if *seen == nil || (*seen).UserID != 5 {
		t.Fatalf("claims not propagated: %+v", *seen)
	}
	if len(v.tokens) != 1 || v.tokens[0] != "some-token" {
		t.Fatalf("unexpected tokens passed to verifier: %v", v.tokens)
	}
}

func TestGuardRejectsUniformly(t *testing.T) {
	cases := []struct {
		name   string
		header string
		err    error
	}{
		{"missing header", "", nil},
		{"not bearer", "Basic abc", nil},
		{"bad token", "Bearer nope", errors.New("bad signature")},
		{"expired token", "Bearer old", errors.New("token expired")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := &stubVerifier{err: c.err, claims: &service.Claims{UserID: 1}}
			if c.err == nil {
				v.err = errors.New("should not be called")
			}
			handler, reached, _ := guarded(v)

			req := httptest.NewRequest(http.MethodPost, "/orders", nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if *reached {
				t.Fatal("handler must not run on rejection")
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			// Every failure mode yields the same body; no verification
			// internals leak to the client.
			if body["error"] != "Unauthorized" {
				t.Fatalf("expected uniform Unauthorized body, got %v", body)
			}
		})
	}
}

func TestGuardAcceptsLowercaseScheme(t *testing.T) {
	v := &stubVerifier{claims: &service.Claims{UserID: 5}}
	handler, reached, _ := guarded(v)

	req := httptest.NewRequest(http.MethodGet, "/orders/user/5/current", nil)
	req.Header.Set("Authorization", "bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !*reached {
		t.Fatalf("expected admission, got %d", rec.Code)
	}
}
