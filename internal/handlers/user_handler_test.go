package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
	"github.com/harentsoaR/doctors-portal-api/internal/utils"
)

func TestGetAdminStatus(t *testing.T) {
	h := newTestHandler(&store.Store{
		Users: &fakeUserStore{users: map[string]models.User{
			"admin@x.com": {Email: "admin@x.com", Role: "admin"},
			"user@x.com":  {Email: "user@x.com"},
		}},
	})

	r := gin.New()
	r.GET("/admin/:email", h.GetAdminStatus)

	tests := []struct {
		email string
		want  bool
	}{
		{"admin@x.com", true},
		{"user@x.com", false},
		{"ghost@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin/"+tt.email, nil)
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status: got %d, want %d", w.Code, http.StatusOK)
			}
			var body map[string]bool
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body["admin"] != tt.want {
				t.Errorf("admin: got %v, want %v", body["admin"], tt.want)
			}
		})
	}
}

func TestUpsertUserIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	users := &fakeUserStore{}
	h := newTestHandler(&store.Store{Users: users})

	r := gin.New()
	r.PUT("/user/:email", h.UpsertUser)

	body, _ := json.Marshal(map[string]string{"name": "Ada"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/ada@x.com", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Token  string              `json:"token"`
		Result *store.UpdateResult `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token in the response")
	}

	claims, err := utils.ValidateJWT(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Email != "ada@x.com" {
		t.Errorf("token email: got %q, want %q", claims.Email, "ada@x.com")
	}

	saved, ok := users.users["ada@x.com"]
	if !ok {
		t.Fatal("user was not upserted")
	}
	if saved.Email != "ada@x.com" || saved.Name != "Ada" {
		t.Errorf("saved user: %+v", saved)
	}
}

func TestMakeAdmin(t *testing.T) {
	users := &fakeUserStore{users: map[string]models.User{
		"user@x.com": {Email: "user@x.com"},
	}}
	h := newTestHandler(&store.Store{Users: users})

	r := gin.New()
	r.PUT("/user/:email/role", h.MakeAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/user@x.com/role", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusOK)
	}
	if users.users["user@x.com"].Role != "admin" {
		t.Errorf("role: got %q, want %q", users.users["user@x.com"].Role, "admin")
	}
}
