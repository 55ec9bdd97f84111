package api

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-site-backend/services"
)

func TestShareOnLinkedIn(t *testing.T) {
	env := newTestEnv(t)
	alice := env.token("alice", "Alice")
	project := createProject(t, env, alice, map[string]interface{}{
		"title": "Portfolio", "description": "d", "technologies": []string{"Go"},
	})

	rec := env.do(http.MethodPost, "/api/share/linkedin", alice, map[string]string{"projectId": project.ID.String()})
	expectStatus(t, rec, http.StatusOK)
	share := decodeResponse[services.LinkedInShare](t, rec)

	wantShare := "https://portfolio.example/projects/" + project.ID.String()
	if share.ShareURL != wantShare {
		t.Errorf("shareUrl = %q", share.ShareURL)
	}
	if !strings.HasPrefix(share.LinkedInURL, "https://www.linkedin.com/sharing/share-offsite/?url="+url.QueryEscape(wantShare)) {
		t.Errorf("linkedinUrl = %q", share.LinkedInURL)
	}
	if !strings.Contains(share.ShareText, "#go") {
		t.Errorf("shareText = %q", share.ShareText)
	}

	expectStatus(t, env.do(http.MethodPost, "/api/share/linkedin", alice, map[string]string{"projectId": "00000000-0000-4000-8000-000000000000"}), http.StatusNotFound)
	expectStatus(t, env.do(http.MethodPost, "/api/share/linkedin", alice, map[string]string{"projectId": "nope"}), http.StatusBadRequest)
	expectStatus(t, env.do(http.MethodPost, "/api/share/linkedin", alice, map[string]string{}), http.StatusBadRequest)
	expectStatus(t, env.do(http.MethodPost, "/api/share/linkedin", "", map[string]string{"projectId": project.ID.String()}), http.StatusUnauthorized)
}

func TestShareFallsBackToRequestHost(t *testing.T) {
	h := shareHandler{}
	r, _ := http.NewRequest(http.MethodPost, "http://api.example:8080/api/share/linkedin", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	if got := h.publicBaseURL(r); got != "https://api.example:8080" {
		t.Errorf("publicBaseURL = %q", got)
	}
}

func TestShareDraftOnlyByOwner(t *testing.T) {
	env := newTestEnv(t)
	alice := env.token("alice", "Alice")
	bob := env.token("bob", "Bob")
	draft := createProject(t, env, alice, map[string]interface{}{"title": "Secret", "description": "d"})
	live := createProject(t, env, alice, map[string]interface{}{"title": "Live", "description": "d", "isPublished": true})

	rec := env.do(http.MethodPost, "/api/share/linkedin", bob, map[string]string{"projectId": draft.ID.String()})
	expectStatus(t, rec, http.StatusNotFound)
	if strings.Contains(rec.Body.String(), "Secret") {
		t.Errorf("draft title leaked: %s", rec.Body.String())
	}

	expectStatus(t, env.do(http.MethodPost, "/api/share/linkedin", alice, map[string]string{"projectId": draft.ID.String()}), http.StatusOK)
	expectStatus(t, env.do(http.MethodPost, "/api/share/linkedin", bob, map[string]string{"projectId": live.ID.String()}), http.StatusOK)
}
