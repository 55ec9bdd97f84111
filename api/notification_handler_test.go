package api

import (
	"net/http"
	"testing"

	"github.com/rpupo63/portfolio-site-backend/models"
)

func TestNotificationReadFlow(t *testing.T) {
	env := newTestEnv(t)
	alice := env.token("alice", "Alice")
	bob := env.token("bob", "Bob")
	project := createProject(t, env, alice, map[string]interface{}{"title": "P", "description": "d"})
	expectStatus(t, env.do(http.MethodPost, "/api/projects/"+project.ID.String()+"/like", bob, nil), http.StatusOK)

	rec := env.do(http.MethodGet, "/api/notifications?unread=true", alice, nil)
	expectStatus(t, rec, http.StatusOK)
	unread := decodeResponse[[]models.Notification](t, rec)
	if len(unread) != 1 {
		t.Fatalf("unread = %+v", unread)
	}
	note := unread[0]
	if note.RelatedProjectID == nil || *note.RelatedProjectID != project.ID || note.RelatedUserID == nil || *note.RelatedUserID != "bob" {
		t.Errorf("related fields = %+v", note)
	}
	path := "/api/notifications/" + note.ID.String() + "/read"

	expectStatus(t, env.do(http.MethodPut, path, bob, nil), http.StatusNotFound)
	expectStatus(t, env.do(http.MethodPut, "/api/notifications/00000000-0000-4000-8000-000000000000/read", alice, nil), http.StatusNotFound)
	expectStatus(t, env.do(http.MethodPut, path, alice, nil), http.StatusOK)

	rec = env.do(http.MethodGet, "/api/notifications?unread=true", alice, nil)
	if left := decodeResponse[[]models.Notification](t, rec); len(left) != 0 {
		t.Errorf("still unread: %+v", left)
	}
	rec = env.do(http.MethodGet, "/api/notifications", alice, nil)
	if all := decodeResponse[[]models.Notification](t, rec); len(all) != 1 || !all[0].IsRead {
		t.Errorf("all = %+v", all)
	}

	if others := notificationsFor(t, env, bob); len(others) != 0 {
		t.Errorf("bob sees alice's notifications: %+v", others)
	}
	expectStatus(t, env.do(http.MethodGet, "/api/notifications", "", nil), http.StatusUnauthorized)
}
