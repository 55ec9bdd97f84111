package api

import (
	"net/http"
	"testing"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

func TestCategories(t *testing.T) {
	env := newTestEnv(t)
	alice := env.token("alice", "Alice")

	rec := env.do(http.MethodPost, "/api/categories", alice, map[string]string{"name": "Web Development"})
	expectStatus(t, rec, http.StatusCreated)
	created := decodeResponse[models.Category](t, rec)
	if created.Slug != "web-development" || created.Color != models.DefaultCategoryColor {
		t.Errorf("created = %+v", created)
	}

	rec = env.do(http.MethodPost, "/api/categories", alice, map[string]string{"name": "AI", "slug": "machine-learning", "color": "#FF00aa"})
	expectStatus(t, rec, http.StatusCreated)

	rec = env.do(http.MethodGet, "/api/categories", "", nil)
	expectStatus(t, rec, http.StatusOK)
	all := decodeResponse[[]models.Category](t, rec)
	if len(all) != 2 || all[0].Name != "AI" || all[1].Name != "Web Development" {
		t.Errorf("categories = %+v", all)
	}

	rec = env.do(http.MethodGet, "/api/categories/machine-learning", "", nil)
	expectStatus(t, rec, http.StatusOK)
	if got := decodeResponse[models.Category](t, rec); got.Color != "#FF00aa" {
		t.Errorf("color = %q", got.Color)
	}
	expectStatus(t, env.do(http.MethodGet, "/api/categories/unknown", "", nil), http.StatusNotFound)
}

func TestCreateCategoryErrors(t *testing.T) {
	env := newTestEnv(t)
	alice := env.token("alice", "Alice")
	expectStatus(t, env.do(http.MethodPost, "/api/categories", alice, map[string]string{"name": "Web"}), http.StatusCreated)

	cases := []struct {
		name  string
		token string
		body  interface{}
		want  int
	}{
		{"duplicate slug", alice, map[string]string{"name": "web"}, http.StatusConflict},
		{"short color", alice, map[string]string{"name": "Apps", "color": "#FFF"}, http.StatusBadRequest},
		{"named color", alice, map[string]string{"name": "Apps", "color": "blue"}, http.StatusBadRequest},
		{"missing name", alice, map[string]string{"slug": "x"}, http.StatusBadRequest},
		{"name without slug characters", alice, map[string]string{"name": "!!!"}, http.StatusBadRequest},
		{"anonymous", "", map[string]string{"name": "Apps"}, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.do(http.MethodPost, "/api/categories", tc.token, tc.body)
			expectStatus(t, rec, tc.want)
			if tc.want == http.StatusConflict {
				if got := decodeResponse[ErrorResponse](t, rec); got.Error != "category "+errs.ErrAlreadyExists.Error() {
					t.Errorf("conflict body = %+v", got)
				}
			}
		})
	}
}
