package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/models"
)

func TestNewLinkedInShare(t *testing.T) {
	id := uuid.MustParse("6f1c1a8e-0000-4000-8000-000000000001")
	project := &models.Project{
		ID:           id,
		Title:        "Portfolio",
		Description:  "A personal site.",
		Technologies: []string{"Go", "C++", "Next.js", "3D"},
	}

	share := NewLinkedInShare("https://example.com/", project)

	wantShare := "https://example.com/projects/" + id.String()
	if share.ShareURL != wantShare {
		t.Errorf("ShareURL = %q", share.ShareURL)
	}

	parsed, err := url.Parse(share.LinkedInURL)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Host != "www.linkedin.com" || parsed.Path != "/sharing/share-offsite/" {
		t.Errorf("LinkedInURL = %q", share.LinkedInURL)
	}
	if parsed.Query().Get("url") != wantShare {
		t.Errorf("url param = %q", parsed.Query().Get("url"))
	}

	for _, want := range []string{"Portfolio", "A personal site.", wantShare, "#go #cplusplus #nextjs"} {
		if !strings.Contains(share.ShareText, want) {
			t.Errorf("ShareText missing %q:\n%s", want, share.ShareText)
		}
	}
	if strings.Contains(share.ShareText, "#3d") {
		t.Error("hashtag starting with a digit kept")
	}
}

func TestShareTextTruncatesLongDescriptions(t *testing.T) {
	project := &models.Project{ID: uuid.New(), Title: "T", Description: strings.Repeat("word ", 200)}
	text := buildLinkedInShareText(project, "")
	if !strings.HasSuffix(text, "...") {
		t.Errorf("long description not truncated: %q", text[len(text)-20:])
	}
}

func TestFormatHashtag(t *testing.T) {
	cases := map[string]string{
		"":                 "",
		"  Go  ":           "go",
		"Node.js":          "nodejs",
		"machine_learning": "machine_learning",
		"C#":               "csharp",
		"2fa":              "",
		"Tailwind CSS":     "tailwindcss",
	}
	for in, want := range cases {
		if got := FormatHashtag(in); got != want {
			t.Errorf("FormatHashtag(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Web Development": "web-development",
		"  AI / ML  ":     "ai-ml",
		"C++ Tools":       "c-tools",
		"---":             "",
		"Already-a-slug":  "already-a-slug",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildProjectURL(t *testing.T) {
	if got := BuildProjectURL("", "id"); got != "" {
		t.Errorf("empty base = %q", got)
	}
	if got := GetBaseURL(map[string]string{"PUBLIC_BASE_URL": "https://a.example/"}); got != "https://a.example" {
		t.Errorf("GetBaseURL = %q", got)
	}
}
