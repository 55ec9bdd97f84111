package services

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/rpupo63/portfolio-site-backend/models"
)

const (
	linkedInShareEndpoint = "https://www.linkedin.com/sharing/share-offsite/"
	maxShareDescription   = 280
)

// LinkedInShare is everything the client needs to open LinkedIn's share dialog.
type LinkedInShare struct {
	ShareURL    string `json:"shareUrl"`
	LinkedInURL string `json:"linkedinUrl"`
	ShareText   string `json:"shareText"`
}

// NewLinkedInShare builds share links for project under baseURL.
func NewLinkedInShare(baseURL string, project *models.Project) LinkedInShare {
	shareURL := BuildProjectURL(baseURL, project.ID.String())
	return LinkedInShare{
		ShareURL:    shareURL,
		LinkedInURL: linkedInShareEndpoint + "?url=" + url.QueryEscape(shareURL),
		ShareText:   buildLinkedInShareText(project, shareURL),
	}
}

// buildLinkedInShareText constructs the suggested post text: title, a trimmed
// description, the link and hashtags from the project's technologies.
func buildLinkedInShareText(project *models.Project, shareURL string) string {
	var parts []string

	if project.Title != "" {
		parts = append(parts, project.Title)
	}

	if description := strings.TrimSpace(project.Description); description != "" {
		if utf8.RuneCountInString(description) > maxShareDescription {
			runes := []rune(description)
			truncated := string(runes[:maxShareDescription])
			if lastPeriod := strings.LastIndex(truncated, "."); lastPeriod > len(truncated)/2 {
				description = truncated[:lastPeriod+1]
			} else {
				description = strings.TrimSpace(truncated) + "..."
			}
		}
		parts = append(parts, description)
	}

	if shareURL != "" {
		parts = append(parts, "Check it out: "+shareURL)
	}

	if hashtags := Hashtags(project.Technologies); len(hashtags) > 0 {
		parts = append(parts, strings.Join(hashtags, " "))
	}

	return strings.Join(parts, "\n\n")
}
