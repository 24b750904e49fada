package fetch

import (
	"net/url"
	"strings"
)

// Platform is a recognized job board.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkable   Platform = "workable"
	PlatformLinkedIn   Platform = "linkedin"
	PlatformUnknown    Platform = "unknown"
)

// DetectPlatform identifies a job board from a posting URL's host.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workable.com"):
		return PlatformWorkable
	case strings.Contains(host, "linkedin.com"):
		return PlatformLinkedIn
	}
	return PlatformUnknown
}

// Selectors returns content selectors for a platform, most specific
// first. Unknown platforms get the generic job-board list.
func Selectors(platform Platform) []string {
	switch platform {
	case PlatformGreenhouse:
		return []string{".job__description", ".job-description__content", "#content", "main"}
	case PlatformLever:
		return []string{".posting-description", ".posting-page", ".content", "main"}
	case PlatformWorkable:
		return []string{"[data-ui='job-description']", ".job-description", "main"}
	case PlatformLinkedIn:
		return []string{".description__text", ".show-more-less-html", "main"}
	}
	return GenericSelectors()
}

// GenericSelectors covers job boards without a dedicated entry.
func GenericSelectors() []string {
	return []string{
		".job-description",
		"#jobDescriptionText",
		".job-details-content",
		".posting-content",
		".description",
		"article",
		"main",
		".content",
		"#content",
	}
}
