package validation

import (
	"net/url"
	"strings"

	"github.com/repline-dev/repline/internal/errors"
)

// VideoRefValidator checks the optional external video reference on a
// message: absolute http(s) URL, allowlisted host, and a non-empty
// video id in the shape that host uses. Nothing is fetched; this is a
// shape check only, the video stays hosted elsewhere.
type VideoRefValidator struct {
	allowedHosts map[string]bool
}

func NewVideoRefValidator(hosts []string) *VideoRefValidator {
	allowed := make(map[string]bool, len(hosts))
	for _, h := range hosts {
		allowed[strings.ToLower(h)] = true
	}
	return &VideoRefValidator{allowedHosts: allowed}
}

func (v *VideoRefValidator) VideoRef(ref string) error {
	if ref == "" {
		return nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return errors.Validation("Video reference is not a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Validation("Video reference must be an http(s) URL")
	}

	host := strings.ToLower(u.Hostname())
	if !v.allowedHosts[host] {
		return errors.Validation("Video host is not supported")
	}

	if videoId(host, u) == "" {
		return errors.Validation("Video reference is missing a video id")
	}
	return nil
}

// videoId extracts the id portion for the known host shapes:
// youtu.be/<id>, youtube.com/watch?v=<id>, vimeo.com/<id>.
// Unknown allowlisted hosts fall back to "last path segment".
func videoId(host string, u *url.URL) string {
	path := strings.Trim(u.Path, "/")
	switch host {
	case "youtu.be":
		return firstSegment(path)
	case "youtube.com", "www.youtube.com":
		if path == "watch" {
			return u.Query().Get("v")
		}
		// shorts/<id>, embed/<id>
		if seg, rest, ok := strings.Cut(path, "/"); ok && (seg == "shorts" || seg == "embed") {
			return firstSegment(rest)
		}
		return ""
	default:
		return lastSegment(path)
	}
}

func firstSegment(path string) string {
	seg, _, _ := strings.Cut(path, "/")
	return seg
}

func lastSegment(path string) string {
	if path == "" {
		return ""
	}
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}
