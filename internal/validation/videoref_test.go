package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	internal_errors "github.com/repline-dev/repline/internal/errors"
)

func defaultValidator() *VideoRefValidator {
	return NewVideoRefValidator([]string{"youtube.com", "www.youtube.com", "youtu.be", "vimeo.com"})
}

func TestVideoRefValid(t *testing.T) {
	v := defaultValidator()

	valid := []string{
		"",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/abc123",
		"https://www.youtube.com/embed/abc123",
		"http://vimeo.com/76979871",
	}
	for _, ref := range valid {
		assert.NoError(t, v.VideoRef(ref), ref)
	}
}

func TestVideoRefInvalid(t *testing.T) {
	v := defaultValidator()

	invalid := []string{
		"ftp://youtu.be/abc",
		"youtu.be/abc", // no scheme
		"https://example.com/watch?v=abc",
		"https://www.youtube.com/watch",    // missing v param
		"https://www.youtube.com/playlist", // not a video path
		"https://youtu.be/",
		"https://vimeo.com/",
	}
	for _, ref := range invalid {
		err := v.VideoRef(ref)
		assert.Error(t, err, ref)
		assert.True(t, internal_errors.IsValidation(err), ref)
	}
}

func TestVideoRefHostAllowlistIsCaseInsensitive(t *testing.T) {
	v := NewVideoRefValidator([]string{"YouTu.be"})
	assert.NoError(t, v.VideoRef("https://YOUTU.BE/abc123"))
}
