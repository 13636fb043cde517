package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/repline-dev/repline/internal/errors"
)

type SubmissionTitleValidator struct {
	MaxLen int
}

func (v *SubmissionTitleValidator) Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.Validation("Title must not be empty")
	}
	if utf8.RuneCountInString(title) > v.MaxLen {
		return errors.Validation("Title is too long")
	}
	return nil
}

// MessagePayloadValidator enforces the "at least one payload" rule:
// a message needs text, a video reference, or both.
type MessagePayloadValidator struct {
	MaxLen   int
	VideoRef VideoRefChecker
}

type VideoRefChecker interface {
	VideoRef(ref string) error
}

func (v *MessagePayloadValidator) Payload(text, videoRef string) error {
	if strings.TrimSpace(text) == "" && videoRef == "" {
		return errors.Validation("Message needs text or a video reference")
	}
	if utf8.RuneCountInString(text) > v.MaxLen {
		return errors.Validation("Text is too long")
	}
	if v.VideoRef != nil {
		if err := v.VideoRef.VideoRef(videoRef); err != nil {
			return err
		}
	}
	return nil
}
