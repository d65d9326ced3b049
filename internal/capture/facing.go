package capture

import (
	"fmt"
	"strings"
)

type FacingMode string

const (
	User        FacingMode = "user"
	Environment FacingMode = "environment"
)

func ParseFacingMode(s string) (FacingMode, error) {
	switch FacingMode(strings.ToLower(strings.TrimSpace(s))) {
	case User, "front", "selfie":
		return User, nil
	case Environment, "back", "rear":
		return Environment, nil
	}
	return "", fmt.Errorf("unknown facing mode %q", s)
}

func (m FacingMode) Flip() FacingMode {
	if m == User {
		return Environment
	}
	return User
}

// Mirrored reports whether frames from this camera are shown, and kept, as a
// mirror image.
func (m FacingMode) Mirrored() bool {
	return m == User
}
