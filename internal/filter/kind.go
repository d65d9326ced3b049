package filter

import (
	"fmt"
	"strings"
)

type Kind int

const (
	Identity Kind = iota
	Vintage
	Disco
	Cool
	Warm
	// Argentino only differs from Identity in the live preview.
	Argentino
)

var names = [...]string{
	Identity:  "normal",
	Vintage:   "vintage",
	Disco:     "disco",
	Cool:      "cool",
	Warm:      "warm",
	Argentino: "argentino",
}

// Kinds lists every filter in the order they are offered to the user
func Kinds() []Kind {
	return []Kind{Identity, Vintage, Disco, Argentino, Cool, Warm}
}

func (k Kind) Valid() bool {
	return k >= Identity && k <= Argentino
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return names[k]
}

// Parse maps a filter name (case-insensitive) to its Kind.
// "identity" and the empty string are accepted for Identity.
func Parse(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "identity":
		return Identity, nil
	}
	for k, n := range names {
		if n == name {
			return Kind(k), nil
		}
	}
	return Identity, fmt.Errorf("%w: %q", ErrUnknownFilterKind, name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFilterKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
