package generator

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// SuffixAlphabet is the character set for the random tracking-number suffix.
const SuffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SuffixSource produces the random tail of a tracking number. The suffix is
// cosmetic entropy, not a security token, so sources need no cryptographic
// guarantees; tests inject deterministic ones.
type SuffixSource interface {
	Suffix(length int) (string, error)
}

type nanoidSuffix struct{}

func (nanoidSuffix) Suffix(length int) (string, error) {
	s, err := gonanoid.Generate(SuffixAlphabet, length)
	if err != nil {
		return "", fmt.Errorf("failed to generate suffix: %w", err)
	}
	return s, nil
}

// NanoIDSuffix returns the default SuffixSource, backed by nanoid with the
// uppercase alphanumeric alphabet.
func NanoIDSuffix() SuffixSource { return nanoidSuffix{} }
