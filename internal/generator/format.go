package generator

import (
	"fmt"
	"strings"
)

// format assembles the display string for a packed id. Pure except for the
// suffix draw; safe to call outside the generator lock.
func (g *TrackingGenerator) format(id int64, country, localAddress string) (string, error) {
	code := g.countries.Code(country)
	suffix, err := g.suffix.Suffix(g.suffixLen)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%06d-%s", code, localAddress, id%uniqueModulus, suffix), nil
}

// ParsedTrackingNumber holds the segments of a tracking number. The snowflake
// fields are not recoverable: the unique part is the packed id modulo 10^6.
type ParsedTrackingNumber struct {
	CountryCode  string `json:"country_code"`
	LocalAddress string `json:"local_address"`
	UniquePart   string `json:"unique_part"`
	RandomPart   string `json:"random_part"`
}

// Validate reports whether trackingNumber matches the generator's output
// format, with a human-readable reason when it does not.
func (g *TrackingGenerator) Validate(trackingNumber string) (bool, string) {
	if _, err := g.Parse(trackingNumber); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// Parse splits a tracking number into its segments. The local address may
// itself contain dashes, so the unique and random parts anchor from the right.
func (g *TrackingGenerator) Parse(trackingNumber string) (*ParsedTrackingNumber, error) {
	parts := strings.Split(trackingNumber, "-")
	if len(parts) < 4 {
		return nil, fmt.Errorf("expected at least 4 dash-separated segments, got %d", len(parts))
	}

	code := parts[0]
	unique := parts[len(parts)-2]
	random := parts[len(parts)-1]
	address := strings.Join(parts[1:len(parts)-2], "-")

	if len(code) != 2 || !isUpperAlpha(code) {
		return nil, fmt.Errorf("country code %q must be 2 uppercase letters", code)
	}
	if address == "" {
		return nil, fmt.Errorf("local address segment is empty")
	}
	if len(unique) != 6 || !isDigits(unique) {
		return nil, fmt.Errorf("unique part %q must be 6 digits", unique)
	}
	if len(random) != g.suffixLen || !isUpperAlnum(random) {
		return nil, fmt.Errorf("random part %q must be %d uppercase alphanumeric characters", random, g.suffixLen)
	}

	return &ParsedTrackingNumber{
		CountryCode:  code,
		LocalAddress: address,
		UniquePart:   unique,
		RandomPart:   random,
	}, nil
}

func isUpperAlpha(s string) bool {
	for _, c := range s {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isUpperAlnum(s string) bool {
	for _, c := range s {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
