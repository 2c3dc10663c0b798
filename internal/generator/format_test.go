package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrackingNumber(t *testing.T) {
	g, err := New(Config{})
	require.NoError(t, err)

	parsed, err := g.Parse("UK-LDN-004567-A1B2C")
	require.NoError(t, err)
	assert.Equal(t, &ParsedTrackingNumber{
		CountryCode:  "UK",
		LocalAddress: "LDN",
		UniquePart:   "004567",
		RandomPart:   "A1B2C",
	}, parsed)
}

func TestParseAddressWithDashes(t *testing.T) {
	g, err := New(Config{})
	require.NoError(t, err)

	parsed, err := g.Parse("CA-YVR-DT-07-123456-XY9Z0")
	require.NoError(t, err)
	assert.Equal(t, "YVR-DT-07", parsed.LocalAddress)
	assert.Equal(t, "123456", parsed.UniquePart)
	assert.Equal(t, "XY9Z0", parsed.RandomPart)
}

func TestParseRejectsMalformed(t *testing.T) {
	g, err := New(Config{})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
	}{
		{"too few segments", "UK-123456-ABCDE"},
		{"lowercase country", "uk-LDN-123456-ABCDE"},
		{"three-letter country", "GBR-LDN-123456-ABCDE"},
		{"short unique part", "UK-LDN-1234-ABCDE"},
		{"non-numeric unique part", "UK-LDN-12E456-ABCDE"},
		{"short random part", "UK-LDN-123456-ABC"},
		{"lowercase random part", "UK-LDN-123456-abcde"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Parse(tt.input)
			assert.Error(t, err)

			valid, reason := g.Validate(tt.input)
			assert.False(t, valid)
			assert.NotEmpty(t, reason)
		})
	}
}

func TestValidateAcceptsGeneratorOutput(t *testing.T) {
	g, err := New(Config{DatacenterID: 4, WorkerID: 7})
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		tn, err := g.Generate("Japan", "TYO")
		require.NoError(t, err)

		valid, reason := g.Validate(tn)
		assert.True(t, valid, "generated %q rejected: %s", tn, reason)
	}
}
