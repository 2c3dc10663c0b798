// Package countries maps country display names to the 2-letter codes used as
// tracking-number prefixes. The table is read-only after construction.
package countries

import "strings"

// Unknown is the code returned for country names not in the table.
const Unknown = "XX"

// Table is an immutable country-name → code mapping.
type Table struct {
	codes map[string]string
}

// New builds a table from codes. Keys are taken as-is; values are
// uppercased. The input map is copied, so later mutation of it has no effect.
func New(codes map[string]string) *Table {
	m := make(map[string]string, len(codes))
	for name, code := range codes {
		m[name] = strings.ToUpper(code)
	}
	return &Table{codes: m}
}

// Default returns the built-in table. "United Kingdom" keeps the legacy "UK"
// prefix rather than ISO "GB" because downstream label scanners expect it.
func Default() *Table {
	return New(map[string]string{
		"USA":            "US",
		"Canada":         "CA",
		"United Kingdom": "UK",
		"Germany":        "DE",
		"France":         "FR",
		"Netherlands":    "NL",
		"Spain":          "ES",
		"Italy":          "IT",
		"Japan":          "JP",
		"China":          "CN",
		"India":          "IN",
		"Australia":      "AU",
		"Brazil":         "BR",
		"Mexico":         "MX",
		"Singapore":      "SG",
	})
}

// With returns a new table with overrides layered on top of t. Entries in
// overrides replace or extend the base; t itself is unchanged.
func (t *Table) With(overrides map[string]string) *Table {
	m := make(map[string]string, len(t.codes)+len(overrides))
	for name, code := range t.codes {
		m[name] = code
	}
	for name, code := range overrides {
		m[name] = strings.ToUpper(code)
	}
	return &Table{codes: m}
}

// Code returns the 2-letter code for name, or Unknown when unmapped.
func (t *Table) Code(name string) string {
	if code, ok := t.codes[name]; ok {
		return code
	}
	return Unknown
}

// Len returns the number of mapped countries.
func (t *Table) Len() int { return len(t.codes) }
