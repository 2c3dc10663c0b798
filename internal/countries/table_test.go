package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTable(t *testing.T) {
	table := Default()

	assert.Equal(t, "US", table.Code("USA"))
	assert.Equal(t, "CA", table.Code("Canada"))
	assert.Equal(t, "UK", table.Code("United Kingdom"))
	assert.Equal(t, Unknown, table.Code("Narnia"))
	assert.Equal(t, Unknown, table.Code(""))
}

func TestNewUppercasesCodes(t *testing.T) {
	table := New(map[string]string{"Iceland": "is"})
	assert.Equal(t, "IS", table.Code("Iceland"))
}

func TestNewCopiesInput(t *testing.T) {
	src := map[string]string{"Iceland": "IS"}
	table := New(src)
	src["Iceland"] = "XX"

	assert.Equal(t, "IS", table.Code("Iceland"))
}

func TestWithOverrides(t *testing.T) {
	base := Default()
	table := base.With(map[string]string{
		"United Kingdom": "gb",
		"Iceland":        "IS",
	})

	assert.Equal(t, "GB", table.Code("United Kingdom"))
	assert.Equal(t, "IS", table.Code("Iceland"))
	assert.Equal(t, "US", table.Code("USA"), "base entries survive")

	assert.Equal(t, "UK", base.Code("United Kingdom"), "base table unchanged")
	assert.Equal(t, base.Len()+1, table.Len())
}
