package screen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_CompilesNineScreens(t *testing.T) {
	set := Builtin()

	want := []string{
		"applications", "billing", "invoices", "job_orders", "locations",
		"service_orders", "statements", "transactions", "visits",
	}
	assert.Equal(t, want, set.Names())

	for _, name := range set.Names() {
		scr, ok := set.Get(name)
		require.True(t, ok)
		assert.NoError(t, scr.Validate(), "builtin screen %s", name)
		assert.True(t, scr.CategoryField != "" || scr.AddressField != "",
			"every builtin screen derives a location for faceting")
	}
}

func TestBuiltin_BillingShape(t *testing.T) {
	set := Builtin()
	scr, ok := set.Get("billing")
	require.True(t, ok)

	assert.Equal(t, 50, scr.PageSize)
	assert.Equal(t, "city", scr.CategoryField)
	assert.NotEmpty(t, scr.SearchFields)

	keys := scr.ColumnKeys()
	assert.Contains(t, keys, "balance")
	assert.Contains(t, keys, "billingDay")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	src := `
screen: custom: {
	title: "Custom"
	columns: [{key: "id", label: "ID"}]
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.cue"), []byte(src), 0o644))

	set, errs := LoadDir(dir, LoadModeFailFast)
	require.Empty(t, errs)
	require.Equal(t, 1, set.Len())

	scr, ok := set.Get("custom")
	require.True(t, ok)
	assert.Equal(t, "Custom", scr.Title)
}

func TestLoadDir_CollectAllGathersEveryError(t *testing.T) {
	dir := t.TempDir()
	src := `
screen: one: {columns: [{key: "id", label: "ID"}]}
screen: two: {title: "Two"}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.cue"), []byte(src), 0o644))

	_, errs := LoadDir(dir, LoadModeCollectAll)
	assert.Len(t, errs, 2, "one missing title plus one missing columns")
}

func TestLoadDir_MissingDirectory(t *testing.T) {
	_, errs := LoadDir(filepath.Join(t.TempDir(), "nope"), LoadModeFailFast)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "not found")
}

func TestLoadDir_NoCUEFiles(t *testing.T) {
	_, errs := LoadDir(t.TempDir(), LoadModeFailFast)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "no CUE files")
}
