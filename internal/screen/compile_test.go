package screen

import (
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ampere07/operationmobileapp-sub006/internal/record"
)

func compileTestScreen(t *testing.T, src string) (*Screen, error) {
	t.Helper()
	ctx := cuecontext.New()
	v := ctx.CompileString(src)
	require.NoError(t, v.Err())

	iter, err := v.LookupPath(cue.ParsePath("screen")).Fields()
	require.NoError(t, err)
	require.True(t, iter.Next(), "expected one screen definition")
	return CompileScreen(iter.Value())
}

func TestCompileScreen_Full(t *testing.T) {
	scr, err := compileTestScreen(t, `
screen: billing: {
	title:     "Billing"
	page_size: 50
	columns: [
		{key: "id", label: "Account No", width: 12, fields: ["id", "account_no"]},
		{key: "balance", label: "Balance", width: 14, fields: ["account_balance"], kind: "currency"},
	]
	search: ["id"]
	category: {field: "city"}
	accessors: city: {fields: ["city", "City"]}
}`)
	require.NoError(t, err)

	assert.Equal(t, "billing", scr.Name)
	assert.Equal(t, "Billing", scr.Title)
	assert.Equal(t, 50, scr.PageSize)
	require.Len(t, scr.Columns, 2)
	assert.Equal(t, Column{Key: "id", Label: "Account No", Width: 12}, scr.Columns[0])

	assert.Equal(t, record.KindCurrency, scr.Accessors["balance"].Kind)
	assert.Equal(t, []string{"id", "account_no"}, scr.Accessors["id"].Candidates)
	assert.Equal(t, []string{"city", "City"}, scr.Accessors["city"].Candidates)
	assert.Equal(t, "city", scr.CategoryField)
	assert.Equal(t, []string{"id"}, scr.SearchFields)
}

func TestCompileScreen_AddressCategory(t *testing.T) {
	scr, err := compileTestScreen(t, `
screen: applications: {
	title: "Applications"
	columns: [{key: "address", label: "Address"}]
	category: {address_field: "address", address_segment: 2}
}`)
	require.NoError(t, err)

	assert.Equal(t, "address", scr.AddressField)
	assert.Equal(t, 2, scr.AddressSegment)
	assert.Empty(t, scr.CategoryField)
	assert.Equal(t, []string{"address"}, scr.Accessors["address"].Candidates,
		"a column with no fields reads its own key")
}

func TestCompileScreen_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{
			"missing title",
			`screen: x: {columns: [{key: "id", label: "ID"}]}`,
			"title is required",
		},
		{
			"no columns",
			`screen: x: {title: "X"}`,
			"at least one column",
		},
		{
			"bad kind",
			`screen: x: {title: "X", columns: [{key: "id", label: "ID", kind: "decimal"}]}`,
			"unknown accessor kind",
		},
		{
			"empty category",
			`screen: x: {title: "X", columns: [{key: "id", label: "ID"}], category: {}}`,
			"category requires either",
		},
		{
			"duplicate column key",
			`screen: x: {title: "X", columns: [{key: "id", label: "A"}, {key: "id", label: "B"}]}`,
			"duplicate column key",
		},
		{
			"search field without accessor",
			`screen: x: {title: "X", columns: [{key: "id", label: "ID"}], search: ["ghost"]}`,
			"no accessor",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := compileTestScreen(t, tc.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}
