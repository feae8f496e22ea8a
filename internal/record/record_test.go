package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_ToleratesSpellingsAndTypes(t *testing.T) {
	testCases := []struct {
		name string
		rec  R
		want string
	}{
		{"string id", R{"id": "42"}, "42"},
		{"numeric id", R{"id": float64(42)}, "42"},
		{"capitalized", R{"Id": "7"}, "7"},
		{"all caps", R{"ID": "7"}, "7"},
		{"absent", R{"name": "x"}, ""},
		{"nil id falls through", R{"id": nil, "Id": "9"}, "9"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rec.ID())
		})
	}
}

func TestNumericID(t *testing.T) {
	assert.Equal(t, int64(30), R{"id": "30"}.NumericID())
	assert.Equal(t, int64(0), R{"id": "APP-30"}.NumericID(), "non-numeric id parses to 0")
	assert.Equal(t, int64(0), R{}.NumericID())
}

func TestAsNumber_StringAmounts(t *testing.T) {
	n, ok := AsNumber("1,250.50")
	require.True(t, ok)
	assert.Equal(t, 1250.50, n)

	n, ok = AsNumber("₱300.00")
	require.True(t, ok)
	assert.Equal(t, 300.0, n)

	_, ok = AsNumber("pending")
	assert.False(t, ok)

	_, ok = AsNumber("")
	assert.False(t, ok)
}

func TestAsTime_Layouts(t *testing.T) {
	for _, s := range []string{
		"2024-03-15T08:30:00Z",
		"2024-03-15 08:30:00",
		"2024-03-15",
		"03/15/2024",
	} {
		tm, ok := AsTime(s)
		require.True(t, ok, "layout %q should parse", s)
		assert.Equal(t, 2024, tm.Year())
		assert.Equal(t, time.March, tm.Month())
		assert.Equal(t, 15, tm.Day())
	}

	_, ok := AsTime("not a date")
	assert.False(t, ok)
}

func newTestRegistry() *Registry {
	return NewRegistry(map[string]Accessor{
		"name":       {Candidates: []string{"first_name", "First_Name"}, Kind: KindText},
		"balance":    {Candidates: []string{"account_balance", "Account_Balance"}, Kind: KindCurrency},
		"date":       {Candidates: []string{"date_installed", "Date_Installed"}, Kind: KindDate},
		"active":     {Candidates: []string{"is_active"}, Kind: KindBool},
		"billingDay": {Candidates: []string{"billing_day"}, Kind: KindBillingDay},
	})
}

func TestResolve_FallbackChain(t *testing.T) {
	reg := newTestRegistry()

	assert.Equal(t, "Maria", reg.Resolve(R{"first_name": "Maria"}, "name"))
	assert.Equal(t, "Maria", reg.Resolve(R{"First_Name": "Maria"}, "name"),
		"alternate spelling resolves through the candidate chain")
	assert.Equal(t, "Maria", reg.Resolve(R{"first_name": "", "First_Name": "Maria"}, "name"),
		"empty value is skipped, not returned")
	assert.Equal(t, Missing, reg.Resolve(R{}, "name"))
	assert.Equal(t, Missing, reg.Resolve(R{"first_name": nil}, "name"))
}

func TestResolve_CurrencyFormat(t *testing.T) {
	reg := newTestRegistry()

	assert.Equal(t, "₱1,250.50", reg.Resolve(R{"account_balance": 1250.5}, "balance"))
	assert.Equal(t, "₱300.00", reg.Resolve(R{"account_balance": "300"}, "balance"))
	assert.Equal(t, "pending", reg.Resolve(R{"account_balance": "pending"}, "balance"),
		"unparseable amount falls back to the raw string")
}

func TestResolve_DateFormat(t *testing.T) {
	reg := newTestRegistry()
	assert.Equal(t, "Mar 15, 2024", reg.Resolve(R{"date_installed": "2024-03-15"}, "date"))
}

func TestResolve_Bool(t *testing.T) {
	reg := newTestRegistry()
	assert.Equal(t, "Yes", reg.Resolve(R{"is_active": true}, "active"))
	assert.Equal(t, "No", reg.Resolve(R{"is_active": false}, "active"))
	assert.Equal(t, "Yes", reg.Resolve(R{"is_active": float64(1)}, "active"))
}

func TestResolve_BillingDayZeroIsLastDayOfMonth(t *testing.T) {
	reg := newTestRegistry()
	reg.Now = func() time.Time { return time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, "29", reg.Resolve(R{"billing_day": float64(0)}, "billingDay"),
		"stored 0 maps to the last day of the current month (leap February)")
	assert.Equal(t, "15", reg.Resolve(R{"billing_day": float64(15)}, "billingDay"))

	reg.Now = func() time.Time { return time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC) }
	assert.Equal(t, "30", reg.Resolve(R{"billing_day": float64(0)}, "billingDay"))
}

func TestResolveSort_TypedKeys(t *testing.T) {
	reg := newTestRegistry()

	k := reg.ResolveSort(R{"account_balance": "1,250.50"}, "balance")
	require.True(t, k.IsNum)
	assert.Equal(t, 1250.50, k.Num)

	k = reg.ResolveSort(R{"date_installed": "2024-03-15"}, "date")
	require.True(t, k.IsTime)

	k = reg.ResolveSort(R{"first_name": "Maria"}, "name")
	assert.False(t, k.IsNum)
	assert.Equal(t, "Maria", k.Str)

	k = reg.ResolveSort(R{}, "name")
	assert.True(t, k.Missing)
}

func TestResolve_IsDeterministic(t *testing.T) {
	reg := newTestRegistry()
	rec := R{"first_name": "Jose", "account_balance": 99.9}

	for i := 0; i < 3; i++ {
		assert.Equal(t, "Jose", reg.Resolve(rec, "name"))
		assert.Equal(t, "₱99.90", reg.Resolve(rec, "balance"))
	}
}
