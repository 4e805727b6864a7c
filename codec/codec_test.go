package codec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme-machining/hr-roster/codec"
	"github.com/acme-machining/hr-roster/employee"
)

// =============================================================================
// TEST INFRASTRUCTURE
// =============================================================================

func mustDecode(t *testing.T, line string) *employee.Employee {
	t.Helper()
	rec, err := codec.Decode(line, employee.NewSequence())
	require.NoError(t, err, "line %q", line)
	return rec
}

// =============================================================================
// ENCODE - Field layout per category
// =============================================================================

func TestEncode_LayoutPerCategory(t *testing.T) {
	seq := employee.NewSequence()

	exec, err := employee.NewExecutive(seq, "Pat Lee", "pat@acme-machining.com", employee.NewMoneyFromInt(120000), 1)
	require.NoError(t, err)
	mgr, err := employee.NewManager(seq, "Ada Byron", "ada@acme-machining.com", employee.NewMoneyFromInt(85000), 4)
	require.NoError(t, err)
	perm, err := employee.NewPermanent(seq, "Bo Diaz", "bo@acme-machining.com", employee.NewMoney(22.5), "2020-01-06")
	require.NoError(t, err)
	temp, err := employee.NewTemporary(seq, "Sam Roe", "sam@acme-machining.com", employee.NewMoneyFromInt(18), "2026-12-31")
	require.NoError(t, err)

	tests := []struct {
		rec  *employee.Employee
		want string
	}{
		{exec, "Executive,Pat Lee,pat@acme-machining.com,./images/placeholder.png,120000,CEO"},
		{mgr, "Manager,Ada Byron,ada@acme-machining.com,./images/placeholder.png,85000,R_AND_D"},
		{perm, "Permanent,Bo Diaz,bo@acme-machining.com,./images/placeholder.png,22.5,2020-01-06"},
		{temp, "Temporary,Sam Roe,sam@acme-machining.com,./images/placeholder.png,18,2026-12-31"},
	}
	for _, tc := range tests {
		line, err := codec.Encode(tc.rec)
		require.NoError(t, err)
		assert.Equal(t, tc.want, line)
	}
}

func TestEncode_CommaInName_IsQuoted(t *testing.T) {
	// GIVEN: a name containing a comma
	// WHEN: encoded and decoded again
	// THEN: minimal quoting keeps the field intact

	seq := employee.NewSequence()
	rec, err := employee.NewTemporary(seq, "Roe, Sam", "sam@acme-machining.com", employee.NewMoneyFromInt(18), "2026-12-31")
	require.NoError(t, err)

	line, err := codec.Encode(rec)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, `Temporary,"Roe, Sam",`), "got %q", line)

	back := mustDecode(t, line)
	assert.Equal(t, "Roe, Sam", back.Name())
}

// =============================================================================
// ROUND-TRIP LAW - decode(encode(r)) is field-equal to r
// =============================================================================

func TestRoundTrip_AllCategories(t *testing.T) {
	seq := employee.NewSequence()

	records := make([]*employee.Employee, 0, 4)
	exec, err := employee.NewExecutive(seq, "Pat Lee", "pat@acme-machining.com", employee.NewMoney(123456.78), 3)
	require.NoError(t, err)
	records = append(records, exec)

	mgr, err := employee.NewManager(seq, "Ada Byron", "ada@acme-machining.com", employee.NewMoneyFromInt(85000), 5)
	require.NoError(t, err)
	require.NoError(t, mgr.SetImage("./images/ada.png"))
	records = append(records, mgr)

	perm, err := employee.NewPermanent(seq, "Bo Diaz", "bo@acme-machining.com", employee.NewMoney(99.99), "2020-01-06")
	require.NoError(t, err)
	records = append(records, perm)

	temp, err := employee.NewTemporary(seq, "Sam Roe", "sam@acme-machining.com", employee.NewMoneyFromInt(15), "2026-12-31")
	require.NoError(t, err)
	records = append(records, temp)

	for _, rec := range records {
		line, err := codec.Encode(rec)
		require.NoError(t, err)

		back := mustDecode(t, line)

		assert.Equal(t, rec.Category(), back.Category())
		assert.Equal(t, rec.Name(), back.Name())
		assert.Equal(t, rec.Email(), back.Email())
		assert.Equal(t, rec.Image(), back.Image())
		assert.True(t, rec.Yearly().Equal(back.Yearly()), "yearly: %s vs %s", rec.Yearly(), back.Yearly())
		assert.True(t, rec.Hourly().Equal(back.Hourly()), "hourly: %s vs %s", rec.Hourly(), back.Hourly())
		assert.Equal(t, rec.Role(), back.Role())
		assert.Equal(t, rec.Department(), back.Department())
		assert.Equal(t, rec.HiredDate(), back.HiredDate())
		assert.Equal(t, rec.LastDay(), back.LastDay())
	}
}

// =============================================================================
// DECODE - Legacy fields, malformed lines, validation pass-through
// =============================================================================

func TestDecode_LegacyIntegerEnumCodes(t *testing.T) {
	// Files written by the predecessor system persisted role/department as
	// integer codes. Both forms must load to the same record.

	exec := mustDecode(t, "Executive,Pat Lee,pat@acme-machining.com,./images/placeholder.png,120000,2")
	assert.Equal(t, employee.RoleCFO, exec.Role())

	mgr := mustDecode(t, "Manager,Ada Byron,ada@acme-machining.com,./images/placeholder.png,85000,1")
	assert.Equal(t, employee.DeptAccounting, mgr.Department())
}

func TestDecode_UnknownTag_MalformedRecord(t *testing.T) {
	_, err := codec.Decode("Intern,Pat,pat@acme-machining.com,./x.png,100,CEO", employee.NewSequence())

	assert.ErrorIs(t, err, employee.ErrMalformedRecord)
	var malErr *codec.MalformedRecordError
	require.ErrorAs(t, err, &malErr)
	assert.Equal(t, "Intern", malErr.Tag)
}

func TestDecode_WrongFieldCount_MalformedRecord(t *testing.T) {
	_, err := codec.Decode("Executive,Pat Lee,pat@acme-machining.com,120000,CEO", employee.NewSequence())

	assert.ErrorIs(t, err, employee.ErrMalformedRecord)
}

func TestDecode_ValidationFailuresPropagate(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{
			name:    "hourly wage below minimum",
			line:    "Permanent,Bo Diaz,bo@acme-machining.com,./images/placeholder.png,14.99,2020-01-06",
			wantErr: employee.ErrInvalidField,
		},
		{
			name:    "yearly salary below minimum",
			line:    "Manager,Ada Byron,ada@acme-machining.com,./images/placeholder.png,49999.99,HR",
			wantErr: employee.ErrInvalidField,
		},
		{
			name:    "email outside company domain",
			line:    "Temporary,Sam Roe,sam@gmail.com,./images/placeholder.png,18,2026-12-31",
			wantErr: employee.ErrInvalidField,
		},
		{
			name:    "role code outside enumerated set",
			line:    "Executive,Pat Lee,pat@acme-machining.com,./images/placeholder.png,120000,4",
			wantErr: employee.ErrInvalidCategory,
		},
		{
			name:    "unknown department name",
			line:    "Manager,Ada Byron,ada@acme-machining.com,./images/placeholder.png,85000,SALES",
			wantErr: employee.ErrInvalidCategory,
		},
		{
			name:    "unparseable wage",
			line:    "Manager,Ada Byron,ada@acme-machining.com,./images/placeholder.png,lots,HR",
			wantErr: employee.ErrInvalidField,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.Decode(tc.line, employee.NewSequence())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDecode_FailedLineConsumesNoIdentity(t *testing.T) {
	seq := employee.NewSequence()

	_, err := codec.Decode("Executive,Pat,pat@acme-machining.com,./x.png,120000,9", seq)
	require.Error(t, err)

	rec := mustDecodeWith(t, seq, "Temporary,Sam Roe,sam@acme-machining.com,./images/placeholder.png,18,2026-12-31")
	assert.Equal(t, employee.ID(0), rec.ID())
}

func mustDecodeWith(t *testing.T, seq *employee.Sequence, line string) *employee.Employee {
	t.Helper()
	rec, err := codec.Decode(line, seq)
	require.NoError(t, err)
	return rec
}
