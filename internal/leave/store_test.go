package leave

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioSeed() []RawRecord {
	return []RawRecord{{
		ServiceCode: "GSL25021372778",
		IDNumber:    "1088576044",
		Name:        "Test Patient",
		DoctorName:  "Dr. Test",
		JobTitle:    "Engineer",
		ReportDate:  "2025-02-09",
		StartDate:   "2025-02-09",
		EndDate:     "2025-02-24",
	}}
}

func TestNewStoreDerivesDays(t *testing.T) {
	seed := append(scenarioSeed(), RawRecord{
		ServiceCode: "BADDATES01",
		IDNumber:    "1111111111",
		StartDate:   "2025-02-24",
		EndDate:     "2025-02-09",
	})
	store := NewStore(seed)

	rec, ok := store.FindOne("GSL25021372778", "1088576044")
	require.True(t, ok)
	assert.Equal(t, 16, rec.Days)

	rec, ok = store.FindOne("BADDATES01", "1111111111")
	require.True(t, ok)
	assert.Equal(t, 0, rec.Days)
}

func TestFindOneExactMatch(t *testing.T) {
	store := NewStore(scenarioSeed())

	_, ok := store.FindOne("GSL25021372778", "1088576045")
	assert.False(t, ok, "wrong id number")
	_, ok = store.FindOne("gsl25021372778", "1088576044")
	assert.False(t, ok, "case-sensitive service code")
	_, ok = store.FindOne("GSL2502137277", "1088576044")
	assert.False(t, ok, "prefix is not a match")
	_, ok = store.FindOne("GSL25021372778", "1088576044")
	assert.True(t, ok)
}

func TestFindOneIsIdempotent(t *testing.T) {
	store := NewStore(SeedRecords())
	first, ok1 := store.FindOne("GSL25021372778", "1088576044")
	second, ok2 := store.FindOne("GSL25021372778", "1088576044")
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

func TestFindOneReturnsFirstDuplicate(t *testing.T) {
	seed := scenarioSeed()
	dup := seed[0]
	dup.Name = "Second"
	store := NewStore(append(seed, dup))

	rec, ok := store.FindOne("GSL25021372778", "1088576044")
	require.True(t, ok)
	assert.Equal(t, "Test Patient", rec.Name)
}

func TestListAllRedactsIDNumber(t *testing.T) {
	store := NewStore(SeedRecords())
	leaves := store.ListAll()
	require.Len(t, leaves, store.Len())

	raw, err := json.Marshal(leaves)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "idNumber")
	for _, seed := range SeedRecords() {
		assert.False(t, strings.Contains(string(raw), seed.IDNumber), "id number %s leaked", seed.IDNumber)
	}
}

func TestListAllPreservesOrderAndCannotMutateStore(t *testing.T) {
	seed := SeedRecords()
	store := NewStore(seed)

	leaves := store.ListAll()
	for i := range seed {
		assert.Equal(t, seed[i].ServiceCode, leaves[i].ServiceCode)
	}

	leaves[0].Name = "tampered"
	again := store.ListAll()
	assert.Equal(t, seed[0].Name, again[0].Name)
}

func TestSeedRecordsAreWellFormed(t *testing.T) {
	v := NewValidator()
	seen := map[string]bool{}
	for _, raw := range SeedRecords() {
		require.NoError(t, v.Validate(LookupRequest{ServiceCode: raw.ServiceCode, IDNumber: raw.IDNumber}), raw.ServiceCode)
		assert.False(t, seen[raw.ServiceCode], "duplicate service code %s", raw.ServiceCode)
		seen[raw.ServiceCode] = true
		assert.Positive(t, Days(raw.StartDate, raw.EndDate), raw.ServiceCode)
	}
}
