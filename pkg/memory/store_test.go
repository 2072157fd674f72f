package memory

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(userID string) Record {
	return Record{
		UserPreferences: []UserPreference{
			{Preference: "prefers concise answers", Category: "communication", Confidence: 0.9},
		},
		EmotionalPatterns: []EmotionalPattern{
			{Pattern: "stress about deadlines", Trigger: "work", Frequency: FrequencyOccasional},
		},
		MemorableFacts: []MemorableFact{
			{Fact: "loves hiking on weekends", FactType: "hobby", Importance: ImportanceMedium},
		},
		Summary: "An outdoorsy engineer who values brevity.",
		UserID:  userID,
	}
}

func newTestStore() *InMemoryStore {
	return NewInMemoryStore(log.New(io.Discard))
}

func TestSaveThenGet(t *testing.T) {
	store := newTestStore()
	record := testRecord("u1")

	require.NoError(t, store.Save("u1", record))

	got, ok, err := store.Get("u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, record, got)
}

func TestGetForUnknownUserIsAbsentNotError(t *testing.T) {
	store := newTestStore()

	got, ok, err := store.Get("never-saved")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Record{}, got)
}

func TestSaveOverwritesWholesale(t *testing.T) {
	store := newTestStore()
	first := testRecord("u1")
	require.NoError(t, store.Save("u1", first))

	second := Record{
		MemorableFacts: []MemorableFact{
			{Fact: "training for a marathon", FactType: "health", Importance: ImportanceHigh},
		},
		Summary: "A runner.",
		UserID:  "u1",
	}
	require.NoError(t, store.Save("u1", second))

	got, ok, err := store.Get("u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second, got)
	assert.Empty(t, got.UserPreferences, "no merge artifacts from the first record")
}

func TestDelete(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.Save("u1", testRecord("u1")))
	require.NoError(t, store.Delete("u1"))

	_, ok, err := store.Get("u1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is a no-op, not an error.
	require.NoError(t, store.Delete("u1"))
}

func TestList(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.Save("u1", testRecord("u1")))
	require.NoError(t, store.Save("u2", testRecord("u2")))

	all, err := store.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "u1", all["u1"].UserID)
	assert.Equal(t, "u2", all["u2"].UserID)
}

func TestGetReturnsDetachedCopy(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.Save("u1", testRecord("u1")))

	got, _, err := store.Get("u1")
	require.NoError(t, err)
	got.MemorableFacts[0].Fact = "mutated"

	again, _, err := store.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, "loves hiking on weekends", again.MemorableFacts[0].Fact)
}

func TestValidate(t *testing.T) {
	valid := testRecord("u1")
	require.NoError(t, valid.Validate())

	badConfidence := testRecord("u1")
	badConfidence.UserPreferences[0].Confidence = 1.2
	assert.Error(t, badConfidence.Validate())

	badFrequency := testRecord("u1")
	badFrequency.EmotionalPatterns[0].Frequency = "always"
	assert.Error(t, badFrequency.Validate())

	badImportance := testRecord("u1")
	badImportance.MemorableFacts[0].Importance = "critical"
	assert.Error(t, badImportance.Validate())

	emptySummary := testRecord("u1")
	emptySummary.Summary = ""
	assert.Error(t, emptySummary.Validate())

	emptyFact := testRecord("u1")
	emptyFact.MemorableFacts[0].Fact = ""
	assert.Error(t, emptyFact.Validate())
}
