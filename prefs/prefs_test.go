package prefs

import (
	"path/filepath"
	"testing"

	ai "github.com/spetersoncode/parley"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestBolt(t *testing.T) *BoltStore {
	t.Helper()
	s, err := OpenBolt(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testStores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"bolt":   openTestBolt(t),
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	for name, s := range testStores(t) {
		_, ok, err := s.Load()
		require.NoError(t, err, name)
		assert.False(t, ok, name)
	}
}

func TestStore_SaveThenLoad(t *testing.T) {
	for name, s := range testStores(t) {
		want := Preferences{Provider: ai.ProviderAnthropic, APIKey: "sk-ant-x"}
		require.NoError(t, s.Save(want), name)

		got, ok, err := s.Load()
		require.NoError(t, err, name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
}

func TestStore_SaveOverwritesBothFields(t *testing.T) {
	for name, s := range testStores(t) {
		require.NoError(t, s.Save(Preferences{Provider: ai.ProviderAnthropic, APIKey: "sk-ant-x"}))
		require.NoError(t, s.Save(Preferences{Provider: ai.ProviderOpenAI, APIKey: "sk-oa-y"}))

		got, ok, err := s.Load()
		require.NoError(t, err, name)
		assert.True(t, ok, name)
		assert.Equal(t, Preferences{Provider: ai.ProviderOpenAI, APIKey: "sk-oa-y"}, got, name)
	}
}

func TestStore_SaveRejectsBlankKey(t *testing.T) {
	for name, s := range testStores(t) {
		require.NoError(t, s.Save(Preferences{Provider: ai.ProviderAnthropic, APIKey: "sk-ant-x"}))

		for _, key := range []string{"", "   ", "\t\n"} {
			err := s.Save(Preferences{Provider: ai.ProviderOpenAI, APIKey: key})
			assert.ErrorIs(t, err, ErrBlankAPIKey, name)
		}

		// Rejected saves leave the store unchanged.
		got, ok, err := s.Load()
		require.NoError(t, err, name)
		assert.True(t, ok, name)
		assert.Equal(t, Preferences{Provider: ai.ProviderAnthropic, APIKey: "sk-ant-x"}, got, name)
	}
}

func TestStore_SaveRejectsUnknownProvider(t *testing.T) {
	for name, s := range testStores(t) {
		err := s.Save(Preferences{Provider: ai.Provider("gemini"), APIKey: "sk-x"})
		assert.ErrorIs(t, err, ai.ErrUnknownProvider, name)
	}
}

func TestStore_ClearRestoresEmpty(t *testing.T) {
	for name, s := range testStores(t) {
		require.NoError(t, s.Save(Preferences{Provider: ai.ProviderAnthropic, APIKey: "sk-ant-x"}))
		require.NoError(t, s.Clear(), name)

		_, ok, err := s.Load()
		require.NoError(t, err, name)
		assert.False(t, ok, name)
	}
}

func TestBoltStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(Preferences{Provider: ai.ProviderOpenAI, APIKey: "sk-oa-y"}))
	require.NoError(t, s.Close())

	s, err = OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()

	got, ok, err := s.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Preferences{Provider: ai.ProviderOpenAI, APIKey: "sk-oa-y"}, got)
}
