package activitylog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRead(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)

	require.NoError(t, Append(dir, Entry{
		Timestamp: ts,
		Action:    "post",
		EntryID:   "2025-05-001",
		Details:   "Cash sale, 2 lines",
	}))
	require.NoError(t, Append(dir, Entry{
		Timestamp: ts.Add(time.Minute),
		Action:    "import",
		Details:   "3 entries from statement.csv",
	}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "post", entries[0].Action)
	assert.Equal(t, "2025-05-001", entries[0].EntryID)
	assert.True(t, entries[0].Timestamp.Equal(ts))
	assert.Equal(t, "import", entries[1].Action)
}

func TestRead_MissingLog(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}
