package quest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherSignalsAfterWriteBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quests.toml")
	require.NoError(t, os.WriteFile(path, []byte("# rev 0\n"), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	// An editor save can be several writes in quick succession.
	for i := 1; i <= 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("# rev %d\n", i)), 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change signal after write burst")
	}

	// The signal fires after the burst settles, so a reload at this
	// point sees the last write.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "# rev 5\n", string(data))

	// One burst, one signal.
	select {
	case <-w.Changes():
		t.Fatal("write burst produced more than one signal")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quests.toml")
	require.NoError(t, os.WriteFile(path, []byte("# quests\n"), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch\n"), 0o644))

	select {
	case <-w.Changes():
		t.Fatal("sibling file write signaled a quest change")
	case <-time.After(400 * time.Millisecond):
	}
}
