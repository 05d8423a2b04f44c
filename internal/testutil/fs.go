package testutil

import (
	"testing"

	"github.com/spf13/afero"
)

// MemFs returns an in-memory filesystem holding files, keyed by path.
func MemFs(t testing.TB, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fsys, name, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return fsys
}
