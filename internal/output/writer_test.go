package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	files := []File{
		{Name: "index.ts", Content: "export * from \"./users/useUsersQueries\";\n"},
		{Dir: "users", Name: "useUsersQueries.ts", Content: "export const getUsers = () => {};\n"},
	}

	require.NoError(t, Write(dir, files))

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.Path()))
		require.NoError(t, err)
		require.Equal(t, f.Content, string(data))
	}
}

func TestWriteCreatesNestedDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "src", "api")

	err := Write(dir, []File{{Dir: "user-management", Name: "useUserManagementQueries.ts", Content: "x"}})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "user-management", "useUserManagementQueries.ts"))
	require.NoError(t, statErr)
}

func TestWriteReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.ts")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, Write(dir, []File{{Name: "index.ts", Content: "new"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Write(dir, []File{{Name: "index.ts", Content: "x"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "index.ts", entries[0].Name())
}
