package output

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statekit/storegen/internal/config"
	"github.com/statekit/storegen/internal/model"
)

func TestFolderName(t *testing.T) {
	tests := []struct {
		module   string
		expected string
	}{
		{"Users", "users"},
		{"UserManagement", "user-management"},
		{"OrderHistory", "order-history"},
	}

	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			got := FolderName(model.Module{Name: tt.module})
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestFileBase(t *testing.T) {
	tests := []struct {
		library  config.Library
		expected string
	}{
		{config.LibraryReactQuery, "useUsersQueries"},
		{config.LibrarySWR, "useUsersSWR"},
		{config.LibraryZustand, "useUsersStore"},
		{config.LibraryRedux, "usersSlice"},
	}

	for _, tt := range tests {
		t.Run(string(tt.library), func(t *testing.T) {
			got := FileBase(model.Module{Name: "Users"}, tt.library)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestExtension(t *testing.T) {
	require.Equal(t, ".ts", Extension(config.LanguageTypeScript))
	require.Equal(t, ".js", Extension(config.LanguageJavaScript))
}

func TestIndexFileName(t *testing.T) {
	require.Equal(t, "index.ts", IndexFileName(config.LanguageTypeScript))
	require.Equal(t, "index.js", IndexFileName(config.LanguageJavaScript))
}

func TestFilePath(t *testing.T) {
	require.Equal(t, "types.ts", File{Name: "types.ts"}.Path())
	require.Equal(t, "users/useUsersQueries.ts", File{Dir: "users", Name: "useUsersQueries.ts"}.Path())
}
