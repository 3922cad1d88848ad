// Package output plans the on-disk layout of a generation run and writes
// the planned files.
package output

import (
	"path/filepath"

	"github.com/statekit/storegen/internal/config"
	"github.com/statekit/storegen/internal/model"
	"github.com/statekit/storegen/internal/typescript"
)

// TypesFileName is the shared type declarations file, emitted at the
// output root for statically typed runs.
const TypesFileName = "types.ts"

// File is one planned output file. Dir is relative to the output root;
// empty means the root itself.
type File struct {
	Dir     string
	Name    string
	Content string
}

// Path returns the file's location relative to the output root.
func (f File) Path() string {
	if f.Dir == "" {
		return f.Name
	}
	return filepath.Join(f.Dir, f.Name)
}

// FolderName returns the module's folder: the kebab-case module name
// (UserManagement -> user-management).
func FolderName(m model.Module) string {
	return typescript.KebabCase(m.Name)
}

// FileBase returns the module file's base name for a library, without
// extension.
func FileBase(m model.Module, lib config.Library) string {
	switch lib {
	case config.LibraryRedux:
		return typescript.CamelCase(m.Name) + "Slice"
	case config.LibraryZustand:
		return "use" + m.Name + "Store"
	case config.LibrarySWR:
		return "use" + m.Name + "SWR"
	default:
		return "use" + m.Name + "Queries"
	}
}

// Extension returns the source file extension for a language, with the dot.
func Extension(lang config.Language) string {
	if lang == config.LanguageJavaScript {
		return ".js"
	}
	return ".ts"
}

// IndexFileName returns the aggregate index name for a language.
func IndexFileName(lang config.Language) string {
	return "index" + Extension(lang)
}
