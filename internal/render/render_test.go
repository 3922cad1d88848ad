package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statekit/storegen/internal/config"
	"github.com/statekit/storegen/internal/model"
)

type fakeEngine struct {
	name string
	data any
	out  string
	err  error
}

func (f *fakeEngine) Execute(name string, data any) (string, error) {
	f.name = name
	f.data = data
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	for _, lib := range config.Libraries {
		require.True(t, r.Supports(lib), "library %s", lib)
	}
	require.False(t, r.Supports(config.Library("angular")))
}

func TestRendererModule(t *testing.T) {
	engine := &fakeEngine{out: "rendered"}
	r := New(engine, NewRegistry())

	m := model.Module{Name: "Users", Tag: "Users"}
	got, err := r.Module(m, config.LibraryReactQuery, config.LanguageTypeScript)

	require.NoError(t, err)
	require.Equal(t, "rendered", got)
	require.Equal(t, "react-query.tmpl", engine.name)

	data, ok := engine.data.(ModuleData)
	require.True(t, ok)
	require.Equal(t, "Users", data.Module.Name)
	require.Equal(t, config.LibraryReactQuery, data.Library)
	require.Equal(t, config.LanguageTypeScript, data.Language)
}

func TestRendererTemplateNames(t *testing.T) {
	tests := []struct {
		library  config.Library
		template string
	}{
		{config.LibraryReactQuery, "react-query.tmpl"},
		{config.LibrarySWR, "swr.tmpl"},
		{config.LibraryZustand, "zustand.tmpl"},
		{config.LibraryRedux, "redux.tmpl"},
	}

	for _, tt := range tests {
		t.Run(string(tt.library), func(t *testing.T) {
			engine := &fakeEngine{}
			r := New(engine, NewRegistry())

			_, err := r.Module(model.Module{Name: "Users"}, tt.library, config.LanguageTypeScript)

			require.NoError(t, err)
			require.Equal(t, tt.template, engine.name)
		})
	}
}

func TestRendererUnknownLibrary(t *testing.T) {
	r := New(&fakeEngine{}, NewRegistry())

	_, err := r.Module(model.Module{Name: "Users"}, config.Library("angular"), config.LanguageTypeScript)

	require.ErrorIs(t, err, ErrUnknownLibrary)
	require.Contains(t, err.Error(), "angular")
}

func TestRendererRenderError(t *testing.T) {
	boom := errors.New("boom")
	r := New(&fakeEngine{err: boom}, NewRegistry())

	_, err := r.Module(model.Module{Name: "Users"}, config.LibrarySWR, config.LanguageTypeScript)

	var re *RenderError
	require.ErrorAs(t, err, &re)
	require.Equal(t, "Users", re.Module)
	require.ErrorIs(t, err, boom)
	require.Equal(t, "rendering module Users: boom", re.Error())
}

func TestRendererIndexAndTypes(t *testing.T) {
	engine := &fakeEngine{out: "x"}
	r := New(engine, NewRegistry())

	_, err := r.Index(IndexData{Library: config.LibraryRedux})
	require.NoError(t, err)
	require.Equal(t, "index.tmpl", engine.name)

	_, err = r.Types(TypesData{})
	require.NoError(t, err)
	require.Equal(t, "types.tmpl", engine.name)
}
