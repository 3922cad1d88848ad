package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statekit/storegen/internal/config"
	"github.com/statekit/storegen/internal/loader"
	"github.com/statekit/storegen/internal/model"
	"github.com/statekit/storegen/internal/render"
)

func loadDoc(t *testing.T) *model.Document {
	t.Helper()
	res, err := loader.LoadFile("testdata/petstore.yaml", loader.Options{})
	require.NoError(t, err)
	return res.Document
}

func petConfig(lib config.Library, lang config.Language) *config.Config {
	return &config.Config{
		Spec:      "testdata/petstore.yaml",
		OutputDir: "./src/api",
		Library:   lib,
		Language:  lang,
	}
}

func outputPaths(res *Result) []string {
	paths := make([]string, 0, len(res.Outputs))
	for _, f := range res.Outputs {
		paths = append(paths, f.Path())
	}
	return paths
}

func findOutput(t *testing.T, res *Result, path string) string {
	t.Helper()
	for _, f := range res.Outputs {
		if f.Path() == path {
			return f.Content
		}
	}
	t.Fatalf("no output planned at %s", path)
	return ""
}

func TestNewUnknownLibrary(t *testing.T) {
	_, err := New(petConfig("angular", config.LanguageTypeScript))
	require.ErrorIs(t, err, render.ErrUnknownLibrary)
	require.Contains(t, err.Error(), "angular")
}

func TestGenerateReactQueryTypeScript(t *testing.T) {
	gen, err := New(petConfig(config.LibraryReactQuery, config.LanguageTypeScript))
	require.NoError(t, err)

	res, err := gen.Generate(loadDoc(t))
	require.NoError(t, err)

	require.False(t, res.EmptySelection)
	require.Len(t, res.Modules, 1)
	require.Equal(t, "Pets", res.Modules[0].Name)
	require.Equal(t, Stats{Modules: 1, Endpoints: 4, Schemas: 3}, res.Stats)

	require.Equal(t, []string{
		"pets/usePetsQueries.ts",
		"index.ts",
		"types.ts",
	}, outputPaths(res))

	mod := findOutput(t, res, "pets/usePetsQueries.ts")
	require.Contains(t, mod, "// Code generated by storegen. DO NOT EDIT.")
	require.Contains(t, mod, `import { useMutation, useQuery, useQueryClient } from "@tanstack/react-query";`)
	require.Contains(t, mod, `import type { Pet, PetCreate } from "../types";`)
	require.Contains(t, mod, "/** List pets */")
	require.Contains(t, mod, "export const getPets = async (limit: number): Promise<Pet[]> => {")
	require.Contains(t, mod, "export const postPets = async (body: PetCreate): Promise<Pet> =>")
	require.Contains(t, mod, "request(`/pets`, { method: \"POST\", body: JSON.stringify(body) });")
	require.Contains(t, mod, "request(`/pets/${petId}`);")
	require.Contains(t, mod, "export const useGetPets = (limit: number) =>")
	require.Contains(t, mod, `queryKey: ["pets", limit],`)
	require.Contains(t, mod, "export const usePostPets = () => {")
	require.Contains(t, mod, "mutationFn: (body: PetCreate) => postPets(body),")
	require.Contains(t, mod, "export const useDeletePetsByPetId = () => {")
	require.Contains(t, mod, `invalidateQueries({ queryKey: ["pets"] });`)

	index := findOutput(t, res, "index.ts")
	require.Contains(t, index, `export * from "./types";`)
	require.Contains(t, index, `export * from "./pets/usePetsQueries";`)

	types := findOutput(t, res, "types.ts")
	require.Contains(t, types, "/** A pet in the store. */")
	require.Contains(t, types, "export interface Pet {")
	require.Contains(t, types, "  id: number;")
	require.Contains(t, types, "  name: string;")
	require.Contains(t, types, "  status?: PetStatus;")
	require.Contains(t, types, "export interface PetCreate {")
	require.Contains(t, types, `export type PetStatus = "available" | "pending" | "sold";`)
}

func TestGenerateJavaScript(t *testing.T) {
	gen, err := New(petConfig(config.LibraryReactQuery, config.LanguageJavaScript))
	require.NoError(t, err)

	res, err := gen.Generate(loadDoc(t))
	require.NoError(t, err)

	// No shared types file for an untyped run.
	require.Equal(t, []string{
		"pets/usePetsQueries.js",
		"index.js",
	}, outputPaths(res))
	require.Equal(t, Stats{Modules: 1, Endpoints: 4}, res.Stats)

	mod := findOutput(t, res, "pets/usePetsQueries.js")
	require.Contains(t, mod, "export const getPets = async (limit) => {")
	require.Contains(t, mod, "export const useGetPets = (limit) =>")
	require.Contains(t, mod, "useQuery({")
	require.Contains(t, mod, `queryKey: ["pets", limit],`)
	require.Contains(t, mod, "mutationFn: (body) => postPets(body),")
	require.NotContains(t, mod, "import type")
	require.NotContains(t, mod, ": Promise<")
	require.NotContains(t, mod, "useQuery<")
	require.NotContains(t, mod, "interface ")

	index := findOutput(t, res, "index.js")
	require.Contains(t, index, `export * from "./pets/usePetsQueries";`)
	require.NotContains(t, index, "./types")
}

func TestGenerateRedux(t *testing.T) {
	gen, err := New(petConfig(config.LibraryRedux, config.LanguageTypeScript))
	require.NoError(t, err)

	res, err := gen.Generate(loadDoc(t))
	require.NoError(t, err)

	require.Equal(t, []string{
		"pets/petsSlice.ts",
		"index.ts",
		"types.ts",
	}, outputPaths(res))

	mod := findOutput(t, res, "pets/petsSlice.ts")
	require.Contains(t, mod, `import { createAsyncThunk, createSlice } from "@reduxjs/toolkit";`)
	require.Contains(t, mod, "export const getPetsThunk = createAsyncThunk(")
	require.Contains(t, mod, `"pets/getPets",`)
	require.Contains(t, mod, "export interface PetsSliceState {")
	require.Contains(t, mod, "getPetsLoading: boolean;")
	require.Contains(t, mod, "export default petsSlice.reducer;")

	index := findOutput(t, res, "index.ts")
	require.Contains(t, index, `export { default as petsReducer } from "./pets/petsSlice";`)
}

func TestGenerateTagFilterMiss(t *testing.T) {
	cfg := petConfig(config.LibraryReactQuery, config.LanguageTypeScript)
	cfg.Tags = []string{"Inventory"}

	gen, err := New(cfg)
	require.NoError(t, err)

	res, err := gen.Generate(loadDoc(t))
	require.NoError(t, err)
	require.True(t, res.EmptySelection)
	require.Empty(t, res.Outputs)
	require.Equal(t, Stats{}, res.Stats)
}

func TestGenerateEmptyDocument(t *testing.T) {
	gen, err := New(petConfig(config.LibraryReactQuery, config.LanguageTypeScript))
	require.NoError(t, err)

	res, err := gen.Generate(&model.Document{})
	require.NoError(t, err)
	require.False(t, res.EmptySelection)
	require.Empty(t, res.Outputs)
}

func TestGenerateDeterministic(t *testing.T) {
	gen, err := New(petConfig(config.LibraryZustand, config.LanguageTypeScript))
	require.NoError(t, err)

	doc := loadDoc(t)
	first, err := gen.Generate(doc)
	require.NoError(t, err)
	second, err := gen.Generate(doc)
	require.NoError(t, err)

	require.Equal(t, first.Outputs, second.Outputs)
	require.Equal(t, first.Stats, second.Stats)
}

func TestGenerateSwagger2Parity(t *testing.T) {
	gen, err := New(petConfig(config.LibraryReactQuery, config.LanguageTypeScript))
	require.NoError(t, err)

	v3, err := gen.Generate(loadDoc(t))
	require.NoError(t, err)

	res, err := loader.LoadFile("testdata/petstore-v2.yaml", loader.Options{})
	require.NoError(t, err)
	v2, err := gen.Generate(res.Document)
	require.NoError(t, err)

	// The same API described in either dialect plans identical files.
	require.Equal(t, v3.Outputs, v2.Outputs)
	require.Equal(t, v3.Stats, v2.Stats)
}

func TestGenerateCustomTemplates(t *testing.T) {
	dir := t.TempDir()
	custom := []byte("module {{ .Module.Name }} via {{ .Library }}\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "react-query.tmpl"), custom, 0644))

	cfg := petConfig(config.LibraryReactQuery, config.LanguageTypeScript)
	cfg.Templates.Dir = dir

	gen, err := New(cfg)
	require.NoError(t, err)

	res, err := gen.Generate(loadDoc(t))
	require.NoError(t, err)

	mod := findOutput(t, res, "pets/usePetsQueries.ts")
	require.Equal(t, "module Pets via react-query\n", mod)

	// Index and types still come from the embedded set.
	require.Contains(t, findOutput(t, res, "index.ts"), "// Code generated by storegen.")
}
