package model

// Document is the normalized form of a parsed OpenAPI or Swagger document.
// Component schemas (OpenAPI 3.x) and definitions (Swagger 2.0) are kept as
// separate ordered lists; the catalog merges them into one table.
type Document struct {
	Info             Info
	Tags             []Tag
	Paths            []Path
	ComponentSchemas []Schema
	Definitions      []Schema
}

type Info struct {
	Title       string
	Description string
	Version     string
}

type Tag struct {
	Name        string
	Description string
}

// Path groups the operations declared under one path string, in
// declaration order.
type Path struct {
	Path       string
	Operations []Operation
}
