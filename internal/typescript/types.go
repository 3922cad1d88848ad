package typescript

import (
	"strings"

	"github.com/statekit/storegen/internal/model"
)

// ResolveType maps a schema node to the type string the generated code
// uses. It is total: anything it cannot name degrades to "any". References
// are resolved to their final path segment without consulting the catalog,
// so a dangling $ref still yields a stable name.
func ResolveType(s *model.Schema) string {
	if s == nil {
		return "any"
	}
	if s.Ref != "" {
		return RefName(s.Ref)
	}
	switch s.Type {
	case model.TypeString:
		return "string"
	case model.TypeNumber, model.TypeInteger:
		return "number"
	case model.TypeBoolean:
		return "boolean"
	case model.TypeArray:
		if s.Items == nil {
			return "any[]"
		}
		return ResolveType(s.Items) + "[]"
	case model.TypeObject:
		return "any"
	default:
		return "any"
	}
}

// RefName returns the final path segment of a reference:
// "#/components/schemas/User" and "#/definitions/User" both yield "User".
func RefName(ref string) string {
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}

// BaseTypeName strips array suffixes from a resolved type string
// ("User[][]" -> "User").
func BaseTypeName(t string) string {
	for strings.HasSuffix(t, "[]") {
		t = strings.TrimSuffix(t, "[]")
	}
	return t
}

// IsBuiltin reports whether a resolved type string names a language
// builtin rather than a catalog schema.
func IsBuiltin(t string) bool {
	switch BaseTypeName(t) {
	case "string", "number", "boolean", "any", "void", "unknown", "":
		return true
	}
	return false
}
