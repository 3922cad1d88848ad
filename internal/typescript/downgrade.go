package typescript

import "regexp"

// The dynamic-language output is produced by rewriting the statically typed
// rendering with ordered regular-expression passes, not by parsing. The
// passes are best-effort: nested generic arguments, inline object-literal
// types and annotations spanning lines are out of reach, and the templates
// are written to stay inside these limits.

// tsType matches the type expressions the templates emit: a primitive or a
// capitalized schema name, optionally with one generic argument list, array
// suffixes and a null union. Keeping the grammar this narrow is what lets
// the passes leave object literals ("data: null", "body: JSON.stringify(b)")
// alone.
const tsType = `(?:string|number|boolean|any|void|unknown|[A-Z][\w$]*)(?:<[^<>]*>)?(?:\[\])*(?:\s*\|\s*null)?`

var (
	typeImportRe   = regexp.MustCompile(`(?m)^import type .*\r?\n`)
	interfaceRe    = regexp.MustCompile(`(?ms)^(?:export )?interface [A-Za-z_$][\w$]* \{.*?^\}\r?\n?`)
	paramDefaultRe = regexp.MustCompile(`([(,]\s*[\w$]+)\??\s*:\s*` + tsType + `\s*=`)
	paramRe        = regexp.MustCompile(`([(,]\s*[\w$]+)\??\s*:\s*` + tsType + `\s*([,)])`)
	bindingRe      = regexp.MustCompile(`(?m)^(\s*(?:export\s+)?(?:const|let|var)\s+[\w$]+)\s*:\s*` + tsType + `\s*=`)
	genericCallRe  = regexp.MustCompile(`([\w$])<[^<>]*>\(`)
	// Assertion targets must start uppercase, which keeps lowercase prose
	// in doc comments ("marks the order as paid") intact.
	assertionRe    = regexp.MustCompile(`\s+as\s+(?:const\b|[A-Z][\w$.\[\]<>]*)`)
	arrowReturnRe  = regexp.MustCompile(`\)\s*:\s*` + tsType + `\s*=>`)
	blankRunRe     = regexp.MustCompile(`\n{3,}`)
)

// Downgrade rewrites a statically typed rendering into plain JavaScript:
// type-only imports and interface blocks are removed, then annotations on
// parameters and bindings, generic call arguments, "as" assertions and
// arrow return types are stripped, in that order.
func Downgrade(src string) string {
	src = typeImportRe.ReplaceAllString(src, "")
	src = interfaceRe.ReplaceAllString(src, "")
	src = paramDefaultRe.ReplaceAllString(src, "$1 =")
	src = replaceUntilStable(paramRe, src, "$1$2")
	src = bindingRe.ReplaceAllString(src, "$1 =")
	src = genericCallRe.ReplaceAllString(src, "$1(")
	src = assertionRe.ReplaceAllString(src, "")
	src = arrowReturnRe.ReplaceAllString(src, ") =>")
	// Removed interface blocks leave runs of blank lines behind.
	src = blankRunRe.ReplaceAllString(src, "\n\n")
	return src
}

// replaceUntilStable reapplies a replacement until it stops matching. The
// parameter pass consumes the delimiter that terminates an annotation, so
// adjacent annotated parameters need a second sweep.
func replaceUntilStable(re *regexp.Regexp, src, repl string) string {
	for {
		next := re.ReplaceAllString(src, repl)
		if next == src {
			return src
		}
		src = next
	}
}
