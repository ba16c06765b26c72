// Package pathutil handles resource ids in dashboard URLs.
package pathutil

import (
	"regexp"
	"strings"
)

type pathPattern struct {
	re       *regexp.Regexp
	template string
}

const idSegment = `[^/]+`

// pathPatterns maps concrete dashboard URLs onto route templates.
// Fixed segments such as create-project must be listed before the {id}
// patterns of the same collection.
var pathPatterns = buildPatterns()

func buildPatterns() []pathPattern {
	var out []pathPattern
	add := func(expr, template string) {
		out = append(out, pathPattern{re: regexp.MustCompile("^" + expr + "$"), template: template})
	}
	for _, c := range []struct{ collection, noun string }{
		{"projects", "project"},
		{"skills", "skill"},
		{"blogs", "blog"},
		{"contacts", "contact"},
	} {
		base := "/" + c.collection
		add(base+"/create-"+c.noun, base+"/create-"+c.noun)
		add(base+"/update-"+c.noun+"/"+idSegment, base+"/update-"+c.noun+"/:id")
		add(base+"/delete-"+c.noun+"/"+idSegment, base+"/delete-"+c.noun+"/:id")
		add(base+"/"+idSegment, base+"/:id")
	}
	add("/static/.+", "/static/*")
	return out
}

// NormalizePath turns /projects/64f0c2 into /projects/:id so metric labels
// stay bounded. Query strings and a trailing slash are dropped; unknown
// paths are returned unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	for _, p := range pathPatterns {
		if p.re.MatchString(path) {
			return p.template
		}
	}
	return path
}
