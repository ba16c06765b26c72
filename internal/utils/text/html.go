package text

import (
	"html/template"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// droppedElements never survive sanitizing, content included.
const droppedElements = "script, style, iframe, frame, frameset, object, embed, applet, " +
	"form, input, button, select, textarea, link, meta, base, template, noscript, svg, math"

// allowedElements are what the blog editor produces. Any other element is
// replaced by its children.
var allowedElements = map[string]bool{
	"p": true, "br": true, "hr": true, "div": true, "span": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"strong": true, "b": true, "em": true, "i": true, "u": true, "s": true,
	"sub": true, "sup": true, "a": true, "img": true,
	"ul": true, "ol": true, "li": true, "blockquote": true, "code": true, "pre": true,
	"figure": true, "figcaption": true,
	"table": true, "thead": true, "tbody": true, "tr": true, "th": true, "td": true,
}

// allowedAttrs lists the attributes kept per element; "*" applies to all.
var allowedAttrs = map[string][]string{
	"*":   {"class"},
	"a":   {"href", "title", "target", "rel"},
	"img": {"src", "alt", "title", "width", "height"},
	"ol":  {"start"},
	"th":  {"colspan", "rowspan"},
	"td":  {"colspan", "rowspan"},
}

// urlAttrs may only carry http(s), mailto or relative URLs.
var urlAttrs = []string{"href", "src"}

// SanitizeHTML parses rich-editor output and keeps only the allow-listed
// elements and attributes, with script URLs removed. The result is safe to
// emit unescaped.
func SanitizeHTML(raw string) (template.HTML, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", err
	}
	body := doc.Find("body")
	body.Find(droppedElements).Remove()

	for {
		s := body.Find("*").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return !allowedElements[goquery.NodeName(s)]
		}).First()
		if s.Length() == 0 {
			break
		}
		s.ReplaceWithSelection(s.Contents())
	}

	body.Find("*").Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		name := goquery.NodeName(s)
		kept := node.Attr[:0]
		for _, a := range node.Attr {
			key := strings.ToLower(a.Key)
			if a.Namespace != "" || !allowedAttr(name, key) {
				continue
			}
			if isURLAttr(key) && !safeURL(a.Val) {
				continue
			}
			a.Key = key
			kept = append(kept, a)
		}
		node.Attr = kept
	})

	out, err := body.Html()
	if err != nil {
		return "", err
	}
	// #nosec G203 -- content was sanitized above
	return template.HTML(out), nil
}

func allowedAttr(element, key string) bool {
	return slices.Contains(allowedAttrs["*"], key) || slices.Contains(allowedAttrs[element], key)
}

// Excerpt returns the first max runes of the visible text of raw, with
// whitespace collapsed.
func Excerpt(raw string, max int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	doc.Find("script, style").Remove()
	return Truncate(strings.Join(strings.Fields(doc.Text()), " "), max)
}

func isURLAttr(key string) bool {
	return slices.Contains(urlAttrs, key)
}

func safeURL(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	scheme, _, found := strings.Cut(v, ":")
	if !found || strings.ContainsAny(scheme, "/?#") {
		return true
	}
	switch scheme {
	case "http", "https", "mailto":
		return true
	}
	return false
}
