package preset

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"modlist-builder/core/modlist"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

const (
	linkPrefixHTTP  = "http://steamcommunity.com/sharedfiles/filedetails/?id="
	linkPrefixHTTPS = "https://steamcommunity.com/sharedfiles/filedetails/?id="
)

var (
	selectorMod  = cascadia.MustCompile(`body > div.mod-list > table tr[data-type="ModContainer"]`)
	selectorName = cascadia.MustCompile(`td[data-type="DisplayName"]`)
	selectorLink = cascadia.MustCompile(`td > a[data-type="Link"]`)
	selectorMeta = cascadia.MustCompile(`meta[name]`)
)

// familyMetaPrefixes maps a meta tag namespace to the family that emits it.
var familyMetaPrefixes = map[string]modlist.Family{
	"arma:": modlist.FamilyArma,
	"dayz:": modlist.FamilyDayZ,
}

// Document is a parsed preset.
type Document struct {
	// Family is the detected (or overridden) product line.
	Family modlist.Family
	// Name is the preset name from the launcher meta tags, if any.
	Name string
	// Entries lists the add-ons in document order.
	Entries []modlist.PresetEntry
}

// Options adjusts parsing.
type Options struct {
	// Family overrides detection when set.
	Family modlist.Family
}

// ParseFile reads and parses the preset at path.
func ParseFile(path string, opts Options) (*Document, error) {
	if path == "" {
		return nil, modlist.ErrNoSourceProvided
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read preset file: %w", err)
	}
	defer f.Close()

	return Parse(f, opts)
}

// Parse reads a preset document from r.
func Parse(r io.Reader, opts Options) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &modlist.ParseError{Source: modlist.SourcePreset, Reason: err}
	}

	entries, err := parseEntries(doc)
	if err != nil {
		return nil, err
	}

	family, name := detectFamily(doc)
	if opts.Family != "" {
		family = opts.Family
	}
	if !family.IsValid() {
		return nil, modlist.ErrUnknownFamily
	}

	return &Document{Family: family, Name: name, Entries: entries}, nil
}

func parseEntries(doc *goquery.Document) ([]modlist.PresetEntry, error) {
	var (
		entries  []modlist.PresetEntry
		parseErr error
	)

	doc.FindMatcher(selectorMod).EachWithBreak(func(index int, row *goquery.Selection) bool {
		name, ok := firstText(row.FindMatcher(selectorName))
		if !ok {
			parseErr = rowError(modlist.ReasonDisplayNameSelector, index)
			return false
		}

		href, _ := row.FindMatcher(selectorLink).First().Attr("href")
		id, ok := workshopID(href)
		if !ok {
			parseErr = rowError(modlist.ReasonLinkSelector, index)
			return false
		}

		entries = append(entries, modlist.PresetEntry{DisplayName: name, ID: id})
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	if len(entries) == 0 {
		return nil, rowError(modlist.ReasonNoMatches, 0)
	}

	return entries, nil
}

func rowError(kind modlist.ReasonKind, index int) error {
	return &modlist.ParseError{
		Source: modlist.SourcePreset,
		Reason: &modlist.PresetReason{Kind: kind, Index: index},
	}
}

// firstText returns the first text node below the first selected element.
func firstText(sel *goquery.Selection) (string, bool) {
	if sel.Length() == 0 {
		return "", false
	}

	var walk func(n *html.Node) (string, bool)
	walk = func(n *html.Node) (string, bool) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				return c.Data, true
			}
			if text, ok := walk(c); ok {
				return text, true
			}
		}
		return "", false
	}

	return walk(sel.Get(0))
}

// workshopID extracts the numeric id from a Steam Workshop link.
func workshopID(link string) (uint64, bool) {
	link = strings.TrimSpace(link)

	raw, ok := strings.CutPrefix(link, linkPrefixHTTP)
	if !ok {
		raw, ok = strings.CutPrefix(link, linkPrefixHTTPS)
	}
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// detectFamily inspects the launcher meta tags. The first namespaced tag
// decides the family; a "<ns>:PresetName" tag supplies the preset name.
func detectFamily(doc *goquery.Document) (modlist.Family, string) {
	var (
		family modlist.Family
		name   string
	)

	doc.FindMatcher(selectorMeta).Each(func(_ int, meta *goquery.Selection) {
		key := strings.ToLower(meta.AttrOr("name", ""))
		for prefix, f := range familyMetaPrefixes {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			if family == "" {
				family = f
			}
			if f == family && key == prefix+"presetname" {
				name = meta.AttrOr("content", "")
			}
		}
	})

	return family, name
}
