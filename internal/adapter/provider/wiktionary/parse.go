package wiktionary

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pymage/pymage-backend/internal/domain"
	"github.com/pymage/pymage-backend/internal/provider"
)

const (
	// minDefinitionLen filters empty or single-character list items.
	minDefinitionLen = 1
	// minExampleLen filters citation noise nested inside definitions.
	minExampleLen = 12
)

// placeholderDefinition is substituted when a page renders but no definitions
// could be extracted. This is a deliberate degrade-gracefully policy, not an
// error: the word exists, we just failed to scrape it.
const placeholderDefinition = "Definition parsing failed. Open the entry on en.wiktionary.org to see the full text."

var etymologyVariantRe = regexp.MustCompile(`^Etymology \d+$`)

// parseContent scrapes the rendered page HTML of one Wiktionary entry.
// The parse is best-effort, mirroring the page structure loosely:
// top-level items of ordered lists are definitions, nested dd/i/cite
// elements are example sentences, and "Etymology"/"Pronunciation" headings
// anchor the search for their respective paragraphs.
//
// A page with several numbered "Etymology N" sections is ambiguous; unless
// variant names one of them, the entry carries only Variants and the caller
// must disambiguate.
func parseContent(pageHTML, language, variant string) *provider.RawDictionaryEntry {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return &provider.RawDictionaryEntry{
			Err:     fmt.Sprintf("failed to parse page markup: %v", err),
			ErrKind: domain.LookupErrParse,
		}
	}

	entry := &provider.RawDictionaryEntry{
		Definitions:   []string{},
		Examples:      []string{},
		RelatedTerms:  []string{},
		Variants:      nil,
		Etymology:     "",
		Pronunciation: "",
	}

	variantHeadings := findVariantHeadings(doc)
	if len(variantHeadings) > 1 && variant == "" {
		for _, h := range variantHeadings {
			entry.Variants = append(entry.Variants, headingText(h))
		}
		return entry
	}

	scope := doc.Selection
	if variant != "" {
		section, ok := variantSection(doc, variantHeadings, variant)
		if !ok {
			entry.Err = fmt.Sprintf("unknown variant: %s", variant)
			entry.ErrKind = domain.LookupErrNotFound
			return entry
		}
		scope = section
	}

	// Definitions live in ordered lists; each top-level item is one
	// definition, with examples nested in italic/quote/citation elements.
	findInOrSelf(scope, "ol").Each(func(_ int, ol *goquery.Selection) {
		ol.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
			defText := strings.TrimSpace(li.Text())
			if len(defText) > minDefinitionLen {
				entry.Definitions = append(entry.Definitions, defText)

				li.Find("dd, i, cite").Each(func(_ int, ex *goquery.Selection) {
					exText := strings.TrimSpace(ex.Text())
					if len(exText) > minExampleLen {
						entry.Examples = append(entry.Examples, exText)
					}
				})
			}
		})
	})

	entry.Etymology = extractEtymology(doc, scope, variant)
	entry.Pronunciation = extractPronunciation(doc)
	entry.RelatedTerms = extractRelatedTerms(doc)

	if len(entry.Definitions) == 0 {
		entry.Definitions = []string{placeholderDefinition}
	}

	return entry
}

// extractEtymology returns the first paragraph/div following the Etymology
// heading. With a variant in effect the search is scoped to that section.
func extractEtymology(doc *goquery.Document, scope *goquery.Selection, variant string) string {
	if variant != "" {
		return strings.TrimSpace(findInOrSelf(scope, "p, div").First().Text())
	}

	heading := findHeading(doc, "Etymology")
	if heading == nil {
		return ""
	}
	next := headingAnchor(heading).NextAllFiltered("p, div").First()
	return strings.TrimSpace(next.Text())
}

// extractPronunciation prefers IPA-tagged spans anywhere on the page; when
// none exist it falls back to the first block following the Pronunciation
// heading.
func extractPronunciation(doc *goquery.Document) string {
	heading := findHeading(doc, "Pronunciation")
	if heading == nil {
		return ""
	}

	var ipa []string
	doc.Find("span.IPA").Each(func(_ int, s *goquery.Selection) {
		ipa = append(ipa, s.Text())
	})
	if len(ipa) > 0 {
		return strings.Join(ipa, ", ")
	}

	next := headingAnchor(heading).NextAllFiltered("p, div, ul").First()
	return strings.TrimSpace(next.Text())
}

// extractRelatedTerms collects list items under Synonyms/Antonyms/Related
// terms headings into one flat ordered list.
func extractRelatedTerms(doc *goquery.Document) []string {
	terms := []string{}
	doc.Find("h3, h4, h5").Each(func(_ int, h *goquery.Selection) {
		text := headingText(h)
		if text != "Synonyms" && text != "Antonyms" && text != "Related terms" {
			return
		}
		list := headingAnchor(h).NextAllFiltered("ul").First()
		list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
			term := strings.TrimSpace(li.Text())
			if term != "" {
				terms = append(terms, term)
			}
		})
	})
	return terms
}

// findVariantHeadings returns all numbered "Etymology N" headings in page order.
func findVariantHeadings(doc *goquery.Document) []*goquery.Selection {
	var headings []*goquery.Selection
	doc.Find("h3, h4").Each(func(_ int, h *goquery.Selection) {
		if etymologyVariantRe.MatchString(headingText(h)) {
			headings = append(headings, h)
		}
	})
	return headings
}

// variantSection returns the sibling nodes between the chosen etymology
// heading and the next one (or the end of the page).
func variantSection(doc *goquery.Document, headings []*goquery.Selection, variant string) (*goquery.Selection, bool) {
	var chosen *goquery.Selection
	for _, h := range headings {
		if headingText(h) == variant {
			chosen = h
			break
		}
	}
	if chosen == nil {
		return nil, false
	}

	stops := doc.Find("h3, h4").FilterFunction(func(_ int, h *goquery.Selection) bool {
		return etymologyVariantRe.MatchString(headingText(h))
	})

	anchor := headingAnchor(chosen)
	// Stop markers may be wrapped the same way the anchor is.
	wrapped := stops.Parent().Filter("div.mw-heading")
	section := anchor.NextUntilSelection(stops.AddSelection(wrapped))
	return section, true
}

// findHeading returns the first h3/h4 whose text contains needle, or nil.
func findHeading(doc *goquery.Document, needle string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("h3, h4").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if strings.Contains(headingText(h), needle) {
			found = h
			return false
		}
		return true
	})
	return found
}

// headingAnchor resolves the node whose siblings carry the section content.
// Current Wiktionary markup wraps headings in <div class="mw-heading">; older
// markup placed them directly in the flow.
func headingAnchor(h *goquery.Selection) *goquery.Selection {
	if parent := h.Parent(); parent.HasClass("mw-heading") {
		return parent
	}
	return h
}

func headingText(h *goquery.Selection) string {
	return strings.TrimSpace(h.Text())
}

// findInOrSelf matches selector against both the scope's own nodes and their
// descendants. Needed because a variant section is a flat list of siblings,
// where an <ol> can be a node of the selection rather than a descendant.
func findInOrSelf(scope *goquery.Selection, selector string) *goquery.Selection {
	return scope.Filter(selector).AddSelection(scope.Find(selector))
}
