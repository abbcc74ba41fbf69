// Package reflow cleans raw per-page extracted text and reconstructs
// paragraphs from it.
//
// Text coming out of OCR (or out of a PDF text layer) arrives as hard-wrapped
// lines with stray whitespace, spurious spaces between CJK characters, and
// ASCII words broken across line ends with hyphens. Reflow repairs these
// artifacts and merges wrapped lines back into paragraphs: a line is appended
// to the current paragraph unless the paragraph already ends with terminal
// punctuation, in which case a new paragraph starts.
//
// Reflow is idempotent on text that is already clean: feeding its own output
// back in produces the same paragraphs.
package reflow

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Options control how a page of raw text is reflowed.
type Options struct {
	// RemoveTokens lists substrings (page headers, footers, watermarks) that
	// are stripped from the text before paragraph reconstruction.
	RemoveTokens []string

	// KeepHyphens disables the repair of ASCII words broken across line ends
	// with a trailing hyphen.
	KeepHyphens bool
}

var (
	cjkSpacing = regexp.MustCompile(`(\p{Han})[ \t]+(\p{Han})`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// Terminal punctuation that ends a paragraph. A line whose accumulated
// paragraph ends with one of these runes starts a new paragraph instead of
// being merged into the previous one. Covers both CJK and ASCII sentence
// enders plus closing quotes and parentheses.
const terminalPunct = "。！？!?：:；;…”\"）)"

// CleanCJKSpacing removes whitespace between adjacent Han characters,
// repairing OCR output such as "人 设" back to "人设". The pattern is applied
// repeatedly because matches may overlap ("中 文 字" needs two passes).
func CleanCJKSpacing(s string) string {
	for {
		cleaned := cjkSpacing.ReplaceAllString(s, "$1$2")
		if cleaned == s {
			return cleaned
		}
		s = cleaned
	}
}

// RemoveTokens strips every occurrence of each token from s. Used to drop
// repeating page furniture (headers, footers) before reflowing.
func RemoveTokens(s string, tokens []string) string {
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		s = strings.ReplaceAll(s, tok, "")
	}
	return s
}

// Page reflows one page of raw extracted text into paragraphs.
// Empty input (or input that is all whitespace) yields no paragraphs.
func Page(s string, opts Options) []string {
	s = norm.NFC.String(s)
	if len(opts.RemoveTokens) > 0 {
		s = RemoveTokens(s, opts.RemoveTokens)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var paragraphs []string
	var buf strings.Builder

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		paragraphs = append(paragraphs, CleanCJKSpacing(buf.String()))
		buf.Reset()
	}

	for _, raw := range strings.Split(s, "\n") {
		line := multiSpace.ReplaceAllString(strings.TrimSpace(raw), " ")
		if line == "" {
			continue
		}

		if buf.Len() == 0 {
			buf.WriteString(line)
			continue
		}

		if endsWithTerminal(buf.String()) {
			flush()
			buf.WriteString(line)
			continue
		}

		if !opts.KeepHyphens && joinHyphenated(&buf, line) {
			continue
		}

		buf.WriteString(" ")
		buf.WriteString(line)
	}
	flush()

	return paragraphs
}

// Text reflows one page and joins the resulting paragraphs with blank lines.
func Text(s string, opts Options) string {
	return strings.Join(Page(s, opts), "\n\n")
}

// endsWithTerminal reports whether the last rune of s is paragraph-ending
// punctuation.
func endsWithTerminal(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 {
		return false
	}
	return strings.ContainsRune(terminalPunct, r)
}

// joinHyphenated merges a hyphen-broken ASCII word across a soft line break:
// a buffer ending in "letter-" followed by a line starting with a lowercase
// letter is joined with the hyphen removed ("exam-" + "ple" -> "example").
// Reports whether the join happened.
func joinHyphenated(buf *strings.Builder, line string) bool {
	cur := buf.String()
	if !strings.HasSuffix(cur, "-") {
		return false
	}
	before, _ := utf8.DecodeLastRuneInString(strings.TrimSuffix(cur, "-"))
	first, _ := utf8.DecodeRuneInString(line)
	if !isASCIILetter(before) || !unicode.IsLower(first) || first > unicode.MaxASCII {
		return false
	}
	merged := strings.TrimSuffix(cur, "-") + line
	buf.Reset()
	buf.WriteString(merged)
	return true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
