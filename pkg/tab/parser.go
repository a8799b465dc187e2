package tab

import (
	"fmt"
	"strconv"
	"strings"
)

// baseFiller are the characters that never carry meaning on a tab line.
// The configured tuning separator and rest markers are filler too, so
// bar lines inside a riff don't read as technique glyphs.
const baseFiller = "-. \t"

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isFiller(c byte, cfg Config) bool {
	return strings.IndexByte(baseFiller, c) >= 0 ||
		strings.IndexByte(cfg.separator(), c) >= 0 ||
		strings.IndexByte(cfg.RestMarkers, c) >= 0
}

// scanItem is a maximal run of digits (a fret number) or of
// non-digit non-filler characters (a technique glyph run).
type scanItem struct {
	start, end int // byte offsets, [start, end)
	text       string
	fret       bool
}

func scanLine(content string, cfg Config) []scanItem {
	var items []scanItem
	for i := 0; i < len(content); {
		switch c := content[i]; {
		case isDigit(c):
			j := i + 1
			for j < len(content) && isDigit(content[j]) {
				j++
			}
			items = append(items, scanItem{start: i, end: j, text: content[i:j], fret: true})
			i = j
		case isFiller(c, cfg):
			i++
		default:
			j := i + 1
			for j < len(content) && !isDigit(content[j]) && !isFiller(content[j], cfg) {
				j++
			}
			items = append(items, scanItem{start: i, end: j, text: content[i:j]})
			i = j
		}
	}
	return items
}

// ParseTabLine scans the fret content of one tab line (the text after
// the tuning separator) into ordered fret tokens. Runs of digits are
// consumed greedily as one multi-digit fret number; a digit run
// interrupted by a glyph parses as two independent numbers. Technique
// glyphs attach to the fret number they touch: the adjacent preceding
// number, the adjacent following number when there is no preceding one,
// or both when sandwiched directly between two numbers. A glyph with no
// adjacent number on either side has no host note and is dropped. A
// digit run too long for an int yields no defined pitch and errors.
func ParseTabLine(content string, cfg Config) ([]FretToken, error) {
	items := scanLine(content, cfg)

	var tokens []FretToken
	itemToken := make([]int, len(items))
	for i, it := range items {
		itemToken[i] = -1
		if !it.fret {
			continue
		}
		fret, err := strconv.Atoi(it.text)
		if err != nil {
			return nil, fmt.Errorf("%w: fret number %q at column %d", ErrUnresolvableFret, it.text, it.start)
		}
		tokens = append(tokens, FretToken{Column: it.start, Fret: fret, Width: it.end - it.start})
		itemToken[i] = len(tokens) - 1
	}

	for i, it := range items {
		if it.fret {
			continue
		}
		if i > 0 && items[i-1].fret && items[i-1].end == it.start {
			if t := itemToken[i-1]; t >= 0 {
				tokens[t].Techniques = append(tokens[t].Techniques, it.text)
			}
		}
		if i+1 < len(items) && items[i+1].fret && it.end == items[i+1].start {
			if t := itemToken[i+1]; t >= 0 {
				tokens[t].Techniques = append(tokens[t].Techniques, it.text)
			}
		}
	}
	return tokens, nil
}
