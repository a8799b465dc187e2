package tab

import (
	"fmt"
	"os"
	"strings"
)

// Converter runs whole-document conversions under one configuration.
// The conversion is a pure function of the input lines and the config;
// a Converter can be reused and produces byte-identical output for
// identical input.
type Converter struct {
	cfg Config
}

// New creates a Converter with the given configuration.
func New(cfg Config) *Converter {
	return &Converter{cfg: cfg}
}

// Config returns the converter's configuration.
func (c *Converter) Config() Config {
	return c.cfg
}

// docItem is one unit of the parsed document: a tab block, or a single
// pass-through line.
type docItem struct {
	block *TabBlock
	text  string
}

// parseDocument classifies every input line, accumulating consecutive
// tab lines into blocks. String indexes are assigned top to bottom
// within each block, which is tuning-assignment order.
func (c *Converter) parseDocument(lines []string) ([]docItem, error) {
	var items []docItem
	var block *TabBlock
	for i, line := range lines {
		lineNo := i + 1
		if !IsTabLine(line, c.cfg) {
			if block != nil {
				items = append(items, docItem{block: block})
				block = nil
			}
			items = append(items, docItem{text: line})
			continue
		}
		prefix, content, _ := SplitTabLine(line, c.cfg)
		if block == nil {
			block = &TabBlock{FirstLine: lineNo}
		}
		stringIndex := len(block.Tunings) + 1
		if stringIndex > MaxStrings {
			return nil, fmt.Errorf("line %d: %w: block has more than %d string lines",
				lineNo, ErrMalformedConfig, MaxStrings)
		}
		tuning, err := ResolveTuning(prefix, stringIndex, c.cfg)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		toks, err := ParseTabLine(content, c.cfg)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		block.Tunings = append(block.Tunings, tuning)
		block.Strings = append(block.Strings, toks)
	}
	if block != nil {
		items = append(items, docItem{block: block})
	}
	return items, nil
}

// checkOverrides rejects tuning overrides that name a string the block
// does not have. Overrides are ignored wholesale in omit-octaves mode.
func (c *Converter) checkOverrides(b *TabBlock) error {
	if c.cfg.OmitOctaves {
		return nil
	}
	for idx := range c.cfg.StringTunings {
		if idx > len(b.Tunings) {
			return fmt.Errorf("%w: tuning override for string %d but block has %d strings",
				ErrMalformedConfig, idx, len(b.Tunings))
		}
	}
	return nil
}

func (c *Converter) renderBlock(b *TabBlock, used map[string]bool) ([]string, error) {
	if err := c.checkOverrides(b); err != nil {
		return nil, err
	}
	events := AlignBlock(b.Strings)
	resolved, err := ResolveEvents(events, b.Tunings, c.cfg)
	if err != nil {
		return nil, err
	}
	var lines []string
	if c.cfg.ChordAnalysis {
		lines = append(lines, AnalyzeLine(resolved, used))
	}
	lines = append(lines, RenderLine(resolved, c.cfg))
	return lines, nil
}

// Convert transforms input lines into note-name lines. Each tab block
// collapses to one output line (two with chord analysis enabled);
// every other line passes through verbatim in its original position.
// Any error aborts the whole conversion and names the offending line;
// partial musical output is worse than a hard failure.
func (c *Converter) Convert(lines []string) ([]string, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	items, err := c.parseDocument(lines)
	if err != nil {
		return nil, err
	}
	used := make(map[string]bool)
	var out []string
	for _, it := range items {
		if it.block == nil {
			out = append(out, it.text)
			continue
		}
		rendered, err := c.renderBlock(it.block, used)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", it.block.FirstLine, err)
		}
		out = append(out, rendered...)
	}
	if c.cfg.ChordAnalysis {
		out = append(out, BuildLegend(used)...)
	}
	return out, nil
}

// ConvertString converts a whole document held in one string,
// preserving the presence or absence of a trailing newline.
func (c *Converter) ConvertString(doc string) (string, error) {
	lines := strings.Split(doc, "\n")
	trailing := false
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
		trailing = true
	}
	out, err := c.Convert(lines)
	if err != nil {
		return "", err
	}
	result := strings.Join(out, "\n")
	if trailing && result != "" {
		result += "\n"
	}
	return result, nil
}

// ConvertFile reads a tab file, converts it, and writes the result.
func (c *Converter) ConvertFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	result, err := c.ConvertString(string(data))
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(result), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
