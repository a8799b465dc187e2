package tab

import (
	"sort"
	"strings"
)

// intervalNames abbreviates the semitone distance between two pitch
// classes.
var intervalNames = [12]string{
	"1", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7",
}

// intervalDescriptions spell out the abbreviations for the legend.
var intervalDescriptions = map[string]string{
	"1":  "Unison (same note)",
	"m2": "Minor second",
	"M2": "Major second",
	"m3": "Minor third",
	"M3": "Major third",
	"P4": "Perfect fourth",
	"TT": "Tritone (augmented 4th/diminished 5th)",
	"P5": "Perfect fifth (Power chord)",
	"m6": "Minor sixth",
	"M6": "Major sixth",
	"m7": "Minor seventh",
	"M7": "Major seventh",
}

// AnalyzeChord names the interval or chord formed by an event's pitch
// classes: an interval abbreviation for two distinct classes, triad
// names (one per plausible root) for three or more. Single notes get
// no analysis. Roots are always spelled with sharps; analysis compares
// pitch classes only, so spelling conventions don't change the result.
func AnalyzeChord(notes []ResolvedNote) []string {
	if len(notes) < 2 {
		return nil
	}
	var pcs []int
	seen := make(map[int]bool)
	for _, n := range notes {
		if !seen[n.PitchClass] {
			seen[n.PitchClass] = true
			pcs = append(pcs, n.PitchClass)
		}
	}
	sort.Ints(pcs)
	switch len(pcs) {
	case 1:
		return []string{"1"}
	case 2:
		return []string{intervalNames[floorMod(pcs[1]-pcs[0], 12)]}
	default:
		return analyzeTriad(pcs)
	}
}

func intervalsFrom(root int, pcs []int) map[int]bool {
	iv := make(map[int]bool)
	for _, pc := range pcs {
		if pc != root {
			iv[floorMod(pc-root, 12)] = true
		}
	}
	return iv
}

func analyzeTriad(pcs []int) []string {
	var results []string
	for _, root := range pcs {
		iv := intervalsFrom(root, pcs)
		rootName := sharpNames[root]
		switch {
		case iv[3] && iv[7]:
			results = append(results, rootName+"m")
		case iv[4] && iv[7]:
			results = append(results, rootName+"maj")
		case iv[3] && iv[6]:
			results = append(results, rootName+"dim")
		case iv[4] && iv[8]:
			results = append(results, rootName+"aug")
		case iv[7] && len(iv) == 1:
			results = append(results, rootName+"5")
		case iv[4] && len(iv) == 1:
			results = append(results, rootName+"(M3)")
		case iv[3] && len(iv) == 1:
			results = append(results, rootName+"(m3)")
		}
	}
	if len(results) > 0 {
		return results
	}

	// no standard triad from any root; describe from the lowest note
	root := pcs[0]
	iv := intervalsFrom(root, pcs)
	rootName := sharpNames[root]
	switch {
	case iv[5] && iv[7]:
		return []string{rootName + "sus4"}
	case iv[2] && iv[7]:
		return []string{rootName + "sus2"}
	}
	var abbrevs []string
	for _, pc := range pcs[1:] {
		abbrevs = append(abbrevs, intervalNames[floorMod(pc-root, 12)])
	}
	return []string{rootName + "(" + strings.Join(abbrevs, "+") + ")"}
}

// AnalyzeLine builds the chord-analysis line for one block, showing up
// to two interpretations per event, and records which chord types the
// document used so the legend can be filtered to them.
func AnalyzeLine(events []ResolvedEvent, used map[string]bool) string {
	parts := make([]string, 0, len(events))
	for _, ev := range events {
		names := AnalyzeChord(ev.Notes)
		if len(names) == 0 {
			parts = append(parts, "-")
			continue
		}
		if len(names) > 2 {
			names = names[:2]
		}
		for _, n := range names {
			used[n] = true
		}
		parts = append(parts, strings.Join(names, "/"))
	}
	return strings.Join(parts, " ")
}

// BuildLegend renders the chord/interval legend for the chord types a
// document actually used. It returns nil when nothing needs explaining.
func BuildLegend(used map[string]bool) []string {
	if len(used) == 0 {
		return nil
	}
	items := make(map[string]bool)
	symbols := make(map[string]bool)
	for name := range used {
		if desc, ok := intervalDescriptions[name]; ok {
			items[name+": "+desc] = true
			continue
		}
		switch {
		case strings.HasSuffix(name, "maj"):
			symbols["maj=Major"] = true
		case strings.HasSuffix(name, "m"):
			symbols["m=Minor"] = true
		case strings.HasSuffix(name, "dim"):
			symbols["dim=Diminished"] = true
		case strings.HasSuffix(name, "aug"):
			symbols["aug=Augmented"] = true
		case strings.HasSuffix(name, "5") && !strings.Contains(name, "sus"):
			symbols["5=Power chord"] = true
		}
		if strings.Contains(name, "sus") {
			symbols["sus=Suspended"] = true
		}
	}

	lines := []string{"", "--- Chord/Interval Legend ---"}
	lines = append(lines, sortedKeys(items)...)
	if len(symbols) > 0 {
		lines = append(lines, "Chord symbols: "+strings.Join(sortedKeys(symbols), ", "))
	}
	return lines
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
