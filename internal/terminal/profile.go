// Package terminal resolves source filenames to terminal-type profiles and
// partitions multi-register exports into per-register groups. The keyword
// and code tables are business data agreed with the accounting side; they
// are immutable and loaded once.
package terminal

import (
	"sort"
	"strings"
	"sync"

	"github.com/Andrew-0807/ExcelProcessor/internal/transformerror"
)

// Profile describes how one terminal type maps into the accounting import:
// the document series, the article label printed on every row, the
// warehouse code, and whether the export multiplexes several registers.
type Profile struct {
	Series       string
	ArticleLabel string
	Warehouse    int
	Family       Family
	// NeedsSplitting is true for exports that multiplex several physical
	// registers and must be partitioned into per-register output files.
	NeedsSplitting bool
}

type profileEntry struct {
	keyword      string
	series       string
	articleLabel string
	warehouse    int
}

// profiles maps filename keywords to terminal profiles. Declaration order
// breaks ties between keywords of equal length; longer keywords always win
// so that e.g. "CASA 0014" beats the generic "M1".
var profiles = []profileEntry{
	{"AUTOSERVIRE AMT", "A", "autoservire", 1},
	{"AUTOSERVIRE", "A", "autoservire", 1},
	{"AUTOSERV", "A", "autoservire", 1},
	{"FF1", "F", "ff 1", 3},
	{"FF2", "F", "FF 2", 4},
	{"FFAMT", "F", "FF AMT", 3},
	{"RESTAURANT AMT", "R", "restaurant", 2},
	{"RESTAURANT", "R", "restaurant", 2},
	{"CASA 0014", "BFM1 0014", "marfa m1 ", 1},
	{"CASA 0012", "BFM1 0012", "marfa m1 ", 1},
	{"102", "BFM2 102", "marfa m2 ", 2},
	{"103", "BFM2 103", "marfa m2 ", 2},
	{"M1", "BFM1", "marfa m1 ", 1},
	{"M2", "BFM2", "marfa m2 ", 2},
	{"M3", "BFM3", "marfa m3 ", 3},
}

var (
	sortedOnce     sync.Once
	sortedProfiles []profileEntry
)

// byLength returns the profile table ordered longest-keyword-first, ties
// keeping declaration order.
func byLength() []profileEntry {
	sortedOnce.Do(func() {
		sortedProfiles = make([]profileEntry, len(profiles))
		copy(sortedProfiles, profiles)
		sort.SliceStable(sortedProfiles, func(i, j int) bool {
			return len(sortedProfiles[i].keyword) > len(sortedProfiles[j].keyword)
		})
	})
	return sortedProfiles
}

// Resolve maps a source filename to its terminal profile. Keywords match
// as case-insensitive substrings; when several match, the longest keyword
// wins. A filename matching no keyword is fatal for the file: the series
// and warehouse codes drive accounting correctness, so no default profile
// is invented.
//
// Whether the export needs splitting is a property of the filename (it
// names an M1 or M2 family export), not of the matched keyword: an
// "M1 CASA 0014" file resolves to the CASA 0014 profile but still splits.
func Resolve(filename string) (Profile, error) {
	upper := strings.ToUpper(filename)

	for _, e := range byLength() {
		if strings.Contains(upper, e.keyword) {
			fam := familyOf(upper)
			return Profile{
				Series:         e.series,
				ArticleLabel:   e.articleLabel,
				Warehouse:      e.warehouse,
				Family:         fam,
				NeedsSplitting: fam != FamilyNone,
			}, nil
		}
	}
	return Profile{}, &transformerror.UnknownTerminalError{File: filename}
}

func familyOf(upperFilename string) Family {
	switch {
	case strings.Contains(upperFilename, "M1"):
		return FamilyM1
	case strings.Contains(upperFilename, "M2"):
		return FamilyM2
	default:
		return FamilyNone
	}
}
