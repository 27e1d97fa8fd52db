package terminal

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Andrew-0807/ExcelProcessor/internal/models"
)

// Family identifies a class of multi-register exports sharing the same
// splitting rules and series codes.
type Family int

const (
	FamilyNone Family = iota
	FamilyM1
	FamilyM2
)

func (f Family) String() string {
	switch f {
	case FamilyM1:
		return "M1"
	case FamilyM2:
		return "M2"
	default:
		return ""
	}
}

// DefaultGroup is the register a record falls into when no rule matches.
// Partitioning is total: no record is ever dropped.
func (f Family) DefaultGroup() string {
	switch f {
	case FamilyM1:
		return "0014"
	case FamilyM2:
		return "102"
	default:
		return ""
	}
}

// SeriesFor is the document series used for one register's rows,
// overriding the profile's series for that subset.
func (f Family) SeriesFor(group string) string {
	switch f {
	case FamilyM1:
		return "BFM1 " + group
	case FamilyM2:
		return "BFM2 " + group
	default:
		return ""
	}
}

// GroupFor assigns a record to a register using the document number's
// leading digits and known markers in the free-text explanation. The
// prefixes and markers come from how each register stamps its Z reports.
func (f Family) GroupFor(r models.BorderouRecord) string {
	doc := ""
	if r.DocNumber != nil {
		doc = strconv.FormatInt(*r.DocNumber, 10)
	}
	switch f {
	case FamilyM1:
		if strings.HasPrefix(doc, "15") || strings.Contains(r.Explanation, "nr.14") {
			return "0014"
		}
		if strings.HasPrefix(doc, "6") || strings.Contains(r.Explanation, "nr.12") {
			return "0012"
		}
	case FamilyM2:
		if strings.Contains(r.Explanation, "102") || strings.HasPrefix(doc, "102") {
			return "102"
		}
		if strings.Contains(r.Explanation, "103") || strings.HasPrefix(doc, "103") {
			return "103"
		}
	}
	return f.DefaultGroup()
}

// Split partitions records into per-register groups. Every record lands in
// exactly one group; unmatched records go to the family's default group.
func Split(records []models.BorderouRecord, f Family) map[string][]models.BorderouRecord {
	groups := make(map[string][]models.BorderouRecord)
	for _, r := range records {
		key := f.GroupFor(r)
		groups[key] = append(groups[key], r)
	}
	return groups
}

// GroupKeys returns the group keys in deterministic order.
func GroupKeys(groups map[string][]models.BorderouRecord) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
