package trioio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/kvbio/rukki/seqgraph"
	"github.com/kvbio/rukki/trio"
)

// Counts is one node's raw parental marker evidence.
type Counts struct {
	NodeName string
	Paternal int
	Maternal int
}

// ReadMarkerCounts parses a "node\tpaternal_count\tmaternal_count" table,
// one row per line. Blank lines and lines starting with '#' are skipped.
// Complexity: O(bytes read).
func ReadMarkerCounts(r io.Reader) ([]Counts, error) {
	scanner := bufio.NewScanner(r)
	var out []Counts
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, errors.Errorf("trioio: line %d: expected 3 tab-separated fields, got %d", lineNo, len(fields))
		}
		p, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "trioio: line %d: parsing paternal count", lineNo)
		}
		m, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, errors.Wrapf(err, "trioio: line %d: parsing maternal count", lineNo)
		}
		out = append(out, Counts{NodeName: fields[0], Paternal: p, Maternal: m})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "trioio: scanning input")
	}
	return out, nil
}

// Thresholds configures AssignParentalGroups.
type Thresholds struct {
	// LowCount is the total marker count (paternal+maternal) below which a
	// node is classified Issue (too little evidence) rather than genuinely
	// homozygous.
	LowCount int
	// Ratio is how dominant one parent's markers must be, as a fraction of
	// the total, before the node is called Paternal or Maternal outright.
	Ratio float64
}

// AssignParentalGroups turns raw counts into a trio.Oracle over g's node
// ids, matching names in counts against g.AllNodes()'s Name field. Counts
// for names not present in g are ignored.
func AssignParentalGroups(g seqgraph.Graph, counts []Counts, th Thresholds) trio.Oracle {
	nameToID := map[string]int{}
	maxID := 0
	for _, n := range g.AllNodes() {
		nameToID[n.Name] = n.ID
		if n.ID >= maxID {
			maxID = n.ID + 1
		}
	}

	assignments := make(map[int]trio.Assignment, len(counts))
	for _, c := range counts {
		id, ok := nameToID[c.NodeName]
		if !ok {
			continue
		}
		assignments[id] = trio.Assignment{
			Group: classify(c, th),
			Info:  trio.Info{PaternalMarkers: c.Paternal, MaternalMarkers: c.Maternal},
		}
	}
	return trio.NewMapOracle(maxID, assignments)
}

// classify applies a ratio-of-total heuristic: heavily skewed counts call
// the dominant parent, balanced non-trivial counts call Homozygous (the
// node is present in both haplotypes), and everything else - too little
// evidence, or a skew that clears neither bar - is Issue.
func classify(c Counts, th Thresholds) trio.Group {
	total := c.Paternal + c.Maternal
	if total < th.LowCount {
		return trio.Issue
	}
	ratio := float64(c.Paternal) / float64(total)
	switch {
	case ratio >= th.Ratio:
		return trio.Paternal
	case ratio <= 1-th.Ratio:
		return trio.Maternal
	case ratio > 0.4 && ratio < 0.6:
		return trio.Homozygous
	default:
		return trio.Issue
	}
}
