package gfa

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/kvbio/rukki/seqgraph"
)

const gzipMagic0, gzipMagic1 = 0x1f, 0x8b

// Parse reads a GFA-like byte stream into a frozen *seqgraph.Store.
// Only S (segment) and L (link) lines are interpreted; every other line
// is ignored. Segments must be declared before any link that references
// them, matching the convention every GFA writer in practice follows.
// Complexity: O(bytes read).
func Parse(r io.Reader) (*seqgraph.Store, error) {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(2); err == nil && magic[0] == gzipMagic0 && magic[1] == gzipMagic1 {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "gfa: opening gzip stream")
		}
		defer gz.Close()
		r = gz
	} else {
		r = br
	}

	store := seqgraph.NewStore()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		switch line[0] {
		case 'S':
			if err := parseSegment(store, line); err != nil {
				return nil, errors.Wrapf(err, "gfa: line %d", lineNo)
			}
		case 'L':
			if err := parseLink(store, line); err != nil {
				return nil, errors.Wrapf(err, "gfa: line %d", lineNo)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "gfa: scanning input")
	}

	store.Freeze()
	return store, nil
}

func parseSegment(store *seqgraph.Store, line string) error {
	fields := strings.Split(line, "\t")
	if len(fields) < 3 {
		return errors.Errorf("segment line needs at least 3 tab-separated fields, got %d", len(fields))
	}
	name, seq := fields[1], fields[2]

	length := 0
	if seq != "*" {
		length = len(seq)
	}
	var coverage float64
	for _, tag := range fields[3:] {
		switch {
		case strings.HasPrefix(tag, "LN:i:"):
			n, err := strconv.Atoi(strings.TrimPrefix(tag, "LN:i:"))
			if err != nil {
				return errors.Wrapf(err, "parsing LN tag %q", tag)
			}
			length = n
		case strings.HasPrefix(tag, "dp:f:"):
			f, err := strconv.ParseFloat(strings.TrimPrefix(tag, "dp:f:"), 64)
			if err != nil {
				return errors.Wrapf(err, "parsing dp tag %q", tag)
			}
			coverage = f
		case strings.HasPrefix(tag, "RC:i:"):
			n, err := strconv.Atoi(strings.TrimPrefix(tag, "RC:i:"))
			if err != nil {
				return errors.Wrapf(err, "parsing RC tag %q", tag)
			}
			if length > 0 {
				coverage = float64(n) / float64(length)
			}
		}
	}
	if length < 1 {
		return errors.Errorf("segment %q has no usable length: give a sequence or an LN:i: tag", name)
	}

	_, err := store.AddNode(name, length, coverage)
	return errors.Wrapf(err, "adding segment %q", name)
}

func parseLink(store *seqgraph.Store, line string) error {
	fields := strings.Split(line, "\t")
	if len(fields) < 6 {
		return errors.Errorf("link line needs at least 6 tab-separated fields, got %d", len(fields))
	}

	fromID, ok := store.NameToID(fields[1])
	if !ok {
		return errors.Errorf("segment %q referenced before being declared", fields[1])
	}
	toID, ok := store.NameToID(fields[3])
	if !ok {
		return errors.Errorf("segment %q referenced before being declared", fields[3])
	}
	fromDir, err := parseOrient(fields[2])
	if err != nil {
		return err
	}
	toDir, err := parseOrient(fields[4])
	if err != nil {
		return err
	}
	overlap, err := parseCIGAROverlap(fields[5])
	if err != nil {
		return err
	}

	err = store.AddLink(seqgraph.V(fromID, fromDir), seqgraph.V(toID, toDir), overlap)
	return errors.Wrapf(err, "adding link %s%s -> %s%s", fields[1], fields[2], fields[3], fields[4])
}

func parseOrient(s string) (seqgraph.Direction, error) {
	switch s {
	case "+":
		return seqgraph.Forward, nil
	case "-":
		return seqgraph.Reverse, nil
	default:
		return 0, errors.Errorf("invalid orientation %q, want + or -", s)
	}
}

// parseCIGAROverlap accepts the single-operation "<N>M" overlaps every GFA
// writer for assembly graphs emits; a bare "*" means no overlap recorded.
func parseCIGAROverlap(s string) (int, error) {
	if s == "*" {
		return 0, nil
	}
	idx := strings.IndexByte(s, 'M')
	if idx <= 0 || idx != len(s)-1 {
		return 0, errors.Errorf("unsupported CIGAR overlap %q: only a single <N>M operation is supported", s)
	}
	return strconv.Atoi(s[:idx])
}
