package trio

// Group classifies a node by parental haplotype evidence.
type Group uint8

const (
	Paternal Group = iota
	Maternal
	Homozygous
	Issue
)

func (g Group) String() string {
	switch g {
	case Paternal:
		return "PATERNAL"
	case Maternal:
		return "MATERNAL"
	case Homozygous:
		return "HOMOZYGOUS"
	default:
		return "ISSUE"
	}
}

// Definite reports whether g is a usable haplotype assignment, i.e.
// Paternal or Maternal. Homozygous and Issue are not definite.
func (g Group) Definite() bool {
	return g == Paternal || g == Maternal
}

// Blend combines two groups reached via different evidence for the same
// node: equal groups pass through unchanged, Homozygous yields to the
// other group (it carries no conflicting haplotype information), and any
// other combination (Paternal vs Maternal) is an Issue.
func Blend(a, b Group) Group {
	if a == b {
		return a
	}
	if a == Homozygous {
		return b
	}
	if b == Homozygous {
		return a
	}
	return Issue
}

// Incompatible reports whether a and b are the two opposite definite
// haplotypes — the only combination that can never share a node.
func Incompatible(a, b Group) bool {
	return (a == Paternal && b == Maternal) || (a == Maternal && b == Paternal)
}
