package domain

import "strings"

// Request asks for the docking score of one molecule against one target.
type Request struct {
	Molecule string
	Target   string
}

// NewRequest builds a normalized request.
func NewRequest(molecule, target string) Request {
	return Request{
		Molecule: NormalizeMolecule(molecule),
		Target:   NormalizeTarget(target),
	}
}

// Key returns the cache key of the request.
func (r Request) Key() string {
	return Key(r.Molecule, r.Target)
}

// NormalizeMolecule trims surrounding whitespace.
// SMILES is case-sensitive (aromatic atoms are lowercase), so case is preserved.
func NormalizeMolecule(molecule string) string {
	return strings.TrimSpace(molecule)
}

// NormalizeTarget trims surrounding whitespace and upper-cases the identifier.
func NormalizeTarget(target string) string {
	return strings.ToUpper(strings.TrimSpace(target))
}

// Key joins an already normalized molecule and target into a cache key.
func Key(molecule, target string) string {
	return target + "\x00" + molecule
}
