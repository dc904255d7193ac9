// Package chem provides structural checks for SMILES molecule identifiers.
package chem

import (
	"regexp"

	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MoleculeValidator = (*Validator)(nil)

// MaxLength bounds the accepted SMILES length.
const MaxLength = 2048

var reSMILESChars = regexp.MustCompile(`^[A-Za-z0-9@+\-\[\]()=#$:/\\%.*]+$`)

// smilesAtoms are the symbols allowed outside brackets.
var smilesAtoms = map[string]bool{
	"B": true, "C": true, "N": true, "O": true, "P": true, "S": true,
	"F": true, "Cl": true, "Br": true, "I": true,
	"b": true, "c": true, "n": true, "o": true, "s": true, "p": true,
	"*": true,
}

// Validator performs a lightweight structural check of SMILES strings.
// It does not parse chemistry: valence, aromaticity and stereo are not checked.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns an error wrapping domain.ErrInvalidMolecule if the molecule is malformed.
func (v *Validator) Validate(molecule string) error {
	m := domain.NormalizeMolecule(molecule)

	var reason string
	switch {
	case m == "":
		reason = "molecule is empty"
	case len(m) > MaxLength:
		reason = "molecule is too long"
	case !reSMILESChars.MatchString(m):
		reason = "molecule contains characters not allowed in SMILES"
	case !checkParenthesesBalance(m):
		reason = "unbalanced parentheses"
	case !checkBracketBalance(m):
		reason = "unbalanced brackets"
	case !checkRingClosures(m):
		reason = "unmatched ring closure digits"
	case !checkAtoms(m):
		reason = "unknown atom symbol outside brackets"
	default:
		return nil
	}

	return zerr.With(zerr.Wrap(domain.ErrInvalidMolecule, reason), "molecule", molecule)
}

func checkParenthesesBalance(s string) bool {
	depth := 0
	for _, ch := range s {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// checkBracketBalance also rejects nested and empty brackets.
func checkBracketBalance(s string) bool {
	open := -1
	for i, ch := range s {
		switch ch {
		case '[':
			if open >= 0 {
				return false
			}
			open = i
		case ']':
			if open < 0 || i == open+1 {
				return false
			}
			open = -1
		}
	}
	return open < 0
}

func checkRingClosures(s string) bool {
	counts := make(map[string]int)

	inBracket := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '[':
			inBracket = true
		case ch == ']':
			inBracket = false
		case inBracket:
		case ch == '%':
			if i+2 >= len(s) || !isDigit(s[i+1]) || !isDigit(s[i+2]) {
				return false
			}
			counts[s[i+1:i+3]]++
			i += 2
		case isDigit(ch):
			counts[string(ch)]++
		}
	}

	for _, c := range counts {
		if c%2 != 0 {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// checkAtoms verifies atoms outside brackets against the organic subset.
// Inside brackets anything is allowed.
func checkAtoms(s string) bool {
	inBracket := false
	atoms := 0
	for i := 0; i < len(s); {
		ch := s[i]
		switch {
		case ch == '[':
			inBracket = true
			atoms++
			i++
			continue
		case ch == ']':
			inBracket = false
			i++
			continue
		case inBracket, isSpecial(ch):
			i++
			continue
		}

		if i+1 < len(s) && smilesAtoms[s[i:i+2]] {
			atoms++
			i += 2
			continue
		}
		if smilesAtoms[s[i:i+1]] {
			atoms++
			i++
			continue
		}
		return false
	}
	return atoms > 0
}

func isSpecial(ch byte) bool {
	switch ch {
	case '(', ')', '.', '=', '#', '$', ':', '/', '\\', '@', '+', '-', '%',
		'0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	}
	return false
}
