package ports

// MoleculeValidator checks molecule identifiers before they are scored.
//
//go:generate mockgen -source=validator.go -destination=mocks/mock_validator.go -package=mocks
type MoleculeValidator interface {
	// Validate returns an error wrapping domain.ErrInvalidMolecule for malformed identifiers.
	Validate(molecule string) error
}
