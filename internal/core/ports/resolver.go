package ports

// InputResolver defines the interface for resolving input files.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type InputResolver interface {
	// ResolveInputs expands the given files, directories and glob patterns into a
	// sorted list of concrete file paths. Paths matching an ignore pattern are skipped.
	ResolveInputs(inputs []string, ignore []string) ([]string, error)
}
