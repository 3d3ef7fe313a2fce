package registry

// Static is a provider backed by a literal list of names, used for
// inline [registry] names in the config and in tests.
type Static struct {
	id    string
	names []string
}

// NewStatic returns a Static provider wrapping the given names. The
// slice is copied so later mutation by the caller cannot change the
// snapshot.
func NewStatic(id string, names []string) *Static {
	cp := make([]string, len(names))
	copy(cp, names)

	return &Static{id: id, names: cp}
}

func (s *Static) ID() string {
	return s.id
}

func (s *Static) Names() ([]string, error) {
	return s.names, nil
}
