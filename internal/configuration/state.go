package configuration

// State is the build state of a project.
type State int

const (
	// Unbuilt means no provider is published.
	Unbuilt State = iota
	// Built means the last pass succeeded and its provider is published.
	Built
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unbuilt:
		return "UNBUILT"
	case Built:
		return "BUILT"
	default:
		return "UNKNOWN"
	}
}
