package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// Verbose reports whether debug records should be emitted by default.
func (m Mode) Verbose() bool {
	return m == ModeDevelopment
}
