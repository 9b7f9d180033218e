package constants

// Format selects how the CLI renders scores.
type Format string

const (
	// FormatText renders human-readable lines.
	FormatText Format = "text"

	// FormatJSON renders one JSON object per result.
	FormatJSON Format = "json"
)

// Valid returns true if the format is a recognized value.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	}
	return false
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}
