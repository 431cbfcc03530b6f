package config

// FilterConfig holds position selection criteria. An empty FilterConfig
// selects every position.
type FilterConfig struct {
	// Material is a material pattern such as "QR:qrr"
	Material string

	// ExactMaterial requires exactly the pieces in Material rather than at
	// least them
	ExactMaterial bool

	// Positions are full encodings to match exactly (counters ignored)
	Positions []string

	// Patterns are board patterns with wildcards
	Patterns []string

	// IncludeInverted also matches the colour-reversed patterns
	IncludeInverted bool

	// Insufficient selects positions where neither side has mating material
	Insufficient bool

	// MaterialOdds selects positions whose material differs from the
	// initial position's
	MaterialOdds bool

	// Negate selects the positions that do NOT match
	Negate bool
}

// NewFilterConfig creates a FilterConfig with default values.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Active reports whether any criterion is set.
func (f *FilterConfig) Active() bool {
	return f.Material != "" || len(f.Positions) > 0 || len(f.Patterns) > 0 ||
		f.Insufficient || f.MaterialOdds
}
