// filters.go - Position selection
package main

import (
	"strings"

	"github.com/lgbarn/fenboard-go/internal/config"
	"github.com/lgbarn/fenboard-go/internal/matching"
)

// listFlag collects the values of a repeatable string flag.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// buildMatcher combines the selection criteria of cfg into one matcher.
// A position must satisfy every criterion given. It returns nil when no
// criterion is set.
func buildMatcher(cfg *config.FilterConfig) (matching.PositionMatcher, error) {
	if !cfg.Active() {
		return nil, nil
	}

	all := matching.NewCompositeMatcher(matching.MatchAll)

	if cfg.Material != "" {
		mm, err := matching.NewMaterialMatcher(cfg.Material, cfg.ExactMaterial)
		if err != nil {
			return nil, err
		}
		all.Add(mm)
	}

	if len(cfg.Positions) > 0 || len(cfg.Patterns) > 0 {
		pm := matching.NewPatternMatcher()
		for _, encoding := range cfg.Positions {
			if err := pm.AddFEN(encoding, ""); err != nil {
				return nil, err
			}
		}
		for _, pattern := range cfg.Patterns {
			pm.AddPattern(pattern, "", cfg.IncludeInverted)
		}
		all.Add(pm)
	}

	if cfg.Insufficient {
		all.Add(matching.InsufficientMaterialMatcher{})
	}
	if cfg.MaterialOdds {
		all.Add(matching.MaterialOddsMatcher{})
	}

	if cfg.Negate {
		return matching.Negated{PositionMatcher: all}, nil
	}
	return all, nil
}
