package model

// Constraints is the playability profile a search runs under.
type Constraints struct {
	MaxFingers        int    `json:"max_fingers" yaml:"max_fingers" validate:"gte=0"`
	MaxFretSpan       int    `json:"max_fret_span" yaml:"max_fret_span" validate:"gte=0"`
	AllowBarres       bool   `json:"allow_barres" yaml:"allow_barres"`
	AllowOpenStrings  bool   `json:"allow_open_strings" yaml:"allow_open_strings"`
	AllowMutedStrings bool   `json:"allow_muted_strings" yaml:"allow_muted_strings"`
	RequireRootInBass bool   `json:"require_root_in_bass" yaml:"require_root_in_bass"`
	Tuning            Tuning `json:"tuning" yaml:"-" validate:"required,min=1"`
}

// DefaultConstraints is a four finger, four fret profile with everything
// allowed and no bass requirement.
func DefaultConstraints(t Tuning) Constraints {
	return Constraints{
		MaxFingers:        4,
		MaxFretSpan:       4,
		AllowBarres:       true,
		AllowOpenStrings:  true,
		AllowMutedStrings: true,
		RequireRootInBass: false,
		Tuning:            t,
	}
}

// Apply returns a copy of c with every set field of p overriding it.
func (c Constraints) Apply(p *ConstraintsPatch) Constraints {
	if p == nil {
		return c
	}
	if p.MaxFingers != nil {
		c.MaxFingers = *p.MaxFingers
	}
	if p.MaxFretSpan != nil {
		c.MaxFretSpan = *p.MaxFretSpan
	}
	if p.AllowBarres != nil {
		c.AllowBarres = *p.AllowBarres
	}
	if p.AllowOpenStrings != nil {
		c.AllowOpenStrings = *p.AllowOpenStrings
	}
	if p.AllowMutedStrings != nil {
		c.AllowMutedStrings = *p.AllowMutedStrings
	}
	if p.RequireRootInBass != nil {
		c.RequireRootInBass = *p.RequireRootInBass
	}
	return c
}
