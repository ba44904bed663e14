package model

type ShapesRequestBody struct {
	Root        string            `json:"root" validate:"required"`
	Type        string            `json:"type,omitempty"`
	Notes       []string          `json:"notes,omitempty"`
	Tuning      []string          `json:"tuning,omitempty"`
	TuningName  string            `json:"tuning_name,omitempty"`
	Profile     string            `json:"profile,omitempty"`
	Constraints *ConstraintsPatch `json:"constraints,omitempty"`
}

// ConstraintsPatch overrides individual fields of a named profile.
type ConstraintsPatch struct {
	MaxFingers        *int  `json:"max_fingers,omitempty" validate:"omitempty,gte=0"`
	MaxFretSpan       *int  `json:"max_fret_span,omitempty" validate:"omitempty,gte=0"`
	AllowBarres       *bool `json:"allow_barres,omitempty"`
	AllowOpenStrings  *bool `json:"allow_open_strings,omitempty"`
	AllowMutedStrings *bool `json:"allow_muted_strings,omitempty"`
	RequireRootInBass *bool `json:"require_root_in_bass,omitempty"`
}

type SearchStats struct {
	Visited   int `json:"visited"`
	Pruned    int `json:"pruned"`
	Rejected  int `json:"rejected"`
	Emitted   int `json:"emitted"`
	Unique    int `json:"unique"`
	Survivors int `json:"survivors"`
}

type ShapesResponse struct {
	Id     string      `json:"id"`
	Chord  ChordSpec   `json:"chord"`
	Source string      `json:"source"`
	Shapes []Shape     `json:"shapes"`
	Stats  SearchStats `json:"stats"`
}

type TuningSummary struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Strings []string `json:"strings"`
}

type ChordTypeSummary struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
