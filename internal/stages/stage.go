package stages

// Stage is a level definition: a pixel width plus the placed elements the
// client renders and collides against.
type Stage struct {
	ID       string    `json:"id"`
	Width    int       `json:"width"`
	Elements []Element `json:"elements"`
}

// Element is a single placed object within a stage. Properties carries
// free-form per-element data that only the client interprets.
type Element struct {
	Type       string         `json:"type"`
	Subtype    string         `json:"subtype,omitempty"`
	BlockType  string         `json:"blockType,omitempty"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Properties map[string]any `json:"properties,omitempty"`
}

// StartStageID is the identifier of the flat starting stage.
const StartStageID = "flat"

// StartFallback is served when the flat starting stage is missing from the
// catalog, so a fresh deployment still has a playable spawn.
func StartFallback() *Stage {
	return &Stage{
		ID:    "flat_fallback",
		Width: 800,
		Elements: []Element{
			{Type: "platform", X: 0, Y: 500, Width: 800, Height: 50},
		},
	}
}
