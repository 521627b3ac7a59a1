package response_models

// DegreeRecommendation is one entry of the fixed degree catalog.
type DegreeRecommendation struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Reasons     []string `json:"reasons"`
	Skills      []string `json:"skills"`
	Icon        string   `json:"icon"`
}

// Clone returns a copy that shares no slices with the receiver.
func (d DegreeRecommendation) Clone() DegreeRecommendation {
	d.Reasons = append([]string(nil), d.Reasons...)
	d.Skills = append([]string(nil), d.Skills...)
	return d
}

type QuestionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type SliderLabels struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

type QuizQuestion struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Type    string           `json:"type"` // "radio", "checkbox", "slider"
	Options []QuestionOption `json:"options,omitempty"`
	Min     *int             `json:"min,omitempty"`
	Max     *int             `json:"max,omitempty"`
	Default *int             `json:"default,omitempty"`
	Labels  *SliderLabels    `json:"labels,omitempty"`
}
