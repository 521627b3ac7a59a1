package request_models

import (
	"encoding/json"
	"fmt"
	"slices"

	"degreedecider/internal/models/response_models"
	"degreedecider/pkg/utils"
)

type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectScience Subject = "science"
	SubjectArts    Subject = "arts"
	SubjectTech    Subject = "tech"
)

type Skill string

const (
	SkillProblemSolving Skill = "problem-solving"
	SkillCreativity     Skill = "creativity"
	SkillCommunication  Skill = "communication"
	SkillAnalysis       Skill = "analysis"
	SkillHelping        Skill = "helping"
	SkillBuilding       Skill = "building"
)

type LearningStyle string

const (
	LearningVisual     LearningStyle = "visual"
	LearningReading    LearningStyle = "reading"
	LearningHandsOn    LearningStyle = "hands-on"
	LearningDiscussion LearningStyle = "discussion"
)

type Interest string

const (
	InterestHealthcare  Interest = "healthcare"
	InterestBusiness    Interest = "business"
	InterestEducation   Interest = "education"
	InterestEnvironment Interest = "environment"
	InterestDesign      Interest = "design"
	InterestEngineering Interest = "engineering"
)

type WorkEnvironment string

const (
	WorkOffice   WorkEnvironment = "office"
	WorkLab      WorkEnvironment = "lab"
	WorkCreative WorkEnvironment = "creative"
	WorkField    WorkEnvironment = "field"
)

const (
	SliderMin     = 0
	SliderMax     = 100
	SliderDefault = 50
)

var (
	Subjects         = []Subject{SubjectMath, SubjectScience, SubjectArts, SubjectTech}
	Skills           = []Skill{SkillProblemSolving, SkillCreativity, SkillCommunication, SkillAnalysis, SkillHelping, SkillBuilding}
	LearningStyles   = []LearningStyle{LearningVisual, LearningReading, LearningHandsOn, LearningDiscussion}
	Interests        = []Interest{InterestHealthcare, InterestBusiness, InterestEducation, InterestEnvironment, InterestDesign, InterestEngineering}
	WorkEnvironments = []WorkEnvironment{WorkOffice, WorkLab, WorkCreative, WorkField}
)

// AnswerSet is one complete pass through the questionnaire.
// TheoryPractice runs from 0 (pure theory) to 100 (pure practice);
// CreativityStructure from 0 (structure) to 100 (creativity).
type AnswerSet struct {
	Subjects            Subject         `json:"subjects"`
	Skills              []Skill         `json:"skills"`
	TheoryPractice      int             `json:"theoryPractice"`
	LearningStyle       LearningStyle   `json:"learningStyle"`
	Interests           []Interest      `json:"interests"`
	WorkEnvironment     WorkEnvironment `json:"workEnvironment"`
	CreativityStructure int             `json:"creativityStructure"`
}

// NewAnswerSet returns the state the questionnaire starts in.
func NewAnswerSet() AnswerSet {
	return AnswerSet{
		Skills:              []Skill{},
		TheoryPractice:      SliderDefault,
		Interests:           []Interest{},
		CreativityStructure: SliderDefault,
	}
}

// UnmarshalJSON seeds the sliders with their defaults so an omitted slider
// reads as untouched rather than as zero.
func (a *AnswerSet) UnmarshalJSON(data []byte) error {
	type plain AnswerSet
	seed := plain(NewAnswerSet())
	if err := json.Unmarshal(data, &seed); err != nil {
		return err
	}
	*a = AnswerSet(seed)
	return nil
}

func (a AnswerSet) HasSkill(s Skill) bool { return slices.Contains(a.Skills, s) }

func (a AnswerSet) HasInterest(i Interest) bool { return slices.Contains(a.Interests, i) }

// Validate reports the first value that falls outside its question's options.
// Unset single-choice fields and empty multi-choice fields are allowed here;
// IsComplete covers those.
func (a AnswerSet) Validate() error {
	if a.Subjects != "" && !slices.Contains(Subjects, a.Subjects) {
		return fmt.Errorf("%w: unknown subjects value %q", utils.ErrInvalidInput, a.Subjects)
	}
	for _, s := range a.Skills {
		if !slices.Contains(Skills, s) {
			return fmt.Errorf("%w: unknown skills value %q", utils.ErrInvalidInput, s)
		}
	}
	if a.LearningStyle != "" && !slices.Contains(LearningStyles, a.LearningStyle) {
		return fmt.Errorf("%w: unknown learningStyle value %q", utils.ErrInvalidInput, a.LearningStyle)
	}
	for _, i := range a.Interests {
		if !slices.Contains(Interests, i) {
			return fmt.Errorf("%w: unknown interests value %q", utils.ErrInvalidInput, i)
		}
	}
	if a.WorkEnvironment != "" && !slices.Contains(WorkEnvironments, a.WorkEnvironment) {
		return fmt.Errorf("%w: unknown workEnvironment value %q", utils.ErrInvalidInput, a.WorkEnvironment)
	}
	if a.TheoryPractice < SliderMin || a.TheoryPractice > SliderMax {
		return fmt.Errorf("%w: theoryPractice must be between %d and %d", utils.ErrInvalidInput, SliderMin, SliderMax)
	}
	if a.CreativityStructure < SliderMin || a.CreativityStructure > SliderMax {
		return fmt.Errorf("%w: creativityStructure must be between %d and %d", utils.ErrInvalidInput, SliderMin, SliderMax)
	}
	return nil
}

// IsComplete mirrors the questionnaire's "answered" rule for every question.
func (a AnswerSet) IsComplete() bool {
	if a.Validate() != nil {
		return false
	}
	return a.Subjects != "" &&
		len(a.Skills) > 0 &&
		a.LearningStyle != "" &&
		len(a.Interests) > 0 &&
		a.WorkEnvironment != ""
}

// SaveResultRequest is the body of POST /save-result.
// Both fields are pointers so a missing field can be told apart from an empty one.
type SaveResultRequest struct {
	Answers *AnswerSet                            `json:"answers"`
	Degree  *response_models.DegreeRecommendation `json:"degree"`
}

func (r SaveResultRequest) Validate() error {
	if r.Answers == nil || r.Degree == nil {
		return fmt.Errorf("%w: answers and degree are required", utils.ErrInvalidInput)
	}
	if err := r.Answers.Validate(); err != nil {
		return err
	}
	if r.Degree.Name == "" {
		return fmt.Errorf("%w: degree name is required", utils.ErrInvalidInput)
	}
	return nil
}
