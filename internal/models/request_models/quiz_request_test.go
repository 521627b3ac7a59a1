package request_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"degreedecider/internal/models/response_models"
	"degreedecider/pkg/utils"
)

func completeAnswers() AnswerSet {
	return AnswerSet{
		Subjects:            SubjectScience,
		Skills:              []Skill{SkillAnalysis},
		TheoryPractice:      70,
		LearningStyle:       LearningHandsOn,
		Interests:           []Interest{InterestEnvironment},
		WorkEnvironment:     WorkLab,
		CreativityStructure: 20,
	}
}

func TestAnswerSet_UnmarshalSeedsSliders(t *testing.T) {
	var a AnswerSet
	require.NoError(t, json.Unmarshal([]byte(`{"subjects":"math","theoryPractice":0}`), &a))

	assert.Equal(t, SubjectMath, a.Subjects)
	assert.Equal(t, 0, a.TheoryPractice)
	assert.Equal(t, SliderDefault, a.CreativityStructure)
	assert.Empty(t, a.Skills)
}

func TestAnswerSet_JSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(completeAnswers())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"subjects": "science",
		"skills": ["analysis"],
		"theoryPractice": 70,
		"learningStyle": "hands-on",
		"interests": ["environment"],
		"workEnvironment": "lab",
		"creativityStructure": 20
	}`, string(raw))
}

func TestAnswerSet_Validate(t *testing.T) {
	assert.NoError(t, completeAnswers().Validate())
	assert.NoError(t, NewAnswerSet().Validate())

	tests := map[string]func(a *AnswerSet){
		"subject":     func(a *AnswerSet) { a.Subjects = "history" },
		"skill":       func(a *AnswerSet) { a.Skills = append(a.Skills, "juggling") },
		"style":       func(a *AnswerSet) { a.LearningStyle = "osmosis" },
		"interest":    func(a *AnswerSet) { a.Interests = []Interest{"sports"} },
		"environment": func(a *AnswerSet) { a.WorkEnvironment = "home" },
		"low slider":  func(a *AnswerSet) { a.TheoryPractice = -1 },
		"high slider": func(a *AnswerSet) { a.CreativityStructure = 101 },
	}
	for name, mut := range tests {
		t.Run(name, func(t *testing.T) {
			a := completeAnswers()
			mut(&a)
			assert.ErrorIs(t, a.Validate(), utils.ErrInvalidInput)
			assert.False(t, a.IsComplete())
		})
	}
}

func TestAnswerSet_IsComplete(t *testing.T) {
	assert.True(t, completeAnswers().IsComplete())
	assert.False(t, NewAnswerSet().IsComplete())

	a := completeAnswers()
	a.Skills = nil
	assert.False(t, a.IsComplete())

	a = completeAnswers()
	a.WorkEnvironment = ""
	assert.False(t, a.IsComplete())

	assert.True(t, completeAnswers().HasSkill(SkillAnalysis))
	assert.False(t, completeAnswers().HasInterest(InterestDesign))
}

func TestSaveResultRequest_Validate(t *testing.T) {
	answers := completeAnswers()
	degree := response_models.DegreeRecommendation{Name: "Environmental Science"}

	assert.NoError(t, SaveResultRequest{Answers: &answers, Degree: &degree}.Validate())
	assert.ErrorIs(t, SaveResultRequest{Degree: &degree}.Validate(), utils.ErrInvalidInput)
	assert.ErrorIs(t, SaveResultRequest{Answers: &answers}.Validate(), utils.ErrInvalidInput)
	assert.ErrorIs(t, SaveResultRequest{Answers: &answers, Degree: &response_models.DegreeRecommendation{}}.Validate(), utils.ErrInvalidInput)

	var req SaveResultRequest
	require.NoError(t, json.Unmarshal([]byte(`{"answers":{"subjects":"arts"},"degree":{"name":"Graphic Design"}}`), &req))
	require.NotNil(t, req.Answers)
	assert.Equal(t, SliderDefault, req.Answers.TheoryPractice)
	assert.NoError(t, req.Validate())
}
