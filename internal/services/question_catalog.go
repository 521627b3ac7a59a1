package services

import (
	rm "degreedecider/internal/models/request_models"
	"degreedecider/internal/models/response_models"
)

func intPtr(v int) *int { return &v }

func slider(id, title, minLabel, maxLabel string) response_models.QuizQuestion {
	return response_models.QuizQuestion{
		ID:      id,
		Title:   title,
		Type:    "slider",
		Min:     intPtr(rm.SliderMin),
		Max:     intPtr(rm.SliderMax),
		Default: intPtr(rm.SliderDefault),
		Labels:  &response_models.SliderLabels{Min: minLabel, Max: maxLabel},
	}
}

func quizQuestions() []response_models.QuizQuestion {
	return []response_models.QuizQuestion{
		{
			ID:    "subjects",
			Title: "Which subjects do you enjoy the most?",
			Type:  "radio",
			Options: []response_models.QuestionOption{
				{Value: string(rm.SubjectMath), Label: "Mathematics & Logic"},
				{Value: string(rm.SubjectScience), Label: "Natural Sciences"},
				{Value: string(rm.SubjectArts), Label: "Arts & Humanities"},
				{Value: string(rm.SubjectTech), Label: "Technology & Computers"},
			},
		},
		{
			ID:    "skills",
			Title: "What skills do you enjoy using?",
			Type:  "checkbox",
			Options: []response_models.QuestionOption{
				{Value: string(rm.SkillProblemSolving), Label: "Problem Solving"},
				{Value: string(rm.SkillCreativity), Label: "Creative Thinking"},
				{Value: string(rm.SkillCommunication), Label: "Communication"},
				{Value: string(rm.SkillAnalysis), Label: "Data Analysis"},
				{Value: string(rm.SkillHelping), Label: "Helping Others"},
				{Value: string(rm.SkillBuilding), Label: "Building & Creating"},
			},
		},
		slider("theoryPractice", "Do you prefer theory or hands-on practice?", "Theory", "Practice"),
		{
			ID:    "learningStyle",
			Title: "What's your preferred learning style?",
			Type:  "radio",
			Options: []response_models.QuestionOption{
				{Value: string(rm.LearningVisual), Label: "Visual (diagrams, charts)"},
				{Value: string(rm.LearningReading), Label: "Reading & Writing"},
				{Value: string(rm.LearningHandsOn), Label: "Hands-on Activities"},
				{Value: string(rm.LearningDiscussion), Label: "Discussion & Collaboration"},
			},
		},
		{
			ID:    "interests",
			Title: "Which areas interest you?",
			Type:  "checkbox",
			Options: []response_models.QuestionOption{
				{Value: string(rm.InterestHealthcare), Label: "Healthcare & Medicine"},
				{Value: string(rm.InterestBusiness), Label: "Business & Economics"},
				{Value: string(rm.InterestEducation), Label: "Education & Teaching"},
				{Value: string(rm.InterestEnvironment), Label: "Environment & Sustainability"},
				{Value: string(rm.InterestDesign), Label: "Design & Media"},
				{Value: string(rm.InterestEngineering), Label: "Engineering & Innovation"},
			},
		},
		{
			ID:    "workEnvironment",
			Title: "What work environment appeals to you?",
			Type:  "radio",
			Options: []response_models.QuestionOption{
				{Value: string(rm.WorkOffice), Label: "Office & Corporate"},
				{Value: string(rm.WorkLab), Label: "Laboratory & Research"},
				{Value: string(rm.WorkCreative), Label: "Creative Studio"},
				{Value: string(rm.WorkField), Label: "Field Work & Outdoors"},
			},
		},
		slider("creativityStructure", "Do you prefer creative freedom or structured tasks?", "Structure", "Creativity"),
	}
}
