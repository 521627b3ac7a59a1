package services

import (
	rm "degreedecider/internal/models/request_models"
	"degreedecider/internal/models/response_models"
)

type degreeRule struct {
	degree  string
	matches func(a rm.AnswerSet) bool
}

// degreeRules is evaluated top to bottom and the first match wins, so an
// answer set satisfying several predicates gets the earliest degree.
// Numeric comparisons are strict.
var degreeRules = []degreeRule{
	{DegreeComputerScience, func(a rm.AnswerSet) bool {
		return a.Subjects == rm.SubjectTech ||
			(a.HasSkill(rm.SkillProblemSolving) && a.HasSkill(rm.SkillBuilding)) ||
			a.HasInterest(rm.InterestEngineering)
	}},
	{DegreeBusinessAdmin, func(a rm.AnswerSet) bool {
		return a.HasInterest(rm.InterestBusiness) ||
			a.WorkEnvironment == rm.WorkOffice ||
			a.HasSkill(rm.SkillCommunication)
	}},
	{DegreeEngineering, func(a rm.AnswerSet) bool {
		return a.Subjects == rm.SubjectMath ||
			(a.HasSkill(rm.SkillBuilding) && a.TheoryPractice > 60) ||
			a.HasInterest(rm.InterestEngineering)
	}},
	{DegreePsychology, func(a rm.AnswerSet) bool {
		return a.HasInterest(rm.InterestHealthcare) ||
			a.HasSkill(rm.SkillHelping) ||
			(a.HasSkill(rm.SkillCommunication) && a.TheoryPractice < 50)
	}},
	{DegreeEnvironmentalScience, func(a rm.AnswerSet) bool {
		return a.Subjects == rm.SubjectScience ||
			a.HasInterest(rm.InterestEnvironment) ||
			a.WorkEnvironment == rm.WorkField
	}},
	{DegreeGraphicDesign, func(a rm.AnswerSet) bool {
		return a.Subjects == rm.SubjectArts ||
			a.CreativityStructure > 60 ||
			a.HasInterest(rm.InterestDesign) ||
			a.HasSkill(rm.SkillCreativity)
	}},
	{DegreeEducation, func(a rm.AnswerSet) bool {
		return a.HasInterest(rm.InterestEducation) ||
			(a.HasSkill(rm.SkillHelping) && a.HasSkill(rm.SkillCommunication))
	}},
}

// ClassifyDegree maps an answer set to its recommended degree. It never
// fails; answers the questionnaire would not produce still fall through the
// rules to Liberal Arts or whichever rule they happen to match.
func ClassifyDegree(answers rm.AnswerSet) response_models.DegreeRecommendation {
	for _, rule := range degreeRules {
		if rule.matches(answers) {
			return degreeCatalog[rule.degree].Clone()
		}
	}
	return degreeCatalog[DegreeLiberalArts].Clone()
}
