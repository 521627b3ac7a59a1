package services

import (
	"fmt"

	rm "degreedecider/internal/models/request_models"
	"degreedecider/internal/models/response_models"
	"degreedecider/pkg/metrics"
	"degreedecider/pkg/utils"
)

type RecommendationServiceInterface interface {
	Questions() []response_models.QuizQuestion
	Recommend(answers rm.AnswerSet) (response_models.DegreeRecommendation, error)
}

type RecommendationService struct {
	metrics *metrics.Metrics
}

func NewRecommendationService(m *metrics.Metrics) RecommendationServiceInterface {
	return &RecommendationService{metrics: m}
}

func (r *RecommendationService) Questions() []response_models.QuizQuestion {
	return quizQuestions()
}

// Recommend rejects answer sets the questionnaire would not let through,
// then classifies.
func (r *RecommendationService) Recommend(answers rm.AnswerSet) (response_models.DegreeRecommendation, error) {
	if err := answers.Validate(); err != nil {
		return response_models.DegreeRecommendation{}, err
	}
	if !answers.IsComplete() {
		return response_models.DegreeRecommendation{}, fmt.Errorf("%w: every question must be answered", utils.ErrInvalidInput)
	}

	degree := ClassifyDegree(answers)
	r.metrics.ObserveRecommendation(degree.Name)
	return degree, nil
}
