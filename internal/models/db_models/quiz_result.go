package db_models

import (
	"degreedecider/internal/models/request_models"
	"degreedecider/internal/models/response_models"
)

// QuizResult is the stored layout of one history entry. Timestamp is in
// milliseconds since the epoch and doubles as the entry's key suffix.
type QuizResult struct {
	UserID    string                               `json:"userId"`
	UserEmail string                               `json:"userEmail"`
	UserName  string                               `json:"userName"`
	Answers   request_models.AnswerSet             `json:"answers"`
	Degree    response_models.DegreeRecommendation `json:"degree"`
	Timestamp int64                                `json:"timestamp"`
	CreatedAt string                               `json:"createdAt"`
}
