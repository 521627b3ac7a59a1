package controllers

import (
	"github.com/gin-gonic/gin"

	"degreedecider/internal/models/request_models"
	"degreedecider/internal/services"
	"degreedecider/pkg/middleware"
	"degreedecider/pkg/utils"
)

type QuizController struct {
	recommendationService services.RecommendationServiceInterface
	historyService        services.HistoryServiceInterface
}

func NewQuizController(
	recommendationService services.RecommendationServiceInterface,
	historyService services.HistoryServiceInterface,
) *QuizController {
	return &QuizController{
		recommendationService: recommendationService,
		historyService:        historyService,
	}
}

// Questions godoc
// @Summary List the questionnaire
// @Tags Quiz
// @Produce json
// @Success 200 {object} map[string][]response_models.QuizQuestion
// @Router /questions [get]
func (q *QuizController) Questions(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"questions": q.recommendationService.Questions()})
}

// Recommend godoc
// @Summary Recommend a degree for a completed questionnaire
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.AnswerSet true "Questionnaire answers"
// @Success 200 {object} map[string]response_models.DegreeRecommendation
// @Failure 400 {object} utils.ErrorResponse
// @Router /recommend [post]
func (q *QuizController) Recommend(c *gin.Context) {
	var answers request_models.AnswerSet
	if err := c.ShouldBindJSON(&answers); err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidInput)
		return
	}

	degree, err := q.recommendationService.Recommend(answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"degree": degree})
}

// SaveResult godoc
// @Summary Save a quiz result to the caller's history
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.SaveResultRequest true "Answers and recommended degree"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /save-result [post]
func (q *QuizController) SaveResult(c *gin.Context) {
	var req request_models.SaveResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// The token is checked before the body is judged, so an unreadable
		// body goes through as an empty request.
		_ = c.Error(err)
		req = request_models.SaveResultRequest{}
	}

	resultID, err := q.historyService.SaveResult(c.Request.Context(), c.GetString(middleware.AccessTokenKey), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true, "resultId": resultID})
}

// History godoc
// @Summary List the caller's saved results, newest first
// @Tags Quiz
// @Produce json
// @Failure 401 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /history [get]
func (q *QuizController) History(c *gin.Context) {
	results, err := q.historyService.ListResults(c.Request.Context(), c.GetString(middleware.AccessTokenKey))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"results": results})
}
