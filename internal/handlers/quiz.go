package handlers

import (
	"errors"
	"net/http"

	"quizforge/internal/service"

	"github.com/gin-gonic/gin"
)

type generateQuizRequest struct {
	Topic        string `form:"topic" binding:"required"`
	Difficulty   string `form:"difficulty" binding:"required"`
	NumQuestions int    `form:"num_questions" binding:"required,gt=0"`
}

// Score is a pointer so that an explicit 0 (all answers wrong) still passes
// the required check.
type updateXPRequest struct {
	Difficulty string `form:"difficulty" binding:"required"`
	Score      *int   `form:"score" binding:"required,min=0"`
}

// @Summary      Generate a quiz
// @Description  Asks the generative model for multiple-choice questions on a topic.
// @Tags         quiz
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        topic          formData  string  true  "Quiz topic"
// @Param        difficulty     formData  string  true  "easy | medium | hard"
// @Param        num_questions  formData  int     true  "Number of questions"
// @Success      200  {object}  map[string]interface{}  "status, quiz"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string  "AI returned invalid JSON"
// @Router       /generate_quiz [post]
// @Security     BearerAuth
func (h *Handler) generateQuiz(c *gin.Context) {
	var input generateQuizRequest
	if ok := h.bindFormOrFail(c, &input); !ok {
		return
	}

	quiz, err := h.services.QuizGen.Generate(c.Request.Context(), input.Topic, input.Difficulty, input.NumQuestions)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("generate_quiz_failed", "err", err, "topic", input.Topic)
		}
		if errors.Is(err, service.ErrBadAIResponse) {
			c.JSON(http.StatusInternalServerError, gin.H{"status": statusFail, "msg": "AI returned invalid JSON"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": statusFail, "msg": "quiz generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "quiz": quiz})
}

// @Summary      Submit a quiz result
// @Description  Adds the difficulty-based XP reward and folds the score into the running accuracy mean.
// @Tags         quiz
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        difficulty  formData  string  true  "easy | medium | hard"
// @Param        score       formData  int     true  "Correctly answered count"
// @Success      200  {object}  map[string]interface{}  "status, msg, new_xp"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /update_xp [post]
// @Security     BearerAuth
func (h *Handler) updateXP(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": statusFail, "msg": "missing identity"})
		return
	}

	var input updateXPRequest
	if ok := h.bindFormOrFail(c, &input); !ok {
		return
	}

	newXP, err := h.services.Progress.SubmitResult(c.Request.Context(), ident.Email, input.Difficulty, *input.Score)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"status": statusFail, "msg": "User not found"})
		return
	}
	if err != nil {
		h.serverError(c, "update_xp_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": statusSuccess,
		"msg":    "XP updated",
		"new_xp": newXP,
	})
}
