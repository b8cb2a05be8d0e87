package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/naborsk/racequiz/internal/domain"
	"github.com/naborsk/racequiz/internal/dto"
	"github.com/naborsk/racequiz/internal/identity"
	"github.com/naborsk/racequiz/internal/service"
	"github.com/rs/zerolog/log"
)

type ParticipantController struct {
	questionService service.QuestionService
	attemptService  service.AttemptService
	userService     service.UserService
}

func NewParticipantController(qs service.QuestionService, as service.AttemptService, us service.UserService) *ParticipantController {
	return &ParticipantController{questionService: qs, attemptService: as, userService: us}
}

// GetQuestion godoc
// @Summary Open a question by its QR code id
// @Description Returns the question with shuffled options. 409 means the participant already answered it; 403 means they have not registered a start number yet.
// @Tags Participant
// @Produce json
// @Param org_id path string true "Organization-scoped question id"
// @Success 200 {object} dto.QuestionViewDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Start number not registered"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already answered"
// @Router /questions/{org_id} [get]
func (c *ParticipantController) GetQuestion(ctx *gin.Context) {
	session := identity.CurrentSession(ctx)
	orgID := ctx.Param("org_id")

	view, err := c.questionService.GetForUser(session.User.ID, orgID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrQuestionNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Вопрос не найден"})
		case errors.Is(err, domain.ErrAlreadyAnswered):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Вы уже ответили на этот вопрос"})
		case errors.Is(err, domain.ErrNumberRequired):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Сначала зарегистрируйте стартовый номер"})
		default:
			log.Error().Err(err).Str("orgID", orgID).Msg("GetQuestion: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		}
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// SubmitAnswer godoc
// @Summary Record an answer to a question
// @Description Stores at most one attempt per question per participant; correctness is fixed at write time.
// @Tags Participant
// @Accept json
// @Produce json
// @Param answer body dto.AnswerSubmitDTO true "Question id and chosen answer text"
// @Success 200 {object} dto.AttemptResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already answered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /answer [post]
func (c *ParticipantController) SubmitAnswer(ctx *gin.Context) {
	session := identity.CurrentSession(ctx)

	var req dto.AnswerSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	attempt, err := c.attemptService.RecordAnswer(session.User.ID, req.QuestionID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrQuestionNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Вопрос не найден"})
		case errors.Is(err, domain.ErrAlreadyAnswered):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Вы уже ответили на этот вопрос"})
		default:
			log.Error().Err(err).Uint("questionID", req.QuestionID).Msg("SubmitAnswer: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		}
		return
	}

	resp := dto.AttemptResponseDTO{Message: "Ответ записан"}
	if err := copier.Copy(&resp, attempt); err != nil {
		log.Error().Err(err).Msg("SubmitAnswer: failed to copy attempt to response")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RegisterNumber godoc
// @Summary Register the participant's start number
// @Description Sets the start number shown on the bib; required before answering questions.
// @Tags Participant
// @Accept json
// @Produce json
// @Param registration body dto.RegisterNumberDTO true "Start number"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /register [post]
func (c *ParticipantController) RegisterNumber(ctx *gin.Context) {
	session := identity.CurrentSession(ctx)

	var req dto.RegisterNumberDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := c.userService.UpdateStartNumber(session.User.ID, strconv.Itoa(req.StartNumber)); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Некорректный стартовый номер"})
			return
		}
		log.Error().Err(err).Str("userID", session.User.ID).Msg("RegisterNumber: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Стартовый номер сохранён"})
}
