package admin

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/naborsk/racequiz/internal/domain"
	"github.com/naborsk/racequiz/internal/dto"
	"github.com/naborsk/racequiz/internal/service"
	"github.com/naborsk/racequiz/internal/tabular"
	"github.com/rs/zerolog/log"
)

type OrgController struct {
	syncService    service.SyncService
	resultsService service.ResultsService
	rosterService  service.RosterService
	userService    service.UserService
}

func NewOrgController(sync service.SyncService, results service.ResultsService, roster service.RosterService, users service.UserService) *OrgController {
	return &OrgController{
		syncService:    sync,
		resultsService: results,
		rosterService:  roster,
		userService:    users,
	}
}

// SyncQuestions godoc
// @Summary (Org) Replace the question set from a CSV upload
// @Description Deletes all questions and inserts the uploaded set in one transaction. The whole upload fails together.
// @Tags Organizer
// @Accept multipart/form-data
// @Produce json
// @Param csv formData file true "Question export, comma-separated"
// @Success 200 {object} dto.SyncResponseDTO
// @Failure 400 {object} dto.ErrorResponse "No CSV file uploaded"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /org/sync [post]
func (c *OrgController) SyncQuestions(ctx *gin.Context) {
	rows, ok := c.decodeUpload(ctx, ',')
	if !ok {
		return
	}

	count, err := c.syncService.ReplaceQuestions(rows)
	if err != nil {
		log.Error().Err(err).Msg("SyncQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, dto.SyncResponseDTO{
		Message:          "Вопросы успешно синхронизированы",
		QuestionsCreated: count,
	})
}

// SyncTelemetry godoc
// @Summary (Org) Replace the telemetry set from a CSV upload
// @Description Deletes all telemetry and inserts the uploaded set in one transaction. Rows with blank fields or non-numeric points are dropped silently.
// @Tags Organizer
// @Accept multipart/form-data
// @Produce json
// @Param csv formData file true "Telemetry export, semicolon-separated"
// @Success 200 {object} dto.TelemetrySyncResponseDTO
// @Failure 400 {object} dto.ErrorResponse "No CSV file uploaded"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /org/telemetry [post]
func (c *OrgController) SyncTelemetry(ctx *gin.Context) {
	rows, ok := c.decodeUpload(ctx, ';')
	if !ok {
		return
	}

	count, err := c.syncService.ReplaceTelemetry(rows)
	if err != nil {
		log.Error().Err(err).Msg("SyncTelemetry: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, dto.TelemetrySyncResponseDTO{
		Message:        "Результаты успешно синхронизированы",
		ResultsCreated: count,
	})
}

// GetResults godoc
// @Summary (Org) Per-participant summary of quiz and telemetry points
// @Description Joins attempts and telemetry per participant; recomputed on every request.
// @Tags Organizer
// @Produce json
// @Param start_number query string false "Exact start number filter"
// @Param group query string false "Exact group filter"
// @Success 200 {object} dto.ResultsResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /org/results [get]
func (c *OrgController) GetResults(ctx *gin.Context) {
	filter := service.SummaryFilter{
		StartNumber: ctx.Query("start_number"),
		Group:       ctx.Query("group"),
	}

	results, err := c.resultsService.ComputeSummaries(filter)
	if err != nil {
		log.Error().Err(err).Msg("GetResults: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, dto.ResultsResponseDTO{Results: results})
}

// ListUsers godoc
// @Summary (Org) Paginated participant roster with per-question answers
// @Description One row per participant with a fixed-size slot per question number. Search matches name or phone; limit is clamped to 100.
// @Tags Organizer
// @Produce json
// @Param page query int false "Page, clamped to >= 1" default(1)
// @Param limit query int false "Page size, clamped to [1,100]" default(10)
// @Param search query string false "Case-insensitive substring on name or phone"
// @Param minCorrect query int false "Minimum correct answers"
// @Param maxCorrect query int false "Maximum correct answers"
// @Param sortBy query string false "full_name | phone_number | correct_count" default(full_name)
// @Param sortOrder query string false "asc | desc" default(asc)
// @Success 200 {object} dto.RosterResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /org/users [get]
func (c *OrgController) ListUsers(ctx *gin.Context) {
	query := service.RosterQuery{
		Search:    ctx.Query("search"),
		SortBy:    ctx.DefaultQuery("sortBy", "full_name"),
		SortOrder: ctx.DefaultQuery("sortOrder", "asc"),
	}
	query.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	query.Limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	query.MinCorrect = parseOptionalInt(ctx.Query("minCorrect"))
	query.MaxCorrect = parseOptionalInt(ctx.Query("maxCorrect"))

	resp, err := c.rosterService.ListParticipants(query)
	if err != nil {
		log.Error().Err(err).Msg("ListUsers: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateUserNumber godoc
// @Summary (Org) Correct a participant's start number
// @Tags Organizer
// @Accept json
// @Produce json
// @Param user_id path string true "Participant id"
// @Param update body dto.UpdateNumberDTO true "New start number"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /org/users/{user_id} [patch]
func (c *OrgController) UpdateUserNumber(ctx *gin.Context) {
	userID := ctx.Param("user_id")

	var req dto.UpdateNumberDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := c.userService.UpdateStartNumber(userID, req.NewNumber); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Участник не найден"})
		case errors.Is(err, domain.ErrValidation):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Некорректный стартовый номер"})
		default:
			log.Error().Err(err).Str("userID", userID).Msg("UpdateUserNumber: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User number updated successfully"})
}

// decodeUpload pulls the "csv" form file and decodes it. On failure it writes
// the error response itself and returns ok=false.
func (c *OrgController) decodeUpload(ctx *gin.Context, separator rune) ([]tabular.Record, bool) {
	fileHeader, err := ctx.FormFile("csv")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No CSV file uploaded"})
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("file", fileHeader.Filename).Msg("decodeUpload: failed to open upload")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		return nil, false
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	rows, err := tabular.Decode(file, separator)
	if err != nil {
		log.Warn().Err(err).Str("file", fileHeader.Filename).Msg("decodeUpload: malformed upload")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Malformed CSV file"})
		return nil, false
	}
	return rows, true
}

func parseOptionalInt(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
