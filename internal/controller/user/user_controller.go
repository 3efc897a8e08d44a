package user

import (
	"net/http"
	"strconv"

	"github.com/DjalmaFelipe02/Exam-manager-API/internal/controller"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/dto"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/middleware"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// UserController serves the participant-facing endpoints plus the public
// reads (active exams, exam ranking).
type UserController struct {
	examService         service.ExamService
	registrationService service.RegistrationService
	answerService       service.AnswerService
	rankingService      service.RankingService
}

func NewUserController(
	examService service.ExamService,
	registrationService service.RegistrationService,
	answerService service.AnswerService,
	rankingService service.RankingService,
) *UserController {
	return &UserController{
		examService:         examService,
		registrationService: registrationService,
		answerService:       answerService,
		rankingService:      rankingService,
	}
}

func parseOptionalUintQuery(ctx *gin.Context, name string) (*uint, bool) {
	str := ctx.Query(name)
	if str == "" {
		return nil, true
	}
	val, err := strconv.ParseUint(str, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return nil, false
	}
	id := uint(val)
	return &id, true
}

func pageParams(ctx *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	return limit, offset
}

// GetAllExams godoc
// @Summary List exams with search and active filters
// @Tags Exams
// @Produce json
// @Param search query string false "Match title or description"
// @Param is_active query bool false "Filter by active flag"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.ExamResponse
// @Router /exams [get]
func (c *UserController) GetAllExams(ctx *gin.Context) {
	var isActive *bool
	if activeStr := ctx.Query("is_active"); activeStr != "" {
		v, err := strconv.ParseBool(activeStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid is_active value"})
			return
		}
		isActive = &v
	}
	limit, offset := pageParams(ctx)

	exams, err := c.examService.GetAllExams(ctx.Query("search"), isActive, limit, offset)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// GetExamDetails godoc
// @Summary Get an exam with its questions and choices
// @Tags Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{exam_id} [get]
func (c *UserController) GetExamDetails(ctx *gin.Context) {
	val, err := strconv.ParseUint(ctx.Param("exam_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid exam_id format"})
		return
	}
	exam, err := c.examService.GetExamDetails(uint(val))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// GetQuestions godoc
// @Summary List questions, optionally filtered by exam
// @Tags Exams
// @Produce json
// @Param exam_id query int false "Exam ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.QuestionResponse
// @Router /questions [get]
func (c *UserController) GetQuestions(ctx *gin.Context) {
	examID, ok := parseOptionalUintQuery(ctx, "exam_id")
	if !ok {
		return
	}
	limit, offset := pageParams(ctx)
	questions, err := c.examService.GetQuestions(examID, limit, offset)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetChoices godoc
// @Summary List choices, optionally filtered by question
// @Tags Exams
// @Produce json
// @Param question_id query int false "Question ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.ChoiceResponse
// @Router /choices [get]
func (c *UserController) GetChoices(ctx *gin.Context) {
	questionID, ok := parseOptionalUintQuery(ctx, "question_id")
	if !ok {
		return
	}
	limit, offset := pageParams(ctx)
	choices, err := c.examService.GetChoices(questionID, limit, offset)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, choices)
}

// RegisterParticipant godoc
// @Summary Register the authenticated user for an exam
// @Tags Participants
// @Accept json
// @Produce json
// @Param registration body dto.RegisterParticipantRequest true "Exam to enroll in"
// @Success 201 {object} dto.ParticipantResponse
// @Failure 400 {object} dto.ErrorResponse "Already registered or attempt limit reached"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /participants [post]
func (c *UserController) RegisterParticipant(ctx *gin.Context) {
	var req dto.RegisterParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	participant, err := c.registrationService.Register(middleware.UserID(ctx), req.ExamID)
	if err != nil {
		log.Warn().Err(err).Uint("examID", req.ExamID).Msg("RegisterParticipant: rejected")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, participant)
}

// GetParticipants godoc
// @Summary List participants, optionally filtered by exam, ordered by score
// @Tags Participants
// @Produce json
// @Param exam_id query int false "Exam ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.ParticipantResponse
// @Router /participants [get]
func (c *UserController) GetParticipants(ctx *gin.Context) {
	examID, ok := parseOptionalUintQuery(ctx, "exam_id")
	if !ok {
		return
	}
	limit, offset := pageParams(ctx)
	participants, err := c.examService.GetParticipants(examID, limit, offset)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, participants)
}

// SubmitAnswer godoc
// @Summary Submit an answer for a question
// @Description Validates the submission, persists the answer, applies scoring
// @Description and schedules a background ranking refresh for the exam.
// @Tags Answers
// @Accept json
// @Produce json
// @Param answer body dto.SubmitAnswerRequest true "Question and chosen choice"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Duplicate answer, mismatched choice or not registered"
// @Failure 404 {object} dto.ErrorResponse "Question or choice not found"
// @Router /answers [post]
func (c *UserController) SubmitAnswer(ctx *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	answer, err := c.answerService.Submit(middleware.UserID(ctx), req)
	if err != nil {
		log.Warn().Err(err).Uint("questionID", req.QuestionID).Msg("SubmitAnswer: rejected")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answer)
}

// GetAnswers godoc
// @Summary List answers, optionally filtered by participant
// @Tags Answers
// @Produce json
// @Param participant_id query int false "Participant ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.AnswerResponse
// @Router /answers [get]
func (c *UserController) GetAnswers(ctx *gin.Context) {
	participantID, ok := parseOptionalUintQuery(ctx, "participant_id")
	if !ok {
		return
	}
	limit, offset := pageParams(ctx)
	answers, err := c.answerService.GetAnswers(participantID, limit, offset)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// GetActiveExams godoc
// @Summary (Public) List active exams, newest first
// @Tags Public
// @Produce json
// @Success 200 {array} dto.ExamResponse
// @Router /public/active-exams [get]
func (c *UserController) GetActiveExams(ctx *gin.Context) {
	exams, err := c.examService.GetActiveExams()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// GetRanking godoc
// @Summary (Public) Ranking for an exam, by score descending
// @Description Ties are broken by earliest registration start time, the same
// @Description ordering the background recompute task stores in rank.
// @Tags Public
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {array} dto.ParticipantResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /public/exams/{exam_id}/ranking [get]
func (c *UserController) GetRanking(ctx *gin.Context) {
	val, err := strconv.ParseUint(ctx.Param("exam_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid exam_id format"})
		return
	}
	ranking, err := c.rankingService.GetRanking(uint(val))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ranking)
}
