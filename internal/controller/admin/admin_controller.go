package admin

import (
	"net/http"
	"strconv"

	"github.com/DjalmaFelipe02/Exam-manager-API/internal/controller"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/dto"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/middleware"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AdminController exposes the admin-only CRUD surface. Routes using it are
// mounted behind the RequireAdmin middleware.
type AdminController struct {
	adminService service.AdminExamService
	userService  service.UserService
}

func NewAdminController(adminService service.AdminExamService, userService service.UserService) *AdminController {
	return &AdminController{adminService: adminService, userService: userService}
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

// CreateExam godoc
// @Summary (Admin) Create an exam, optionally with questions and choices
// @Tags Admin
// @Accept json
// @Produce json
// @Param exam body dto.ExamCreateDTO true "Exam data"
// @Success 201 {object} dto.ExamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/exams [post]
func (c *AdminController) CreateExam(ctx *gin.Context) {
	var req dto.ExamCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	exam, err := c.adminService.CreateExam(middleware.UserID(ctx), req)
	if err != nil {
		log.Error().Err(err).Msg("CreateExam: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, exam)
}

// UpdateExam godoc
// @Summary (Admin) Update exam metadata
// @Tags Admin
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param exam body dto.ExamUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ExamResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/exams/{exam_id} [put]
func (c *AdminController) UpdateExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "exam_id")
	if !ok {
		return
	}
	var req dto.ExamUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	exam, err := c.adminService.UpdateExam(id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// DeleteExam godoc
// @Summary (Admin) Delete an exam and everything it owns
// @Tags Admin
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/exams/{exam_id} [delete]
func (c *AdminController) DeleteExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "exam_id")
	if !ok {
		return
	}
	if err := c.adminService.DeleteExam(id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"detail": "Exam deleted"})
}

// CreateQuestion godoc
// @Summary (Admin) Create a question for an exam
// @Tags Admin
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /admin/questions [post]
func (c *AdminController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if req.ExamID == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "exam_id is required"})
		return
	}
	question, err := c.adminService.CreateQuestion(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question
// @Tags Admin
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param question body dto.QuestionUpdateDTO true "Fields to update"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/questions/{question_id} [put]
func (c *AdminController) UpdateQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	question, err := c.adminService.UpdateQuestion(id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question and its choices
// @Tags Admin
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/questions/{question_id} [delete]
func (c *AdminController) DeleteQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.adminService.DeleteQuestion(id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"detail": "Question deleted"})
}

// CreateChoice godoc
// @Summary (Admin) Create a choice for a question
// @Tags Admin
// @Accept json
// @Produce json
// @Param choice body dto.ChoiceCreateDTO true "Choice data"
// @Success 201 {object} dto.ChoiceResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/choices [post]
func (c *AdminController) CreateChoice(ctx *gin.Context) {
	var req dto.ChoiceCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if req.QuestionID == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "question_id is required"})
		return
	}
	choice, err := c.adminService.CreateChoice(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, choice)
}

// UpdateChoice godoc
// @Summary (Admin) Update a choice
// @Tags Admin
// @Accept json
// @Produce json
// @Param choice_id path int true "Choice ID"
// @Param choice body dto.ChoiceUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ChoiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/choices/{choice_id} [put]
func (c *AdminController) UpdateChoice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "choice_id")
	if !ok {
		return
	}
	var req dto.ChoiceUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	choice, err := c.adminService.UpdateChoice(id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, choice)
}

// DeleteChoice godoc
// @Summary (Admin) Delete a choice
// @Tags Admin
// @Produce json
// @Param choice_id path int true "Choice ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/choices/{choice_id} [delete]
func (c *AdminController) DeleteChoice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "choice_id")
	if !ok {
		return
	}
	if err := c.adminService.DeleteChoice(id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"detail": "Choice deleted"})
}

// DeleteParticipant godoc
// @Summary (Admin) Remove a participant from an exam
// @Tags Admin
// @Produce json
// @Param participant_id path int true "Participant ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/participants/{participant_id} [delete]
func (c *AdminController) DeleteParticipant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "participant_id")
	if !ok {
		return
	}
	if err := c.adminService.DeleteParticipant(id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"detail": "Participant removed"})
}

// GetAllUsers godoc
// @Summary (Admin) List users with filters
// @Tags Admin
// @Produce json
// @Param search query string false "Filter by username substring"
// @Param role query string false "Filter by role (ADMIN or PARTICIPANT)"
// @Param is_active query bool false "Filter by active flag"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.UserResponse
// @Router /admin/users [get]
func (c *AdminController) GetAllUsers(ctx *gin.Context) {
	var role *model.Role
	if roleStr := ctx.Query("role"); roleStr != "" {
		r := model.Role(roleStr)
		role = &r
	}
	var isActive *bool
	if activeStr := ctx.Query("is_active"); activeStr != "" {
		v, err := strconv.ParseBool(activeStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid is_active value"})
			return
		}
		isActive = &v
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	users, err := c.userService.GetAllUsers(ctx.Query("search"), role, isActive, limit, offset)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary (Admin) Get a user by id
// @Tags Admin
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{user_id} [get]
func (c *AdminController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "user_id")
	if !ok {
		return
	}
	user, err := c.userService.GetUser(id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary (Admin) Update a user account
// @Tags Admin
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{user_id} [patch]
func (c *AdminController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "user_id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	user, err := c.userService.UpdateUser(id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary (Admin) Delete a user account
// @Tags Admin
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{user_id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "user_id")
	if !ok {
		return
	}
	if err := c.userService.DeleteUser(id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"detail": "User deleted"})
}
