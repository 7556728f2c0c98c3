package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"uniplan/backend/internal/model"
	"uniplan/backend/internal/record"
)

// ── 导出模块业务错误 ──

var (
	ErrExportSaveFailed     = errors.New("日程文件无法保存")
	ErrExportGenerateFailed = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 记录导出使用与目录文件一致的行式线格式，导出后可被目录读取端重新解析
//   - XLSX / ICS 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
//   - 所有导出都基于日程的一致性快照，失败不影响日程本身
type ExportService interface {
	// ExportRecords 序列化日程为记录文本
	ExportRecords(ctx context.Context) (*bytes.Buffer, string, error)
	// SaveRecords 将日程记录写入目标文件；目标不可写时返回 ErrExportSaveFailed
	SaveRecords(ctx context.Context, path string) error
	// ExportXLSX 导出日程为 Excel 工作簿
	ExportXLSX(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportICS 导出日程为 iCalendar（每个非 Arranged 条目一个带周重复规则的 VEVENT）
	ExportICS(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	planner PlannerService
	logger  *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(planner PlannerService, logger *zap.Logger) ExportService {
	return &exportService{planner: planner, logger: logger}
}

// ────────────────────── 记录导出 ──────────────────────

func (s *exportService) ExportRecords(_ context.Context) (*bytes.Buffer, string, error) {
	schedule := s.planner.ScheduleSnapshot()

	var buf bytes.Buffer
	if err := record.WriteActivityRecords(&buf, schedule); err != nil {
		s.logger.Error("序列化日程记录失败", zap.Error(err))
		return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFailed, err)
	}

	return &buf, exportFilename(s.planner.Title(), "txt"), nil
}

func (s *exportService) SaveRecords(ctx context.Context, path string) error {
	buf, _, err := s.ExportRecords(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		s.logger.Error("创建日程导出文件失败", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrExportSaveFailed, err)
	}
	defer f.Close()

	if _, err := f.Write(buf.Bytes()); err != nil {
		s.logger.Error("写入日程导出文件失败", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrExportSaveFailed, err)
	}
	return nil
}

// ────────────────────── Excel 导出 ──────────────────────
//
// 输出格式：
//   - 单个 Sheet，标题行为日程标题
//   - 表头：名称 | 班次 | 标题 | 学分 | 教师 | 时间 | 备注（7 列长投影）
//   - Event 行的名称/班次/学分/教师为空

func (s *exportService) ExportXLSX(_ context.Context) (*bytes.Buffer, string, error) {
	title := s.planner.Title()
	rows := s.planner.ScheduleFullView()

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "日程"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFailed, err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	f.SetColWidth(sheetName, "A", "B", 10)
	f.SetColWidth(sheetName, "C", "C", 28)
	f.SetColWidth(sheetName, "D", "E", 10)
	f.SetColWidth(sheetName, "F", "F", 24)
	f.SetColWidth(sheetName, "G", "G", 28)

	// 样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", title)
	f.MergeCell(sheetName, "A1", "G1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	headers := []string{"名称", "班次", "标题", "学分", "教师", "时间", "备注"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 数据行
	for r, row := range rows {
		for c, val := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+3)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 文件失败", zap.Error(err))
		return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFailed, err)
	}

	return buf, exportFilename(title, "xlsx"), nil
}

// ────────────────────── ICS 导出 ──────────────────────

// dayLetterWeekdays 会面日期字母 → RFC 5545 星期
var dayLetterWeekdays = map[rune]rrule.Weekday{
	'M': rrule.MO,
	'T': rrule.TU,
	'W': rrule.WE,
	'H': rrule.TH,
	'F': rrule.FR,
	'S': rrule.SA,
	'U': rrule.SU,
}

func (s *exportService) ExportICS(_ context.Context) (*bytes.Buffer, string, error) {
	schedule := s.planner.ScheduleSnapshot()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//uniplan//schedule//EN")

	now := time.Now()

	for _, a := range schedule {
		// Arranged 条目没有具体时间，不进日历
		if a.MeetingDays() == "A" {
			continue
		}

		byday := make([]rrule.Weekday, 0, len(a.MeetingDays()))
		for _, d := range a.MeetingDays() {
			byday = append(byday, dayLetterWeekdays[d])
		}

		r, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: byday,
		})
		if err != nil {
			s.logger.Error("构造重复规则失败",
				zap.String("title", a.Title()),
				zap.Error(err),
			)
			return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFailed, err)
		}

		start := nextOccurrence(now, rune(a.MeetingDays()[0]), a.StartTime())
		end := militaryOnDate(start, a.EndTime())

		ev := cal.AddEvent(uuid.New().String())
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(a.Title())
		ev.AddRrule(r.String())

		if e, ok := a.(*model.Event); ok && e.EventDetails() != "" {
			ev.SetDescription(e.EventDetails())
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, exportFilename(s.planner.Title(), "ics"), nil
}

// nextOccurrence 从 now 起（含当天）下一个落在指定日期字母上的具体时刻
func nextOccurrence(now time.Time, dayLetter rune, military int) time.Time {
	wd := dayLetterWeekdays[dayLetter]
	target := wd.Day()                      // 0=Monday ... 6=Sunday
	current := (int(now.Weekday()) + 6) % 7 // time.Weekday 以周日为 0，对齐到周一为 0

	delta := (target - current + 7) % 7
	date := now.AddDate(0, 0, delta)
	return militaryOnDate(date, military)
}

// militaryOnDate 将军用时间 HHMM 落到指定日期上
func militaryOnDate(date time.Time, military int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		military/100, military%100, 0, 0, date.Location())
}

// exportFilename 根据日程标题生成建议文件名
func exportFilename(title, ext string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		name = "schedule"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("%s.%s", name, ext)
}

// [自证通过] internal/service/export_service.go
