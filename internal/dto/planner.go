package dto

// ── 日程规划模块 DTO ──

// AddCourseRequest 选课请求（按目录中的课程名称与班次定位）
type AddCourseRequest struct {
	Name    string `json:"name"    binding:"required"`
	Section string `json:"section" binding:"required,len=3"`
}

// AddEventRequest 添加活动请求
type AddEventRequest struct {
	Title        string `json:"title"         binding:"required"`
	MeetingDays  string `json:"meeting_days"  binding:"required"` // "MTWHFSU" 字母组合
	StartTime    int    `json:"start_time"`                       // 军用时间 HHMM
	EndTime      int    `json:"end_time"`
	EventDetails string `json:"event_details"`
}

// RemoveActivityRequest 移除日程条目请求（按当前下标）
type RemoveActivityRequest struct {
	Index int `json:"index" binding:"min=0"`
}

// SetTitleRequest 设置日程标题请求（空标题合法）
type SetTitleRequest struct {
	Title string `json:"title"`
}

// CatalogRowResponse 目录条目展示行（4 列短投影）
type CatalogRowResponse struct {
	Name          string `json:"name"`
	Section       string `json:"section"`
	Title         string `json:"title"`
	MeetingString string `json:"meeting_string"`
}

// ScheduleRowResponse 日程条目展示行（4 列短投影；Event 的名称与班次为空串）
type ScheduleRowResponse struct {
	Name          string `json:"name"`
	Section       string `json:"section"`
	Title         string `json:"title"`
	MeetingString string `json:"meeting_string"`
}

// ScheduleFullRowResponse 日程条目完整展示行（7 列长投影）
type ScheduleFullRowResponse struct {
	Name          string `json:"name"`
	Section       string `json:"section"`
	Title         string `json:"title"`
	Credits       string `json:"credits"`
	InstructorID  string `json:"instructor_id"`
	MeetingString string `json:"meeting_string"`
	EventDetails  string `json:"event_details"`
}

// ScheduleResponse 日程短视图响应
type ScheduleResponse struct {
	Title string                `json:"title"`
	Rows  []ScheduleRowResponse `json:"rows"`
}

// ScheduleFullResponse 日程完整视图响应
type ScheduleFullResponse struct {
	Title string                    `json:"title"`
	Rows  []ScheduleFullRowResponse `json:"rows"`
}

// AddCourseResponse 选课结果
type AddCourseResponse struct {
	Added bool `json:"added"`
}

// RemoveActivityResponse 移除结果
type RemoveActivityResponse struct {
	Removed bool `json:"removed"`
}

// TitleResponse 日程标题响应
type TitleResponse struct {
	Title string `json:"title"`
}
