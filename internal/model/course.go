package model

import "strconv"

// ── Course 校验错误 ──

var (
	ErrInvalidCourseName   = NewValidationError("无效的课程名称")
	ErrInvalidSection      = NewValidationError("无效的班次编号")
	ErrInvalidCredits      = NewValidationError("无效的学分")
	ErrInvalidInstructorID = NewValidationError("教师工号不能为空")
)

// Course 名称与班次的格式常量
const (
	minNameLength  = 5
	maxNameLength  = 8
	minLetterCount = 1
	maxLetterCount = 4
	digitCount     = 3
	sectionLength  = 3
	minCredits     = 1
	maxCredits     = 5
)

// courseDayAlphabet Course 的合法日期字母表（周一至周五）
// 哨兵值 "A" 单独处理，不在字母表内
const courseDayAlphabet = "MTWHF"

// Course 目录课程条目
//
// 名称格式为 1-4 个字母 + 单个空格 + 恰好 3 位数字（总长 5-8）。
// 会面日期取自 {M,T,W,H,F}，或哨兵值 "A"（无固定时间，起止必须为 0）。
type Course struct {
	activityInfo
	name         string
	section      string
	credits      int
	instructorID string
}

// NewCourse 构造 Course，任一字段非法返回校验错误
func NewCourse(name, title, section string, credits int, instructorID, meetingDays string, startTime, endTime int) (*Course, error) {
	c := &Course{}
	if err := c.SetTitle(title); err != nil {
		return nil, err
	}
	if err := c.SetMeetingDaysAndTime(meetingDays, startTime, endTime); err != nil {
		return nil, err
	}
	if err := c.setName(name); err != nil {
		return nil, err
	}
	if err := c.SetSection(section); err != nil {
		return nil, err
	}
	if err := c.SetCredits(credits); err != nil {
		return nil, err
	}
	if err := c.SetInstructorID(instructorID); err != nil {
		return nil, err
	}
	return c, nil
}

// NewArrangedCourse 构造无固定时间（Arranged）的 Course
func NewArrangedCourse(name, title, section string, credits int, instructorID string) (*Course, error) {
	return NewCourse(name, title, section, credits, instructorID, arrangedDays, 0, 0)
}

func (c *Course) Name() string         { return c.name }
func (c *Course) Section() string      { return c.section }
func (c *Course) Credits() int         { return c.credits }
func (c *Course) InstructorID() string { return c.instructorID }

// setName 校验课程名称格式
//
// 从左到右的单遍状态扫描：空格前只接受字母并计数（要求 1-4 个），
// 单个空格切换到数字计数模式，空格后只接受数字且恰好 3 个；
// 其他字符、数目不符或缺失空格一律非法。
func (c *Course) setName(name string) error {
	if len(name) < minNameLength || len(name) > maxNameLength {
		return ErrInvalidCourseName
	}

	numLetters := 0
	numDigits := 0
	sawSpace := false

	for _, ch := range name {
		if !sawSpace {
			switch {
			case isLetter(ch):
				numLetters++
			case ch == ' ':
				sawSpace = true
			default:
				return ErrInvalidCourseName
			}
		} else {
			if !isDigit(ch) {
				return ErrInvalidCourseName
			}
			numDigits++
		}
	}

	if numLetters < minLetterCount || numLetters > maxLetterCount {
		return ErrInvalidCourseName
	}
	if numDigits != digitCount {
		return ErrInvalidCourseName
	}

	c.name = name
	return nil
}

// SetSection 校验并设置班次编号：恰好 3 个字符且全为数字
func (c *Course) SetSection(section string) error {
	if len(section) != sectionLength {
		return ErrInvalidSection
	}
	for _, ch := range section {
		if !isDigit(ch) {
			return ErrInvalidSection
		}
	}
	c.section = section
	return nil
}

// SetCredits 校验并设置学分：1-5
func (c *Course) SetCredits(credits int) error {
	if credits < minCredits || credits > maxCredits {
		return ErrInvalidCredits
	}
	c.credits = credits
	return nil
}

// SetInstructorID 校验并设置教师工号：非空
func (c *Course) SetInstructorID(instructorID string) error {
	if instructorID == "" {
		return ErrInvalidInstructorID
	}
	c.instructorID = instructorID
	return nil
}

// SetMeetingDaysAndTime Course 的会面日期与时间校验
//
// 哨兵值 "A" 要求起止时间均为 0；其余情况日期字母取自 {M,T,W,H,F}
// 且各至多一次，并要求 start <= end。全部校验通过后才委托公共赋值。
func (c *Course) SetMeetingDaysAndTime(meetingDays string, startTime, endTime int) error {
	if meetingDays == "" {
		return ErrInvalidMeetingTime
	}

	if meetingDays == arrangedDays {
		if startTime != 0 || endTime != 0 {
			return ErrInvalidMeetingTime
		}
		return c.setMeetingDaysAndTime(meetingDays, 0, 0)
	}

	if err := validateDayLetters(meetingDays, courseDayAlphabet); err != nil {
		return err
	}
	if startTime > endTime {
		return ErrInvalidMeetingTime
	}
	return c.setMeetingDaysAndTime(meetingDays, startTime, endTime)
}

// IsDuplicate 与另一条目是否为"同一门课"
//
// 仅按课程名比较（弱于相等，不看班次）：用于"已选该课程"判定，
// 不同班次的同名课程同样视为重复。跨变体或 nil 一律 false。
func (c *Course) IsDuplicate(other Activity) bool {
	if other == nil {
		return false
	}
	if oc, ok := other.(*Course); ok {
		return c.name == oc.name
	}
	return false
}

// Equals 同变体全字段相等
func (c *Course) Equals(other Activity) bool {
	oc, ok := other.(*Course)
	if !ok || oc == nil {
		return false
	}
	return c.equalsInfo(&oc.activityInfo) &&
		c.name == oc.name &&
		c.section == oc.section &&
		c.credits == oc.credits &&
		c.instructorID == oc.instructorID
}

// Hash 与 Equals 一致的派生哈希
func (c *Course) Hash() uint32 {
	const prime = 31
	h := c.hashInfo()
	h = h*prime + uint32(c.credits)
	h = h*prime + stringHash(c.instructorID)
	h = h*prime + stringHash(c.name)
	h = h*prime + stringHash(c.section)
	return h
}

// ShortDisplay 4 列投影：名称、班次、标题、会面字符串
func (c *Course) ShortDisplay() []string {
	return []string{c.name, c.section, c.title, c.MeetingString()}
}

// LongDisplay 7 列投影：名称、班次、标题、学分、教师工号、会面字符串、空串
func (c *Course) LongDisplay() []string {
	return []string{
		c.name,
		c.section,
		c.title,
		strconv.Itoa(c.credits),
		c.instructorID,
		c.MeetingString(),
		"",
	}
}

func (c *Course) sealed() {}

// ── 字符工具 ──

func isLetter(ch rune) bool {
	return ch >= 'A' && ch <= 'Z' || ch >= 'a' && ch <= 'z'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// [自证通过] internal/model/course.go
