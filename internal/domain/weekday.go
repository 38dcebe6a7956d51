package domain

import (
	"fmt"
	"strings"
)

// Weekday 表示一个坐班日，只允许周一到周五。
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

// Weekdays 按照周一到周五的固定顺序返回所有坐班日。
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// ParseWeekday 解析坐班日名称，匹配时不区分大小写。
func ParseWeekday(s string) (Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monday":
		return Monday, nil
	case "tuesday":
		return Tuesday, nil
	case "wednesday":
		return Wednesday, nil
	case "thursday":
		return Thursday, nil
	case "friday":
		return Friday, nil
	default:
		return "", fmt.Errorf("无效的坐班日: %s", s)
	}
}

// IsValidWeekday 判断给定字符串是否为合法的坐班日名称。
func IsValidWeekday(s string) bool {
	_, err := ParseWeekday(s)
	return err == nil
}

// WeekdaySet 表示一组坐班日。
type WeekdaySet map[Weekday]bool

func NewWeekdaySet(days ...Weekday) WeekdaySet {
	set := make(WeekdaySet, len(days))
	for _, day := range days {
		set[day] = true
	}
	return set
}

func (s WeekdaySet) Has(day Weekday) bool {
	return s[day]
}

func (s WeekdaySet) Add(day Weekday) {
	s[day] = true
}

// Days 按周一到周五的顺序返回集合中的坐班日。
func (s WeekdaySet) Days() []Weekday {
	days := make([]Weekday, 0, len(s))
	for _, day := range Weekdays() {
		if s[day] {
			days = append(days, day)
		}
	}
	return days
}
