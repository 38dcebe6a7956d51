// Package stats 计算月度坐班表的统计信息，供前端的概览面板使用。
package stats

import (
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
)

type ScheduleStatistics struct {
	DayCounts              map[domain.Weekday]int                 `json:"dayCounts"`
	SexDistribution        map[domain.Weekday]map[domain.Sex]int  `json:"sexDistribution"`
	RoleDistribution       map[domain.Weekday]map[domain.Role]int `json:"roleDistribution"`
	TotalEmployees         int                                    `json:"totalEmployees"`
	AverageDailyAttendance float64                                `json:"averageDailyAttendance"`
}

// Build 汇总一张坐班表的统计信息
// TotalEmployees 统计的是坐班表中出现过的员工数，不是员工总表的人数
func Build(schedule domain.MonthlySchedule) *ScheduleStatistics {
	statistics := &ScheduleStatistics{
		DayCounts:        make(map[domain.Weekday]int, len(domain.Weekdays())),
		SexDistribution:  make(map[domain.Weekday]map[domain.Sex]int, len(domain.Weekdays())),
		RoleDistribution: make(map[domain.Weekday]map[domain.Role]int, len(domain.Weekdays())),
	}

	totalAttendances := 0
	for _, day := range domain.Weekdays() {
		employees := schedule[day]

		statistics.DayCounts[day] = len(employees)
		statistics.SexDistribution[day] = make(map[domain.Sex]int)
		statistics.RoleDistribution[day] = make(map[domain.Role]int)
		totalAttendances += len(employees)

		for _, employee := range employees {
			statistics.SexDistribution[day][employee.Sex]++
			statistics.RoleDistribution[day][employee.Role]++
		}
	}

	statistics.TotalEmployees = len(schedule.DistinctEmployees())
	statistics.AverageDailyAttendance = float64(totalAttendances) / float64(len(domain.Weekdays()))

	return statistics
}
