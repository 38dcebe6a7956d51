// Package seed 提供运维用的数据填充操作，由 cmd/seed 调用。
package seed

import (
	"log/slog"
	"os"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/config"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/repository"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/scheduler"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/utils"
)

// SeedRandomEmployees 插入 n 位随机生成的员工
func SeedRandomEmployees(r *repository.Repository, n int) {
	cnt := 0
	for i := 0; i < n; i++ {
		employee := utils.GenerateRandomEmployee()
		if err := r.CreateEmployee(employee); err != nil {
			slog.Error("无法插入员工", slog.String("error", err.Error()))
			continue
		}

		cnt++
	}

	slog.Info("插入员工成功", slog.Int("count", cnt))
}

// ImportEmployeesFromFile 从 JSON 文件批量导入员工，和 HTTP 导入接口走同一套解析逻辑
func ImportEmployeesFromFile(r *repository.Repository, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("无法读取导入文件", slog.String("path", path), slog.String("error", err.Error()))
		return
	}

	employees, err := utils.ParseEmployeeImport(data)
	if err != nil {
		slog.Error("解析导入文件失败", slog.String("error", err.Error()))
		return
	}

	list := make([]*domain.Employee, 0, len(employees))
	for i := range employees {
		list = append(list, &employees[i])
	}

	if err := r.CreateEmployees(list); err != nil {
		slog.Error("无法插入员工", slog.String("error", err.Error()))
		return
	}

	slog.Info("导入员工成功", slog.Int("count", len(list)))
}

// GenerateAndSaveSchedule 为指定月份生成坐班表并直接保存
// 连续对多个月份执行这个操作可以累积历史记录，方便验证重复度惩罚的效果
func GenerateAndSaveSchedule(r *repository.Repository, cfg *config.Config, year int32, month int32) {
	if err := utils.ValidateYearMonth(int(year), int(month)); err != nil {
		slog.Error("指定的月份非法", slog.String("error", err.Error()))
		return
	}

	employees, err := r.GetAllEmployees()
	if err != nil {
		slog.Error("无法获取员工列表", slog.String("error", err.Error()))
		return
	}
	if len(employees) == 0 {
		slog.Error("还没有录入任何员工")
		return
	}

	past, err := r.CollectPastWeekdaySets(year, month, employees, cfg.Scheduler.HistoryMonths)
	if err != nil {
		slog.Error("无法收集历史坐班记录", slog.String("error", err.Error()))
		return
	}

	list := make([]domain.Employee, 0, len(employees))
	for _, employee := range employees {
		list = append(list, *employee)
	}

	s, err := scheduler.New(list, past)
	if err != nil {
		slog.Error("无法创建排班器", slog.String("error", err.Error()))
		return
	}

	schedule, err := s.Generate()
	if err != nil {
		slog.Error("生成坐班表失败", slog.String("error", err.Error()))
		return
	}

	record := &domain.ScheduleRecord{
		Year:   year,
		Month:  month,
		Roster: schedule,
	}
	if err := r.SaveMonthlySchedule(record); err != nil {
		slog.Error("保存坐班表失败", slog.String("error", err.Error()))
		return
	}

	slog.Info("生成并保存坐班表成功", slog.Int("year", int(year)), slog.Int("month", int(month)))
}
