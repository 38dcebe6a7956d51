package scheduler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/utils"
)

type Scheduler struct {
	employees []domain.Employee
	past      domain.PastSchedules // 每位员工历史月份的坐班日集合，按月份从最早到最近排列
	rng       *rand.Rand           // 每次生成都持有自己的随机源，不使用全局随机源
}

type Option func(*Scheduler)

// WithRandSource 指定随机源，测试中用来复现生成结果。
func WithRandSource(src rand.Source) Option {
	return func(s *Scheduler) {
		s.rng = rand.New(src)
	}
}

func New(employees []domain.Employee, past domain.PastSchedules, opts ...Option) (*Scheduler, error) {
	// 弹性员工的坐班天数必须有对应的组合，这里直接报错而不是悄悄跳过
	for _, employee := range employees {
		if len(employee.FixedDays) > 0 {
			continue
		}
		if _, exists := combinationCatalog[employee.RequiredDays]; !exists {
			return nil, fmt.Errorf("员工 %s 的每周坐班天数 %d 没有对应的坐班组合", employee.Name, employee.RequiredDays)
		}
	}

	s := &Scheduler{
		employees: employees,
		past:      past,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Generate 生成一张月度坐班表
// 先安排固定坐班日的员工，再按坐班天数从多到少安排弹性员工
func (s *Scheduler) Generate() (domain.MonthlySchedule, error) {
	schedule := domain.NewMonthlySchedule()
	load := newDayLoad()

	flexible := s.assignFixedEmployees(schedule, load)

	// 坐班天数多的员工可选组合少，先安排他们
	buckets := groupByRequiredDays(flexible)
	for _, quota := range sortedQuotasDesc(buckets) {
		group := buckets[quota]
		s.shuffleEmployees(group)

		for _, employee := range group {
			combination := s.chooseCombination(employee, load)
			for _, day := range combination {
				if schedule.AddEmployee(day, employee) {
					load[day]++
				}
			}
		}
	}

	// 最后检查一下生成结果是否满足约束条件
	if err := utils.ValidateScheduleRoster(schedule); err != nil {
		return nil, err
	}
	for _, employee := range s.employees {
		for _, day := range employee.FixedDays {
			if !schedule.ContainsEmployee(day, employee.ID) {
				return nil, fmt.Errorf("员工 %s 的固定坐班日 %s 没有出现在生成结果中", employee.Name, day)
			}
		}
	}

	return schedule, nil
}
