package scheduler

import "github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"

// dayCombination: 一位弹性员工一个月内的坐班日组合
type dayCombination []domain.Weekday

// 各个坐班天数对应的候选组合
// 每周两天的员工不安排相邻两天，让坐班间隔开
var combinationCatalog = map[int32][]dayCombination{
	1: {
		{domain.Monday},
		{domain.Tuesday},
		{domain.Wednesday},
		{domain.Thursday},
		{domain.Friday},
	},
	2: {
		{domain.Monday, domain.Wednesday},
		{domain.Monday, domain.Thursday},
		{domain.Monday, domain.Friday},
		{domain.Tuesday, domain.Thursday},
		{domain.Tuesday, domain.Friday},
		{domain.Wednesday, domain.Friday},
	},
	3: {
		{domain.Monday, domain.Wednesday, domain.Friday},
	},
	5: {
		{domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday},
	},
}

// 评分相关的参数
const (
	historyLookback  = 2    // 计算重复度时最多参考最近两个月
	historyDecay     = 0.75 // 月份越早权重越高，按这个比例向后衰减
	repetitionWeight = 3.0  // 重复度在总评分中的权重
)

// dayLoad 记录每个坐班日当前已安排的人数
type dayLoad map[domain.Weekday]int

func newDayLoad() dayLoad {
	load := make(dayLoad, len(domain.Weekdays()))
	for _, day := range domain.Weekdays() {
		load[day] = 0
	}
	return load
}

func (l dayLoad) clone() dayLoad {
	cloned := make(dayLoad, len(l))
	for day, count := range l {
		cloned[day] = count
	}
	return cloned
}

// imbalance 返回五个坐班日人数对均值的平方偏差之和，越小表示负载越均衡
func (l dayLoad) imbalance() float64 {
	mean := 0.0
	for _, day := range domain.Weekdays() {
		mean += float64(l[day])
	}
	mean /= float64(len(domain.Weekdays()))

	sum := 0.0
	for _, day := range domain.Weekdays() {
		deviation := float64(l[day]) - mean
		sum += deviation * deviation
	}
	return sum
}
