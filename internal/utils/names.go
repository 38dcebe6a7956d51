package utils

import (
	"sort"
	"strings"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
)

// 转换参数带 fallback，非汉字字符原样保留
var namePinyinArgs = func() pinyin.Args {
	args := pinyin.NewArgs()
	args.Fallback = func(r rune, _ pinyin.Args) []string {
		return []string{string(r)}
	}
	return args
}()

// NameSortKey 返回姓名的拼音排序键，让中英文混排的名单都能按读音排序
func NameSortKey(name string) string {
	return strings.ToLower(strings.Join(pinyin.LazyConvert(name, &namePinyinArgs), ""))
}

// SortEmployeesByName 按姓名的拼音排序键对员工列表进行原地排序
func SortEmployeesByName(employees []domain.Employee) {
	sort.Slice(employees, func(i, j int) bool {
		return NameSortKey(employees[i].Name) < NameSortKey(employees[j].Name)
	})
}

// SortRosterNames 对坐班表中每一天的员工名单按姓名排序
func SortRosterNames(schedule domain.MonthlySchedule) {
	for day := range schedule {
		SortEmployeesByName(schedule[day])
	}
}
