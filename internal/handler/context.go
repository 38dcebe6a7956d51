package handler

type ContextKey string

var (
	SubCtxKey    ContextKey = "sub"
	MyInfoCtx    ContextKey = "myInfo"
	EmployeeCtx  ContextKey = "employee"
	YearMonthCtx ContextKey = "yearMonth"
)

// YearMonth 表示路径参数中解析出来的年份和月份
type YearMonth struct {
	Year  int32
	Month int32
}
