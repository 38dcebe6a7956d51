package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/scheduler"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/stats"
	"github.com/sysu-ecnc-dev/office-roster/backend/internal/utils"
)

func scheduleCacheKey(year int32, month int32) string {
	return fmt.Sprintf("office_roster:schedule:%d:%d", year, month)
}

// GenerateSchedule 生成指定月份的坐班表，生成结果只返回给客户端，不落库
// 管理员确认后再通过保存接口持久化
func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Year  int32 `json:"year" validate:"required,min=2000,max=2100"`
		Month int32 `json:"month" validate:"required,min=1,max=12"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 获取所有员工
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if len(employees) == 0 {
		h.errorResponse(w, r, "还没有录入任何员工")
		return
	}

	// 收集历史月份的坐班记录，用于避免每个月的坐班日都一样
	past, err := h.repository.CollectPastWeekdaySets(req.Year, req.Month, employees, h.config.Scheduler.HistoryMonths)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	list := make([]domain.Employee, 0, len(employees))
	for _, employee := range employees {
		list = append(list, *employee)
	}

	// 自动排班
	s, err := scheduler.New(list, past)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	schedule, err := s.Generate()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "生成坐班表成功", schedule)
}

func (h *Handler) SaveSchedule(w http.ResponseWriter, r *http.Request) {
	yearMonth := r.Context().Value(YearMonthCtx).(YearMonth)

	var req struct {
		Roster domain.MonthlySchedule `json:"roster" validate:"required"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateScheduleRoster(req.Roster); err != nil {
		h.badRequest(w, r, err)
		return
	}

	record := &domain.ScheduleRecord{
		Year:   yearMonth.Year,
		Month:  yearMonth.Month,
		Roster: req.Roster,
	}

	if err := h.repository.SaveMonthlySchedule(record); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.invalidateScheduleCache(record.Year, record.Month)

	// 准备坐班表发布通知邮件
	statistics := stats.Build(record.Roster)
	mailMessage := domain.MailMessage{
		Type: "schedule_published",
		To:   h.config.Email.RosterRecipient,
		Data: domain.SchedulePublishedMailData{
			Year:           record.Year,
			Month:          record.Month,
			MonthName:      time.Month(record.Month).String(),
			DayCounts:      statistics.DayCounts,
			TotalEmployees: statistics.TotalEmployees,
		},
	}

	// 序列化邮件
	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 发送邮件到消息队列中
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "保存坐班表成功", record)
}

// GetSchedule 读取指定月份的坐班表，优先读缓存，缓存没有再查库并回填
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	yearMonth := r.Context().Value(YearMonthCtx).(YearMonth)
	cacheKey := scheduleCacheKey(yearMonth.Year, yearMonth.Month)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.ConnectTimeout)*time.Second)
	defer cancel()

	cached, err := h.redisClient.Get(ctx, cacheKey).Result()
	if err == nil {
		record := &domain.ScheduleRecord{}
		if err := json.Unmarshal([]byte(cached), record); err == nil {
			h.successResponse(w, r, "获取坐班表成功", record)
			return
		}
		// 缓存内容损坏时当作未命中，继续查库
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("读取坐班表缓存失败", "key", cacheKey, "error", err)
	}

	record, err := h.repository.GetMonthlySchedule(yearMonth.Year, yearMonth.Month)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "该月份还没有保存坐班表")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if data, err := json.Marshal(record); err == nil {
		expiration := time.Duration(h.config.Redis.ScheduleCacheExpiration) * time.Second
		if err := h.redisClient.Set(ctx, cacheKey, data, expiration).Err(); err != nil {
			slog.Warn("写入坐班表缓存失败", "key", cacheKey, "error", err)
		}
	}

	h.successResponse(w, r, "获取坐班表成功", record)
}

// UpdateScheduleEmployeeDays 调整已保存坐班表中某位员工的坐班日
// 先把这位员工从所有坐班日中移除，再加入到新的坐班日中
func (h *Handler) UpdateScheduleEmployeeDays(w http.ResponseWriter, r *http.Request) {
	yearMonth := r.Context().Value(YearMonthCtx).(YearMonth)

	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "员工ID无效")
		return
	}

	var req struct {
		Days []string `json:"days" validate:"omitempty,unique,dive,oneof=Monday Tuesday Wednesday Thursday Friday"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	record, err := h.repository.GetMonthlySchedule(yearMonth.Year, yearMonth.Month)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "该月份还没有保存坐班表")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 优先用坐班表里保存的员工信息，员工已经被删除时调整仍然可以进行
	var employee *domain.Employee
	distinct := record.Roster.DistinctEmployees()
	for i := range distinct {
		if distinct[i].ID == employeeID {
			employee = &distinct[i]
			break
		}
	}
	if employee == nil {
		employee, err = h.repository.GetEmployeeByID(employeeID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "员工不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
	}

	record.Roster.RemoveEmployee(employeeID)
	for _, raw := range req.Days {
		day, err := domain.ParseWeekday(raw)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		record.Roster.AddEmployee(day, *employee)
	}
	utils.SortRosterNames(record.Roster)

	if err := h.repository.SaveMonthlySchedule(record); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.invalidateScheduleCache(yearMonth.Year, yearMonth.Month)

	h.successResponse(w, r, "坐班表调整成功", record)
}

func (h *Handler) GetScheduleStatistics(w http.ResponseWriter, r *http.Request) {
	yearMonth := r.Context().Value(YearMonthCtx).(YearMonth)

	record, err := h.repository.GetMonthlySchedule(yearMonth.Year, yearMonth.Month)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "该月份还没有保存坐班表")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "获取坐班表统计成功", stats.Build(record.Roster))
}

func (h *Handler) DeleteAllSchedules(w http.ResponseWriter, r *http.Request) {
	if err := h.repository.DeleteAllSchedules(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 缓存里残留的坐班表等过期时间到了会自己清掉
	h.successResponse(w, r, "已清空坐班表", nil)
}

func (h *Handler) invalidateScheduleCache(year int32, month int32) {
	cacheKey := scheduleCacheKey(year, month)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.ConnectTimeout)*time.Second)
	defer cancel()

	if err := h.redisClient.Del(ctx, cacheKey).Err(); err != nil {
		slog.Warn("清除坐班表缓存失败", "key", cacheKey, "error", err)
	}
}
