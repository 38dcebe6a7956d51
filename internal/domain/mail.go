package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type SchedulePublishedMailData struct {
	Year           int32           `json:"year"`
	Month          int32           `json:"month"`
	MonthName      string          `json:"monthName"`
	DayCounts      map[Weekday]int `json:"dayCounts"`
	TotalEmployees int             `json:"totalEmployees"`
}
