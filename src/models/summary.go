package models

// AgeGroupRate - อัตรา no-show ของช่วงอายุหนึ่งช่วง (กว้าง 10 ปี)
// Rate is nil for buckets with no appointments - missing, never zero.
type AgeGroupRate struct {
	AgeGroup string   `json:"ageGroup"` // "[0,10)" ... "[90,100)", "100+" overflow
	Count    int      `json:"count"`
	Rate     *float64 `json:"noShowRatePct"` // mean(no-show flag) * 100
}

// WeekdayRate - อัตรา no-show ของวันในสัปดาห์ เรียง Monday..Sunday เสมอ
type WeekdayRate struct {
	Weekday string   `json:"weekday"`
	Count   int      `json:"count"`
	Rate    *float64 `json:"noShowRatePct"` // nil เมื่อไม่มีนัดหมายในวันนั้น
}

// Overview - สี่การ์ดสรุปบนหัว dashboard คำนวณครั้งเดียวตอน start
type Overview struct {
	TotalAppointments string `json:"totalAppointments"` // comma-grouped, e.g. "110,527"
	AverageAge        string `json:"averageAge"`        // one decimal
	ShowRate          string `json:"showRate"`          // e.g. "79.8%"
	NoShowRate        string `json:"noShowRate"`        // e.g. "20.2%"
}
