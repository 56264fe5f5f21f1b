package aggregate

import (
	"Backend-MedDash/src/models"
	"fmt"
	"strconv"
)

// DayOrder ลำดับวันคงที่ของตาราง weekday rate
var DayOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

const (
	ageBucketWidth = 10
	ageBucketMax   = 100 // ช่วงสุดท้ายคือ [90,100) อายุ >= 100 ลงถัง overflow
)

// AgeGroupRates คำนวณอัตรา no-show ต่อช่วงอายุกว้าง 10 ปี แบบ right-open
// [0,10) ... [90,100) ถังว่างได้ rate เป็น nil (missing ไม่ใช่ศูนย์)
// อายุ >= 100 ถูกแยกเป็นแถว "100+" ต่อท้าย เฉพาะเมื่อมีข้อมูลจริง
func AgeGroupRates(rows []models.Appointment) []models.AgeGroupRate {
	nBuckets := ageBucketMax / ageBucketWidth
	counts := make([]int, nBuckets)
	noShows := make([]int, nBuckets)
	overflowCount, overflowNoShows := 0, 0

	for _, row := range rows {
		if row.Age >= ageBucketMax {
			overflowCount++
			overflowNoShows += row.NoShowFlag
			continue
		}
		b := row.Age / ageBucketWidth
		counts[b]++
		noShows[b] += row.NoShowFlag
	}

	out := make([]models.AgeGroupRate, 0, nBuckets+1)
	for b := 0; b < nBuckets; b++ {
		out = append(out, models.AgeGroupRate{
			AgeGroup: fmt.Sprintf("[%d,%d)", b*ageBucketWidth, (b+1)*ageBucketWidth),
			Count:    counts[b],
			Rate:     ratePct(noShows[b], counts[b]),
		})
	}
	if overflowCount > 0 {
		out = append(out, models.AgeGroupRate{
			AgeGroup: "100+",
			Count:    overflowCount,
			Rate:     ratePct(overflowNoShows, overflowCount),
		})
	}
	return out
}

// WeekdayRates คำนวณอัตรา no-show ต่อวันในสัปดาห์ reindex เป็น Monday..Sunday
// วันที่ไม่มีนัดเลยได้ rate เป็น nil
func WeekdayRates(rows []models.Appointment) []models.WeekdayRate {
	counts := make(map[string]int, len(DayOrder))
	noShows := make(map[string]int, len(DayOrder))
	for _, row := range rows {
		counts[row.Weekday]++
		noShows[row.Weekday] += row.NoShowFlag
	}

	out := make([]models.WeekdayRate, 0, len(DayOrder))
	for _, day := range DayOrder {
		out = append(out, models.WeekdayRate{
			Weekday: day,
			Count:   counts[day],
			Rate:    ratePct(noShows[day], counts[day]),
		})
	}
	return out
}

// BuildOverview คำนวณสี่การ์ดสรุป ทำครั้งเดียวตอนโหลดข้อมูล
func BuildOverview(rows []models.Appointment) models.Overview {
	total := len(rows)
	ageSum, noShows := 0, 0
	for _, row := range rows {
		ageSum += row.Age
		noShows += row.NoShowFlag
	}

	avgAge, noShowPct := 0.0, 0.0
	if total > 0 {
		avgAge = float64(ageSum) / float64(total)
		noShowPct = float64(noShows) / float64(total) * 100
	}

	return models.Overview{
		TotalAppointments: groupThousands(total),
		AverageAge:        fmt.Sprintf("%.1f", avgAge),
		ShowRate:          fmt.Sprintf("%.1f%%", 100-noShowPct),
		NoShowRate:        fmt.Sprintf("%.1f%%", noShowPct),
	}
}

// ratePct คืน mean ของ no-show flag เป็นเปอร์เซ็นต์ หรือ nil เมื่อไม่มีข้อมูล
func ratePct(noShows, count int) *float64 {
	if count == 0 {
		return nil
	}
	r := float64(noShows) / float64(count) * 100
	return &r
}

// groupThousands จัดรูปเลขจำนวนเต็มแบบคั่นหลักพันด้วย comma เช่น 110527 -> "110,527"
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
