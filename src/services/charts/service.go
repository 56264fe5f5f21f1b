package charts

import (
	"Backend-MedDash/src/models"
	"Backend-MedDash/src/services/aggregate"
	"Backend-MedDash/src/services/dataset"
	"fmt"
)

// สองสีหลักของ dashboard ใช้เหมือนกันทุกกราฟที่แยกตามผลการมาตามนัด
const (
	NoShowColor = "#FF9500" // warm - did not attend
	ShowColor   = "#007AFF" // cool - attended
)

const mainHistogramBins = 50

// ชื่อ slot ของกราฟทั้งแปดบนหน้า dashboard
const (
	SlotMain               = "main-graph"
	SlotTargetDistribution = "target-distribution"
	SlotGenderImpact       = "gender-impact-graph"
	SlotSMSImpact          = "sms-impact-graph"
	SlotWaitingByDay       = "waitingdays-by-day"
	SlotNeighbourhood      = "neighbourhood-graph"
	SlotAgeGroupRate       = "age-group-rate-graph"
	SlotWeekdayRate        = "day-of-week-rate-graph"
)

// neighbourhoodTopN จำนวนย่านที่แสดงในกราฟ neighbourhood
const neighbourhoodTopN = 15

// BuildAll - reducer เดียวของ dashboard: (selected feature) -> spec ทั้งแปด slot
// มีแค่ main-graph เท่านั้นที่ขึ้นกับ feature ที่เลือก slot อื่นให้ผล
// เหมือนเดิมทุก byte ไม่ว่า feature จะเป็นอะไร
func BuildAll(data *dataset.Context, feature models.Feature) map[string]models.ChartSpec {
	return map[string]models.ChartSpec{
		SlotMain:               BuildMainChart(data.Rows, feature),
		SlotTargetDistribution: BuildOutcomePie(data.Rows),
		SlotGenderImpact:       BuildGenderImpact(data.Rows),
		SlotSMSImpact:          BuildSMSImpact(data.Rows),
		SlotWaitingByDay:       BuildWaitingDaysByWeekday(data.Rows),
		SlotNeighbourhood:      BuildNeighbourhoodChart(data.Rows),
		SlotAgeGroupRate:       BuildAgeGroupRate(data.AgeGroupRates),
		SlotWeekdayRate:        BuildWeekdayRate(data.WeekdayRates),
	}
}

// BuildMainChart - กราฟเดียวที่ขึ้นกับ feature ที่เลือก
// feature ตัวเลข (Age, WaitingDays) ได้ histogram 50 ถังแบบ overlay
// feature หมวดหมู่ได้ grouped bar แยกตามผลการมาตามนัด
func BuildMainChart(rows []models.Appointment, feature models.Feature) models.ChartSpec {
	if feature.IsNumeric() {
		return models.ChartSpec{
			Kind:    models.ChartKindHistogram,
			Title:   fmt.Sprintf("Distribution of %s by Attendance", feature.Label()),
			XAxis:   feature.Label(),
			YAxis:   "Count",
			BarMode: "overlay",
			Series:  histogramSeries(rows, feature, mainHistogramBins),
		}
	}

	return models.ChartSpec{
		Kind:    models.ChartKindBar,
		Title:   fmt.Sprintf("Attendance by %s", feature.Label()),
		XAxis:   feature.Label(),
		YAxis:   "Count",
		BarMode: "group",
		Series:  outcomeCountSeries(rows, func(r models.Appointment) string { return categoryValue(r, feature) }, outcomeNames),
	}
}

// BuildOutcomePie - สัดส่วน Show กับ No-Show ทั้งตาราง
func BuildOutcomePie(rows []models.Appointment) models.ChartSpec {
	show, noShow := 0, 0
	for _, row := range rows {
		if row.NoShowFlag == 1 {
			noShow++
		} else {
			show++
		}
	}

	return models.ChartSpec{
		Kind:  models.ChartKindPie,
		Title: "Show vs No-Show Distribution",
		Series: []models.ChartSeries{{
			Name:   "No-show",
			Colors: []string{ShowColor, NoShowColor},
			Labels: []string{"No", "Yes"},
			Values: []float64{float64(show), float64(noShow)},
		}},
	}
}

// BuildGenderImpact - จำนวนนัดแยกตามเพศและผลการมาตามนัด (flag 0/1)
func BuildGenderImpact(rows []models.Appointment) models.ChartSpec {
	return models.ChartSpec{
		Kind:    models.ChartKindBar,
		Title:   "Attendance by Gender (0=Show, 1=No-show)",
		XAxis:   "Gender",
		YAxis:   "Count",
		BarMode: "group",
		Series:  outcomeCountSeries(rows, func(r models.Appointment) string { return r.Gender }, flagNames),
	}
}

// BuildSMSImpact - จำนวนนัดแยกตามการได้รับ SMS และผลการมาตามนัด (flag 0/1)
func BuildSMSImpact(rows []models.Appointment) models.ChartSpec {
	return models.ChartSpec{
		Kind:    models.ChartKindBar,
		Title:   "Attendance by SMS Received (0=Show, 1=No-show)",
		XAxis:   "SMS Received",
		YAxis:   "Count",
		BarMode: "group",
		Series:  outcomeCountSeries(rows, func(r models.Appointment) string { return r.SMSReceivedLabel }, flagNames),
	}
}

// BuildWaitingDaysByWeekday - box plot ของ WaitingDays ต่อวันนัดในสัปดาห์
// เรียง Monday..Sunday เฉพาะวันที่มีข้อมูลจริง
func BuildWaitingDaysByWeekday(rows []models.Appointment) models.ChartSpec {
	byDayOutcome := make(map[string]map[string][]float64)
	for _, row := range rows {
		if byDayOutcome[row.Weekday] == nil {
			byDayOutcome[row.Weekday] = make(map[string][]float64)
		}
		byDayOutcome[row.Weekday][row.NoShow] = append(byDayOutcome[row.Weekday][row.NoShow], float64(row.WaitingDays))
	}

	var days []string
	for _, day := range aggregate.DayOrder {
		if len(byDayOutcome[day]) > 0 {
			days = append(days, day)
		}
	}

	series := make([]models.ChartSeries, 0, 2)
	for _, outcome := range outcomeNames {
		s := models.ChartSeries{Name: outcome, Color: outcomeColor(outcome)}
		for _, day := range days {
			vals := byDayOutcome[day][outcome]
			if len(vals) == 0 {
				continue
			}
			s.Labels = append(s.Labels, day)
			s.Boxes = append(s.Boxes, boxStats(vals))
		}
		series = append(series, s)
	}

	return models.ChartSpec{
		Kind:   models.ChartKindBox,
		Title:  "Waiting Days by Appointment Day of the Week",
		XAxis:  "Appointment Day of the Week",
		YAxis:  "Waiting Days",
		Series: series,
	}
}

// BuildNeighbourhoodChart - จำนวนนัดของย่านที่มีนัดมากสุด 15 อันดับ
// แยกตามผลการมาตามนัด (คอลัมน์ Neighbourhood ไม่ขึ้นกับ dropdown)
func BuildNeighbourhoodChart(rows []models.Appointment) models.ChartSpec {
	top := topNeighbourhoods(rows, neighbourhoodTopN)
	keep := make(map[string]bool, len(top))
	for _, n := range top {
		keep[n] = true
	}

	spec := models.ChartSpec{
		Kind:    models.ChartKindBar,
		Title:   fmt.Sprintf("Attendance by Neighbourhood (Top %d)", neighbourhoodTopN),
		XAxis:   "Neighbourhood",
		YAxis:   "Count",
		BarMode: "group",
	}

	for _, outcome := range outcomeNames {
		counts := make(map[string]float64, len(top))
		for _, row := range rows {
			if row.NoShow == outcome && keep[row.Neighbourhood] {
				counts[row.Neighbourhood]++
			}
		}
		s := models.ChartSeries{Name: outcome, Color: outcomeColor(outcome)}
		for _, n := range top {
			s.Labels = append(s.Labels, n)
			s.Values = append(s.Values, counts[n])
		}
		spec.Series = append(spec.Series, s)
	}
	return spec
}

// BuildAgeGroupRate - อัตรา no-show ต่อช่วงอายุ (ข้ามถังที่ว่าง)
func BuildAgeGroupRate(rates []models.AgeGroupRate) models.ChartSpec {
	s := models.ChartSeries{Name: "No-show Rate (%)", Color: NoShowColor}
	for _, r := range rates {
		if r.Rate == nil {
			continue // ถังว่างคือ missing ไม่ใช่ 0 เลยไม่วาดแท่ง
		}
		s.Labels = append(s.Labels, r.AgeGroup)
		s.Values = append(s.Values, *r.Rate)
	}

	return models.ChartSpec{
		Kind:   models.ChartKindBar,
		Title:  "No-Show Rate by Age Group",
		XAxis:  "Age Group",
		YAxis:  "No-show Rate (%)",
		Series: []models.ChartSeries{s},
	}
}

// BuildWeekdayRate - อัตรา no-show ต่อวันในสัปดาห์ (ข้ามวันที่ไม่มีนัด)
func BuildWeekdayRate(rates []models.WeekdayRate) models.ChartSpec {
	s := models.ChartSeries{Name: "No-show Rate (%)", Color: NoShowColor}
	for _, r := range rates {
		if r.Rate == nil {
			continue
		}
		s.Labels = append(s.Labels, r.Weekday)
		s.Values = append(s.Values, *r.Rate)
	}

	return models.ChartSpec{
		Kind:   models.ChartKindBar,
		Title:  "No-Show Rate by Day of the Week",
		XAxis:  "Appointment Day of the Week",
		YAxis:  "No-show Rate (%)",
		Series: []models.ChartSeries{s},
	}
}
