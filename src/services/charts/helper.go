package charts

import (
	"Backend-MedDash/src/models"
	"fmt"
	"sort"
)

// ลำดับ series คงที่: ฝั่งมาตามนัดก่อนเสมอ เพื่อให้ spec เดิมได้ byte เดิม
var (
	outcomeNames = []string{"No", "Yes"} // ค่าในคอลัมน์ No-show
	flagNames    = []string{"0", "1"}    // ชื่อ series ของกราฟที่ติดป้ายด้วย flag
)

func outcomeColor(outcome string) string {
	if outcome == "Yes" || outcome == "1" {
		return NoShowColor
	}
	return ShowColor
}

// categoryValue คืนค่าหมวดหมู่ของ feature จากแถวหนึ่ง ใช้ string mirror
// ของ flag เพื่อให้แกน x เป็นหมวดหมู่ไม่ใช่ตัวเลข
func categoryValue(row models.Appointment, feature models.Feature) string {
	switch feature {
	case models.FeatureGender:
		return row.Gender
	case models.FeatureScholarship:
		return row.ScholarshipLabel
	case models.FeatureHipertension:
		return row.HipertensionLabel
	case models.FeatureDiabetes:
		return row.DiabetesLabel
	case models.FeatureAlcoholism:
		return row.AlcoholismLabel
	case models.FeatureSMSReceived:
		return row.SMSReceivedLabel
	}
	return ""
}

// numericValue คืนค่าตัวเลขของ feature ต่อเนื่อง (Age, WaitingDays)
func numericValue(row models.Appointment, feature models.Feature) float64 {
	if feature == models.FeatureWaitingDays {
		return float64(row.WaitingDays)
	}
	return float64(row.Age)
}

// outcomeCountSeries นับจำนวนแถวต่อ (หมวดหมู่ x ผลการมาตามนัด)
// หมวดหมู่เรียงตามตัวอักษรเสมอเพื่อความ deterministic
func outcomeCountSeries(rows []models.Appointment, category func(models.Appointment) string, names []string) []models.ChartSeries {
	catSet := make(map[string]bool)
	for _, row := range rows {
		catSet[category(row)] = true
	}
	cats := make([]string, 0, len(catSet))
	for c := range catSet {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	series := make([]models.ChartSeries, 0, len(names))
	for flag, name := range names {
		counts := make(map[string]float64, len(cats))
		for _, row := range rows {
			if row.NoShowFlag == flag {
				counts[category(row)]++
			}
		}
		s := models.ChartSeries{Name: name, Color: outcomeColor(name)}
		for _, c := range cats {
			s.Labels = append(s.Labels, c)
			s.Values = append(s.Values, counts[c])
		}
		series = append(series, s)
	}
	return series
}

// histogramSeries แบ่งค่าของ feature เป็นถังความกว้างเท่ากัน nbins ถัง
// ทับขอบเขตร่วมกันทั้งสอง series เพื่อให้ overlay ตรงกัน
func histogramSeries(rows []models.Appointment, feature models.Feature, nbins int) []models.ChartSeries {
	if len(rows) == 0 {
		return []models.ChartSeries{}
	}

	lo := numericValue(rows[0], feature)
	hi := lo
	for _, row := range rows {
		v := numericValue(row, feature)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	width := (hi - lo) / float64(nbins)
	if width == 0 {
		width, nbins = 1, 1
	}

	labels := make([]string, nbins)
	for b := 0; b < nbins; b++ {
		labels[b] = fmt.Sprintf("%.1f", lo+width*float64(b))
	}

	series := make([]models.ChartSeries, 0, len(outcomeNames))
	for _, outcome := range outcomeNames {
		counts := make([]float64, nbins)
		for _, row := range rows {
			if row.NoShow != outcome {
				continue
			}
			b := int((numericValue(row, feature) - lo) / width)
			if b >= nbins { // ค่า max ตกถังสุดท้าย
				b = nbins - 1
			}
			counts[b]++
		}
		series = append(series, models.ChartSeries{
			Name:   outcome,
			Color:  outcomeColor(outcome),
			Labels: labels,
			Values: counts,
		})
	}
	return series
}

// topNeighbourhoods คืนชื่อย่าน n อันดับแรกตามจำนวนนัดรวม
// เสมอกันตัดสินด้วยชื่อ เพื่อให้ลำดับคงที่
func topNeighbourhoods(rows []models.Appointment, n int) []string {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.Neighbourhood]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	if len(names) > n {
		names = names[:n]
	}
	return names
}

// boxStats คำนวณ five-number summary (quartile แบบ linear interpolation)
func boxStats(vals []float64) models.BoxStats {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	return models.BoxStats{
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
