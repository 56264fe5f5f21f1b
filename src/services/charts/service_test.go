package charts

import (
	"encoding/json"
	"testing"

	"Backend-MedDash/src/models"
	"Backend-MedDash/src/services/aggregate"
	"Backend-MedDash/src/services/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureRow(age, waiting int, gender, weekday, neighbourhood, noShow string) models.Appointment {
	flag := 0
	if noShow == "Yes" {
		flag = 1
	}
	return models.Appointment{
		Gender:            gender,
		Age:               age,
		Neighbourhood:     neighbourhood,
		NoShow:            noShow,
		NoShowFlag:        flag,
		WaitingDays:       waiting,
		Weekday:           weekday,
		ScholarshipLabel:  "0",
		HipertensionLabel: "0",
		DiabetesLabel:     "0",
		AlcoholismLabel:   "0",
		SMSReceivedLabel:  "1",
	}
}

func fixtureContext() *dataset.Context {
	rows := []models.Appointment{
		fixtureRow(5, 0, "F", "Monday", "CENTRO", "No"),
		fixtureRow(30, 2, "M", "Tuesday", "CENTRO", "Yes"),
		fixtureRow(45, 10, "F", "Tuesday", "JARDIM DA PENHA", "No"),
		fixtureRow(62, -1, "F", "Friday", "JARDIM DA PENHA", "No"),
		fixtureRow(80, 30, "M", "Friday", "MARIA ORTIZ", "Yes"),
	}
	return &dataset.Context{
		Rows:          rows,
		AgeGroupRates: aggregate.AgeGroupRates(rows),
		WeekdayRates:  aggregate.WeekdayRates(rows),
		Overview:      aggregate.BuildOverview(rows),
	}
}

func TestBuildAllSlots(t *testing.T) {
	specs := BuildAll(fixtureContext(), models.FeatureAge)
	require.Len(t, specs, 8)

	for _, slot := range []string{
		SlotMain, SlotTargetDistribution, SlotGenderImpact, SlotSMSImpact,
		SlotWaitingByDay, SlotNeighbourhood, SlotAgeGroupRate, SlotWeekdayRate,
	} {
		assert.Contains(t, specs, slot)
	}
}

func TestMainChartKindBySelection(t *testing.T) {
	data := fixtureContext()

	for _, opt := range models.FeatureOptions {
		spec := BuildMainChart(data.Rows, opt.Value)
		if opt.Value == models.FeatureAge || opt.Value == models.FeatureWaitingDays {
			assert.Equal(t, models.ChartKindHistogram, spec.Kind, opt.Value)
			assert.Equal(t, "overlay", spec.BarMode, opt.Value)
		} else {
			assert.Equal(t, models.ChartKindBar, spec.Kind, opt.Value)
			assert.Equal(t, "group", spec.BarMode, opt.Value)
		}
	}
}

func TestFeatureIndependentSlotsStable(t *testing.T) {
	data := fixtureContext()

	// Age -> Gender -> Age: ทุก slot ยกเว้น main-graph ต้องได้ byte เดิม
	states := []models.Feature{models.FeatureAge, models.FeatureGender, models.FeatureAge}
	var rendered []map[string]json.RawMessage
	for _, f := range states {
		b, err := json.Marshal(BuildAll(data, f))
		require.NoError(t, err)
		var m map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(b, &m))
		rendered = append(rendered, m)
	}

	for slot := range rendered[0] {
		if slot == SlotMain {
			continue
		}
		assert.Equal(t, string(rendered[0][slot]), string(rendered[1][slot]), slot)
		assert.Equal(t, string(rendered[1][slot]), string(rendered[2][slot]), slot)
	}

	// main-graph เปลี่ยนจริงเมื่อ feature เปลี่ยน และกลับมาเหมือนเดิม
	assert.NotEqual(t, string(rendered[0][SlotMain]), string(rendered[1][SlotMain]))
	assert.Equal(t, string(rendered[0][SlotMain]), string(rendered[2][SlotMain]))
}

func TestMainHistogramBinning(t *testing.T) {
	data := fixtureContext()

	spec := BuildMainChart(data.Rows, models.FeatureAge)
	require.Len(t, spec.Series, 2)

	show, noShow := spec.Series[0], spec.Series[1]
	assert.Equal(t, "No", show.Name)
	assert.Equal(t, ShowColor, show.Color)
	assert.Equal(t, "Yes", noShow.Name)
	assert.Equal(t, NoShowColor, noShow.Color)

	assert.Len(t, show.Values, 50)
	assert.Len(t, noShow.Values, 50)

	// bin totals match the row counts per outcome
	sum := func(vs []float64) (total float64) {
		for _, v := range vs {
			total += v
		}
		return
	}
	assert.Equal(t, 3.0, sum(show.Values))
	assert.Equal(t, 2.0, sum(noShow.Values))
}

func TestOutcomePie(t *testing.T) {
	spec := BuildOutcomePie(fixtureContext().Rows)

	assert.Equal(t, models.ChartKindPie, spec.Kind)
	require.Len(t, spec.Series, 1)
	s := spec.Series[0]
	assert.Equal(t, []string{"No", "Yes"}, s.Labels)
	assert.Equal(t, []float64{3, 2}, s.Values)
	assert.Equal(t, []string{ShowColor, NoShowColor}, s.Colors)
}

func TestGenderImpact(t *testing.T) {
	spec := BuildGenderImpact(fixtureContext().Rows)

	assert.Equal(t, "Attendance by Gender (0=Show, 1=No-show)", spec.Title)
	require.Len(t, spec.Series, 2)
	assert.Equal(t, "0", spec.Series[0].Name)
	assert.Equal(t, "1", spec.Series[1].Name)
	assert.Equal(t, []string{"F", "M"}, spec.Series[0].Labels)
	assert.Equal(t, []float64{3, 0}, spec.Series[0].Values)
	assert.Equal(t, []float64{0, 2}, spec.Series[1].Values)
}

func TestWaitingDaysBoxStats(t *testing.T) {
	rows := []models.Appointment{
		fixtureRow(30, 1, "F", "Tuesday", "CENTRO", "No"),
		fixtureRow(30, 2, "F", "Tuesday", "CENTRO", "No"),
		fixtureRow(30, 3, "F", "Tuesday", "CENTRO", "No"),
		fixtureRow(30, 4, "F", "Tuesday", "CENTRO", "No"),
	}

	spec := BuildWaitingDaysByWeekday(rows)
	assert.Equal(t, models.ChartKindBox, spec.Kind)
	require.Len(t, spec.Series, 2)

	show := spec.Series[0]
	require.Equal(t, []string{"Tuesday"}, show.Labels)
	require.Len(t, show.Boxes, 1)
	box := show.Boxes[0]
	assert.InDelta(t, 1.0, box.Min, 1e-9)
	assert.InDelta(t, 1.75, box.Q1, 1e-9)
	assert.InDelta(t, 2.5, box.Median, 1e-9)
	assert.InDelta(t, 3.25, box.Q3, 1e-9)
	assert.InDelta(t, 4.0, box.Max, 1e-9)

	// no "Yes" rows: series อยู่ใน legend แต่ไม่มีกล่อง
	assert.Empty(t, spec.Series[1].Boxes)
}

func TestWaitingDaysBoxWeekdayOrder(t *testing.T) {
	rows := []models.Appointment{
		fixtureRow(30, 1, "F", "Friday", "CENTRO", "No"),
		fixtureRow(30, 2, "F", "Monday", "CENTRO", "No"),
		fixtureRow(30, 3, "F", "Tuesday", "CENTRO", "No"),
	}

	spec := BuildWaitingDaysByWeekday(rows)
	assert.Equal(t, []string{"Monday", "Tuesday", "Friday"}, spec.Series[0].Labels)
}

func TestRateChartsSkipMissingBuckets(t *testing.T) {
	data := fixtureContext()

	ageSpec := BuildAgeGroupRate(data.AgeGroupRates)
	require.Len(t, ageSpec.Series, 1)
	// fixture ages: 5, 30, 45, 62, 80 -> five populated buckets
	assert.Equal(t, []string{"[0,10)", "[30,40)", "[40,50)", "[60,70)", "[80,90)"}, ageSpec.Series[0].Labels)
	assert.Equal(t, NoShowColor, ageSpec.Series[0].Color)

	daySpec := BuildWeekdayRate(data.WeekdayRates)
	assert.Equal(t, []string{"Monday", "Tuesday", "Friday"}, daySpec.Series[0].Labels)
}

func TestNeighbourhoodTopN(t *testing.T) {
	spec := BuildNeighbourhoodChart(fixtureContext().Rows)

	assert.Equal(t, models.ChartKindBar, spec.Kind)
	require.Len(t, spec.Series, 2)
	// volume order with alphabetical tie-break: CENTRO(2), JARDIM DA PENHA(2), MARIA ORTIZ(1)
	assert.Equal(t, []string{"CENTRO", "JARDIM DA PENHA", "MARIA ORTIZ"}, spec.Series[0].Labels)
	assert.Equal(t, []float64{1, 2, 0}, spec.Series[0].Values)
	assert.Equal(t, []float64{1, 0, 1}, spec.Series[1].Values)
}
