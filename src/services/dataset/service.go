package dataset

import (
	"Backend-MedDash/src/models"
	"Backend-MedDash/src/services/aggregate"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"
)

// Error ประจำ loader - ทั้งสองตัวเป็น fatal ตอน start ไม่มี retry
var (
	// ErrDataUnavailable - ดึงหรือ parse ไฟล์ dataset ไม่สำเร็จ
	ErrDataUnavailable = errors.New("dataset unavailable")
	// ErrMalformedSchema - คอลัมน์ที่ต้องมีหายไปจาก header
	ErrMalformedSchema = errors.New("malformed dataset schema")
)

// requiredColumns คือคอลัมน์ทั้งหมดที่ dashboard ใช้จริง
var requiredColumns = []string{
	"PatientId", "AppointmentID", "Gender",
	"ScheduledDay", "AppointmentDay", "Age", "Neighbourhood",
	"Scholarship", "Hipertension", "Diabetes", "Alcoholism",
	"SMS_received", "No-show",
}

// Cache - ที่เก็บ CSV ดิบแบบ optional (ดู database.DatasetCache)
type Cache interface {
	Get(ctx context.Context) []byte
	Set(ctx context.Context, b []byte)
}

// Context - ข้อมูลทั้งหมดที่ dashboard ใช้ สร้างครั้งเดียวตอน start
// และห้ามแก้ไขหลังจากนั้น ทุก handler อ่านร่วมกันได้โดยไม่ต้อง lock
type Context struct {
	Rows          []models.Appointment
	AgeGroupRates []models.AgeGroupRate
	WeekdayRates  []models.WeekdayRate
	Overview      models.Overview
}

// Load ดึง CSV จาก url (ผ่าน cache ถ้ามี) แล้ว clean และคำนวณ summary
func Load(ctx context.Context, url string, cache Cache) (*Context, error) {
	raw, err := fetch(ctx, url, cache)
	if err != nil {
		return nil, err
	}

	rows, err := parse(raw)
	if err != nil {
		return nil, err
	}

	data := &Context{
		Rows:          rows,
		AgeGroupRates: aggregate.AgeGroupRates(rows),
		WeekdayRates:  aggregate.WeekdayRates(rows),
		Overview:      aggregate.BuildOverview(rows),
	}
	log.Printf("✅ Loaded %d appointments from dataset", len(rows))
	return data, nil
}

// fetch อ่านไฟล์จาก cache ก่อน ถ้าไม่เจอค่อยยิง HTTP แล้วเก็บลง cache
func fetch(ctx context.Context, url string, cache Cache) ([]byte, error) {
	if cache != nil {
		if b := cache.Get(ctx); len(b) > 0 {
			log.Println("✅ Dataset served from cache")
			return b, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", ErrDataUnavailable, resp.StatusCode, url)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	if cache != nil {
		cache.Set(ctx, b)
	}
	return b, nil
}

// parse แปลง CSV เป็นตารางนัดหมายตามกติกาการ clean:
// ตัดแถวอายุติดลบ, parse timestamp แบบไม่มี timezone, คำนวณ WaitingDays
// แบบปัดลง (floor), ชื่อวันของวันนัด, no-show flag และ label ของ flag ต่างๆ
func parse(raw []byte) ([]models.Appointment, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrDataUnavailable, err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedSchema, name)
		}
	}

	var rows []models.Appointment
	negativeWaits := 0
	line := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading row: %v", ErrDataUnavailable, err)
		}
		line++

		age, err := strconv.Atoi(rec[col["Age"]])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad Age %q", ErrDataUnavailable, line, rec[col["Age"]])
		}
		if age < 0 {
			continue // แถวอายุติดลบทิ้งไปเลย
		}

		scheduled, err := parseNaive(rec[col["ScheduledDay"]])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad ScheduledDay: %v", ErrDataUnavailable, line, err)
		}
		appointment, err := parseNaive(rec[col["AppointmentDay"]])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad AppointmentDay: %v", ErrDataUnavailable, line, err)
		}

		row := models.Appointment{
			PatientID:      rec[col["PatientId"]],
			AppointmentID:  rec[col["AppointmentID"]],
			Gender:         rec[col["Gender"]],
			ScheduledDay:   scheduled,
			AppointmentDay: appointment,
			Age:            age,
			Neighbourhood:  rec[col["Neighbourhood"]],
			Scholarship:    parseFlag(rec[col["Scholarship"]]),
			Hipertension:   parseFlag(rec[col["Hipertension"]]),
			Diabetes:       parseFlag(rec[col["Diabetes"]]),
			Alcoholism:     parseFlag(rec[col["Alcoholism"]]),
			SMSReceived:    parseFlag(rec[col["SMS_received"]]),
			NoShow:         rec[col["No-show"]],
		}

		row.WaitingDays = wholeDays(appointment.Sub(scheduled))
		row.Weekday = appointment.Weekday().String()
		if row.NoShow == "Yes" {
			row.NoShowFlag = 1
		}
		row.ScholarshipLabel = rec[col["Scholarship"]]
		row.HipertensionLabel = rec[col["Hipertension"]]
		row.DiabetesLabel = rec[col["Diabetes"]]
		row.AlcoholismLabel = rec[col["Alcoholism"]]
		row.SMSReceivedLabel = rec[col["SMS_received"]]

		if row.WaitingDays < 0 {
			negativeWaits++
		}
		rows = append(rows, row)
	}

	if negativeWaits > 0 {
		// data-quality warning: นัดที่วันนัดมาก่อนวันจอง ไม่ตัดทิ้ง แค่แจ้งไว้
		log.Printf("⚠️ Warning: %d rows have negative waiting days", negativeWaits)
	}

	return rows, nil
}

// parseNaive แปลง timestamp RFC3339 แล้วตัด timezone ทิ้ง (เก็บเป็น UTC wall clock)
func parseNaive(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// wholeDays ปัดช่วงเวลาลงเป็นจำนวนวันเต็ม (floor ไม่ใช่ truncate -
// การจองวันเดียวกันได้ -1 เพราะ AppointmentDay เป็นเที่ยงคืน)
func wholeDays(d time.Duration) int {
	return int(math.Floor(d.Hours() / 24))
}

func parseFlag(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
