package models

// Feature - คอลัมน์ที่เลือกจาก dropdown เพื่อเทียบกับการมาตามนัด
// The value is the dataset column name, including the dataset's own
// misspelling of "Hipertension".
type Feature string

const (
	FeatureAge          Feature = "Age"
	FeatureGender       Feature = "Gender"
	FeatureScholarship  Feature = "Scholarship"
	FeatureHipertension Feature = "Hipertension"
	FeatureDiabetes     Feature = "Diabetes"
	FeatureAlcoholism   Feature = "Alcoholism"
	FeatureSMSReceived  Feature = "SMS_received"
	FeatureWaitingDays  Feature = "WaitingDays"
)

// DefaultFeature คือค่าเริ่มต้นของ dropdown
const DefaultFeature = FeatureAge

// FeatureOption - หนึ่งตัวเลือกใน dropdown (label ที่แสดง กับชื่อคอลัมน์จริง)
type FeatureOption struct {
	Label string  `json:"label"`
	Value Feature `json:"value"`
}

// FeatureOptions ลำดับตัวเลือกคงที่ของ dropdown
var FeatureOptions = []FeatureOption{
	{Label: "Age", Value: FeatureAge},
	{Label: "Gender", Value: FeatureGender},
	{Label: "Scholarship", Value: FeatureScholarship},
	{Label: "Hypertension", Value: FeatureHipertension},
	{Label: "Diabetes", Value: FeatureDiabetes},
	{Label: "Alcoholism", Value: FeatureAlcoholism},
	{Label: "SMS Received", Value: FeatureSMSReceived},
	{Label: "Waiting Days", Value: FeatureWaitingDays},
}

// ParseFeature ตรวจสอบว่า value อยู่ในชุดตัวเลือกหรือไม่
func ParseFeature(value string) (Feature, bool) {
	for _, opt := range FeatureOptions {
		if string(opt.Value) == value {
			return opt.Value, true
		}
	}
	return "", false
}

// Label คืนชื่อที่ใช้แสดงบนแกนและ title ของกราฟ
func (f Feature) Label() string {
	for _, opt := range FeatureOptions {
		if opt.Value == f {
			return opt.Label
		}
	}
	return string(f)
}

// IsNumeric รายงานว่า feature นี้เป็นตัวเลขต่อเนื่อง (ใช้ histogram แบบ overlay)
func (f Feature) IsNumeric() bool {
	return f == FeatureAge || f == FeatureWaitingDays
}
