package models

import "time"

// Appointment - หนึ่งแถวของตารางนัดหมายหลังการ clean
// Raw columns come straight from the CSV; the fields below the raw block
// are derived during cleaning and are pure functions of the raw values.
type Appointment struct {
	PatientID      string    `json:"patientId"`
	AppointmentID  string    `json:"appointmentId"`
	Gender         string    `json:"gender"`
	ScheduledDay   time.Time `json:"scheduledDay"`
	AppointmentDay time.Time `json:"appointmentDay"`
	Age            int       `json:"age"`
	Neighbourhood  string    `json:"neighbourhood"`
	Scholarship    int       `json:"scholarship"`
	Hipertension   int       `json:"hipertension"`
	Diabetes       int       `json:"diabetes"`
	Alcoholism     int       `json:"alcoholism"`
	SMSReceived    int       `json:"smsReceived"`
	NoShow         string    `json:"noShow"` // "Yes" = did not attend

	// Derived fields
	WaitingDays int    `json:"waitingDays"` // appointment day - scheduled day, whole days (floor)
	Weekday     string `json:"weekday"`     // appointment day-of-week name
	NoShowFlag  int    `json:"noShowFlag"`  // 1 if NoShow == "Yes"

	// String mirrors of the binary flags, for categorical axis labels
	ScholarshipLabel  string `json:"scholarshipLabel"`
	HipertensionLabel string `json:"hipertensionLabel"`
	DiabetesLabel     string `json:"diabetesLabel"`
	AlcoholismLabel   string `json:"alcoholismLabel"`
	SMSReceivedLabel  string `json:"smsReceivedLabel"`
}

// SuccessResponse ใช้เป็นโครงสร้าง JSON Response ที่ Swagger ใช้
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
