package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultDepartment    = "General Ward"
	DefaultStatus        = "Admitted"
	DefaultBloodPressure = "N/A"
	DefaultTemperature   = 36.5
	DefaultRoomNumber    = "TBA"
)

// AllDepartments is the sentinel used by the list view when no
// department filter is applied.
const AllDepartments = "All"

var Departments = []string{"Emergency", "ICU", "Cardiology", "Pediatrics", "Neurology", "General Ward"}

var Statuses = []string{"Admitted", "Discharged", "Critical", "Outpatient", "Recovery"}

type Vitals struct {
	HeartRate     int     `json:"heartRate" bson:"heartRate"`
	BloodPressure string  `json:"bloodPressure" bson:"bloodPressure"`
	Temperature   float64 `json:"temperature" bson:"temperature"`
}

type Patient struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName      string             `json:"fullName" bson:"fullName"`
	Age           int                `json:"age" bson:"age"`
	Condition     string             `json:"condition" bson:"condition"`
	Department    string             `json:"department" bson:"department"`
	Status        string             `json:"status" bson:"status"`
	Vitals        Vitals             `json:"vitals" bson:"vitals"`
	RoomNumber    string             `json:"roomNumber" bson:"roomNumber"`
	Notes         string             `json:"notes" bson:"notes"`
	AdmissionDate time.Time          `json:"admissionDate" bson:"admissionDate"`
}

// ListQuery carries the two optional list filters after they have been
// parsed off the request. An empty Department behaves like "All".
type ListQuery struct {
	Search     string
	Department string
}

// Stats is the aggregate block shown on the list view. It is computed
// over the filtered result set, not the whole collection.
type Stats struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	ICU      int `json:"icu"`
	Admitted int `json:"admitted"`
}

func IsValidDepartment(dept string) bool {
	for _, d := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}

func IsValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
