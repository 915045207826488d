package services

import (
	"context"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"meditrack/models"
)

// PatientStore is the persistence boundary. The Mongo implementation
// lives in the db package; tests substitute an in-memory fake.
type PatientStore interface {
	Find(ctx context.Context, q models.ListQuery) ([]models.Patient, error)
	FindByID(ctx context.Context, id string) (*models.Patient, error)
	Insert(ctx context.Context, patient *models.Patient) error
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

type PatientService struct {
	store PatientStore
}

func NewPatientService(store PatientStore) *PatientService {
	return &PatientService{store: store}
}

// CreatePatientInput is the parsed add form. Pointer fields distinguish
// "omitted" from a zero value so defaults only apply when a field was
// actually left out.
type CreatePatientInput struct {
	FullName      string
	Age           *int
	Condition     string
	Department    string
	Status        string
	HeartRate     *int
	BloodPressure string
	Temperature   *float64
	RoomNumber    string
	Notes         string
	AdmissionDate *time.Time
}

// UpdatePatientInput is the parsed edit form. Only non-nil fields are
// validated and replaced; everything else keeps its stored value.
type UpdatePatientInput struct {
	FullName      *string
	Age           *int
	Condition     *string
	Department    *string
	Status        *string
	HeartRate     *int
	BloodPressure *string
	Temperature   *float64
	RoomNumber    *string
	Notes         *string
}

/*
* Validate required fields and enum membership
* Apply defaults for everything omitted
* Let the store assign the id
 */
func (s *PatientService) Create(ctx context.Context, in CreatePatientInput) (*models.Patient, error) {
	patient, err := buildPatient(in)
	if err != nil {
		log.Println("Error from buildPatient: ", err)
		return nil, err
	}
	if err := s.store.Insert(ctx, patient); err != nil {
		log.Println("Error from Insert: ", err)
		return nil, err
	}
	return patient, nil
}

// List fetches the patients matching q, newest admission first, and
// computes the stats block over that same filtered set.
func (s *PatientService) List(ctx context.Context, q models.ListQuery) ([]models.Patient, models.Stats, error) {
	patients, err := s.store.Find(ctx, q)
	if err != nil {
		log.Println("Error from Find: ", err)
		return nil, models.Stats{}, err
	}
	return patients, ComputeStats(patients), nil
}

func (s *PatientService) Get(ctx context.Context, id string) (*models.Patient, error) {
	return s.store.FindByID(ctx, id)
}

/*
* Validate only the fields that were supplied
* Build the partial update document
* Replace in place, keep everything else
 */
func (s *PatientService) Update(ctx context.Context, id string, in UpdatePatientInput) error {
	fields, err := buildUpdate(in)
	if err != nil {
		log.Println("Error from buildUpdate: ", err)
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	if err := s.store.Update(ctx, id, fields); err != nil {
		log.Println("Error from Update: ", err)
		return err
	}
	return nil
}

func (s *PatientService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		log.Println("Error from Delete: ", err)
		return err
	}
	return nil
}

// Census counts the whole collection, for the daily job. The list view
// never uses this; its stats are scoped to the filtered set.
func (s *PatientService) Census(ctx context.Context) (models.Stats, error) {
	patients, err := s.store.Find(ctx, models.ListQuery{})
	if err != nil {
		return models.Stats{}, err
	}
	return ComputeStats(patients), nil
}

// ComputeStats aggregates over the result set it is given, so the numbers
// narrow together with the active filter.
func ComputeStats(patients []models.Patient) models.Stats {
	stats := models.Stats{Total: len(patients)}
	for _, p := range patients {
		if p.Status == "Critical" {
			stats.Critical++
		}
		if p.Status == "Admitted" {
			stats.Admitted++
		}
		if p.Department == "ICU" {
			stats.ICU++
		}
	}
	return stats
}

func buildPatient(in CreatePatientInput) (*models.Patient, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, models.NewValidationError("fullName", "required")
	}
	if in.Age == nil {
		return nil, models.NewValidationError("age", "required")
	}
	condition := strings.TrimSpace(in.Condition)
	if condition == "" {
		return nil, models.NewValidationError("condition", "required")
	}

	department := in.Department
	if department == "" {
		department = models.DefaultDepartment
	} else if !models.IsValidDepartment(department) {
		return nil, models.NewValidationError("department", "unknown department")
	}
	status := in.Status
	if status == "" {
		status = models.DefaultStatus
	} else if !models.IsValidStatus(status) {
		return nil, models.NewValidationError("status", "unknown status")
	}

	patient := &models.Patient{
		FullName:   fullName,
		Age:        *in.Age,
		Condition:  condition,
		Department: department,
		Status:     status,
		Vitals: models.Vitals{
			BloodPressure: models.DefaultBloodPressure,
			Temperature:   models.DefaultTemperature,
		},
		RoomNumber:    models.DefaultRoomNumber,
		Notes:         strings.TrimSpace(in.Notes),
		AdmissionDate: time.Now(),
	}
	if in.HeartRate != nil {
		patient.Vitals.HeartRate = *in.HeartRate
	}
	if bp := strings.TrimSpace(in.BloodPressure); bp != "" {
		patient.Vitals.BloodPressure = bp
	}
	if in.Temperature != nil {
		patient.Vitals.Temperature = *in.Temperature
	}
	if room := strings.TrimSpace(in.RoomNumber); room != "" {
		patient.RoomNumber = room
	}
	if in.AdmissionDate != nil {
		patient.AdmissionDate = *in.AdmissionDate
	}
	return patient, nil
}

func buildUpdate(in UpdatePatientInput) (bson.M, error) {
	fields := bson.M{}
	if in.FullName != nil {
		fullName := strings.TrimSpace(*in.FullName)
		if fullName == "" {
			return nil, models.NewValidationError("fullName", "required")
		}
		fields["fullName"] = fullName
	}
	if in.Age != nil {
		fields["age"] = *in.Age
	}
	if in.Condition != nil {
		condition := strings.TrimSpace(*in.Condition)
		if condition == "" {
			return nil, models.NewValidationError("condition", "required")
		}
		fields["condition"] = condition
	}
	if in.Department != nil {
		if !models.IsValidDepartment(*in.Department) {
			return nil, models.NewValidationError("department", "unknown department")
		}
		fields["department"] = *in.Department
	}
	if in.Status != nil {
		if !models.IsValidStatus(*in.Status) {
			return nil, models.NewValidationError("status", "unknown status")
		}
		fields["status"] = *in.Status
	}
	if in.HeartRate != nil {
		fields["vitals.heartRate"] = *in.HeartRate
	}
	if in.BloodPressure != nil {
		fields["vitals.bloodPressure"] = strings.TrimSpace(*in.BloodPressure)
	}
	if in.Temperature != nil {
		fields["vitals.temperature"] = *in.Temperature
	}
	if in.RoomNumber != nil {
		fields["roomNumber"] = strings.TrimSpace(*in.RoomNumber)
	}
	if in.Notes != nil {
		fields["notes"] = strings.TrimSpace(*in.Notes)
	}
	return fields, nil
}
