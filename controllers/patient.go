package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"meditrack/models"
	"meditrack/services"
)

// Error indicators carried in the list view's query string on a failed
// create. Non-fatal errors never surface beyond this flag.
const (
	errValidation  = "validation"
	errPersistence = "persistence"
)

type PatientController struct {
	svc *services.PatientService
}

func NewPatientController(svc *services.PatientService) *PatientController {
	return &PatientController{svc: svc}
}

// List renders the patient table with the stats block. The stats are
// computed over the filtered set, so they narrow with the filter.
func (pc *PatientController) List(c *gin.Context) {
	query := models.ListQuery{
		Search:     c.Query("search"),
		Department: c.DefaultQuery("department", models.AllDepartments),
	}
	patients, stats, err := pc.svc.List(c.Request.Context(), query)
	if err != nil {
		log.Println("Error from List: ", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.HTML(http.StatusOK, "list.html", gin.H{
		"patients":    patients,
		"stats":       stats,
		"search":      query.Search,
		"department":  query.Department,
		"departments": models.Departments,
		"statuses":    models.Statuses,
		"error":       c.Query("error"),
	})
}

func (pc *PatientController) Create(c *gin.Context) {
	input, err := parseCreateForm(c)
	if err == nil {
		_, err = pc.svc.Create(c.Request.Context(), input)
	}
	if err != nil {
		log.Println("Error from Create: ", err)
		kind := errPersistence
		if models.IsValidation(err) {
			kind = errValidation
		}
		c.Redirect(http.StatusFound, "/?error="+kind)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Edit renders the prefilled edit form. A missing or malformed id sends
// the user back to the list without surfacing an error.
func (pc *PatientController) Edit(c *gin.Context) {
	patient, err := pc.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Println("Error from Get: ", err)
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{
		"patient":     patient,
		"departments": models.Departments,
		"statuses":    models.Statuses,
	})
}

func (pc *PatientController) Update(c *gin.Context) {
	id := c.Param("id")
	input, err := parseUpdateForm(c)
	if err == nil {
		err = pc.svc.Update(c.Request.Context(), id, input)
	}
	if err != nil {
		log.Println("Error from Update: ", err)
		c.Redirect(http.StatusFound, "/edit/"+id)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (pc *PatientController) Delete(c *gin.Context) {
	if err := pc.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		log.Println("Error from Delete: ", err)
	}
	c.Redirect(http.StatusFound, "/")
}

/*
* Read every field off the add form
* Blank optional fields stay omitted so the service applies defaults
* Numeric parse failures are validation errors, not 500s
 */
func parseCreateForm(c *gin.Context) (services.CreatePatientInput, error) {
	input := services.CreatePatientInput{
		FullName:      c.PostForm("fullName"),
		Condition:     c.PostForm("condition"),
		Department:    c.PostForm("department"),
		Status:        c.PostForm("status"),
		BloodPressure: c.PostForm("bloodPressure"),
		RoomNumber:    c.PostForm("roomNumber"),
		Notes:         c.PostForm("notes"),
	}
	var err error
	if input.Age, err = intField(c, "age"); err != nil {
		return input, err
	}
	if input.HeartRate, err = intField(c, "heartRate"); err != nil {
		return input, err
	}
	if input.Temperature, err = floatField(c, "temperature"); err != nil {
		return input, err
	}
	if raw := strings.TrimSpace(c.PostForm("admissionDate")); raw != "" {
		when, err := parseDate(raw)
		if err != nil {
			return input, models.NewValidationError("admissionDate", "invalid date")
		}
		input.AdmissionDate = &when
	}
	return input, nil
}

/*
* Only fields present in the post body make it into the update
* Everything absent keeps its stored value
 */
func parseUpdateForm(c *gin.Context) (services.UpdatePatientInput, error) {
	input := services.UpdatePatientInput{}
	if v, ok := c.GetPostForm("fullName"); ok {
		input.FullName = &v
	}
	if v, ok := c.GetPostForm("condition"); ok {
		input.Condition = &v
	}
	if v, ok := c.GetPostForm("department"); ok {
		input.Department = &v
	}
	if v, ok := c.GetPostForm("status"); ok {
		input.Status = &v
	}
	if v, ok := c.GetPostForm("bloodPressure"); ok {
		input.BloodPressure = &v
	}
	if v, ok := c.GetPostForm("roomNumber"); ok {
		input.RoomNumber = &v
	}
	if v, ok := c.GetPostForm("notes"); ok {
		input.Notes = &v
	}
	var err error
	if input.Age, err = intField(c, "age"); err != nil {
		return input, err
	}
	if input.HeartRate, err = intField(c, "heartRate"); err != nil {
		return input, err
	}
	if input.Temperature, err = floatField(c, "temperature"); err != nil {
		return input, err
	}
	return input, nil
}

func intField(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetPostForm(name)
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, models.NewValidationError(name, "must be a number")
	}
	return &n, nil
}

func floatField(c *gin.Context, name string) (*float64, error) {
	raw, ok := c.GetPostForm(name)
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, models.NewValidationError(name, "must be a number")
	}
	return &f, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02"} {
		if when, err := time.Parse(layout, raw); err == nil {
			return when, nil
		}
	}
	return time.Time{}, models.NewValidationError("admissionDate", "invalid date")
}
