package student

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"student-portal-system/internal/global/jwt"
	"student-portal-system/internal/global/response"
	"student-portal-system/internal/global/store"
	"student-portal-system/internal/model"
	"student-portal-system/internal/validate"
)

// createReq is the admin-form payload. Field invariants are enforced here
// regardless of what the browser checked; client validation is advisory
// only.
type createReq struct {
	FirstName             string `json:"firstName" binding:"required"`
	LastName              string `json:"lastName" binding:"required"`
	RegNumber             string `json:"regNumber" binding:"required"`
	IDNumber              string `json:"idNumber" binding:"required"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	Course                string `json:"course"`
	YearOfStudy           string `json:"yearOfStudy"`
	DateOfBirth           string `json:"dateOfBirth"`
	Gender                string `json:"gender"`
	Address               string `json:"address"`
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
	Status                string `json:"status"`
}

// List returns every student, newest first. No pagination; the admin panel
// renders the full roster.
func List(c *gin.Context) {
	students, err := store.AllOrdered[model.Student]("created_at", true, 0)
	if err != nil {
		log.Error("student list failed", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, students)
}

// Create validates and inserts a student record. The reg number becomes the
// login username and the ID number the default password.
func Create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if !validate.IDNumber(req.IDNumber) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("ID/Birth Certificate Number must be 7-12 alphanumeric characters"))
		return
	}
	if !validate.KenyanPhone(req.Phone) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Please enter a valid Kenyan phone number (+254XXXXXXXXX or 07XXXXXXXX)"))
		return
	}
	if !validate.KenyanPhone(req.EmergencyContactPhone) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Please enter a valid Guardian phone number (+254XXXXXXXXX or 07XXXXXXXX)"))
		return
	}
	if !validate.MeetsAgeRequirement(req.DateOfBirth, time.Now()) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Student must be at least 12 years old"))
		return
	}

	regNumber := strings.ToUpper(strings.TrimSpace(req.RegNumber))

	// Reg numbers identify students at login; a duplicate would make the
	// lookup ambiguous. The unique index backs this check up.
	existing, err := store.Where[model.Student]("reg_number", regNumber)
	if err != nil {
		log.Error("duplicate check failed", "error", err, "reg_number", regNumber)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if len(existing) > 0 {
		response.Fail(c, response.ErrAlreadyExists.WithTips("Registration number already exists"))
		return
	}

	status := req.Status
	if status == "" {
		status = model.StatusActive
	}

	createdBy := "admin"
	if payload, ok := jwt.GetUserPayload(c); ok {
		createdBy = payload.Payload.Subject
	}

	student := model.Student{
		FirstName:             strings.TrimSpace(req.FirstName),
		LastName:              strings.TrimSpace(req.LastName),
		RegNumber:             regNumber,
		IDNumber:              strings.TrimSpace(req.IDNumber),
		Email:                 strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:                 validate.FormatKenyanPhone(req.Phone),
		Course:                req.Course,
		YearOfStudy:           req.YearOfStudy,
		DateOfBirth:           req.DateOfBirth,
		Gender:                req.Gender,
		Address:               strings.TrimSpace(req.Address),
		EmergencyContactName:  strings.TrimSpace(req.EmergencyContactName),
		EmergencyContactPhone: validate.FormatKenyanPhone(req.EmergencyContactPhone),
		Username:              regNumber,
		Password:              strings.TrimSpace(req.IDNumber),
		Status:                status,
		CreatedBy:             createdBy,
	}

	if err := store.Insert(&student); err != nil {
		log.Error("student create failed", "error", err, "reg_number", regNumber)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("student created", "reg_number", student.RegNumber, "created_by", createdBy)
	response.Created(c, "Student added successfully", student)
}

// updatableFields maps the JSON keys an edit may carry to their columns.
// Anything else in the body is dropped.
var updatableFields = map[string]string{
	"firstName":             "first_name",
	"lastName":              "last_name",
	"regNumber":             "reg_number",
	"idNumber":              "id_number",
	"email":                 "email",
	"phone":                 "phone",
	"course":                "course",
	"yearOfStudy":           "year_of_study",
	"dateOfBirth":           "date_of_birth",
	"gender":                "gender",
	"address":               "address",
	"emergencyContactName":  "emergency_contact_name",
	"emergencyContactPhone": "emergency_contact_phone",
	"status":                "status",
	"photoUrl":              "photo_url",
}

// Update merges the supplied fields into the record and re-stamps
// updated_at. There is no existence check: updating a missing id matches
// zero rows and still answers success.
func Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Student ID required"))
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	fields := make(map[string]any, len(body))
	for key, value := range body {
		column, ok := updatableFields[key]
		if !ok {
			continue
		}
		s, isString := value.(string)
		if !isString {
			continue
		}
		switch key {
		case "regNumber":
			s = strings.ToUpper(strings.TrimSpace(s))
		case "email":
			s = strings.ToLower(strings.TrimSpace(s))
		case "idNumber":
			if !validate.IDNumber(s) {
				response.Fail(c, response.ErrInvalidRequest.WithTips("ID/Birth Certificate Number must be 7-12 alphanumeric characters"))
				return
			}
		case "phone", "emergencyContactPhone":
			if !validate.KenyanPhone(s) {
				response.Fail(c, response.ErrInvalidRequest.WithTips("Please enter a valid Kenyan phone number (+254XXXXXXXXX or 07XXXXXXXX)"))
				return
			}
			s = validate.FormatKenyanPhone(s)
		case "dateOfBirth":
			if !validate.MeetsAgeRequirement(s, time.Now()) {
				response.Fail(c, response.ErrInvalidRequest.WithTips("Student must be at least 12 years old"))
				return
			}
		}
		fields[column] = s
	}

	if err := store.UpdateByID[model.Student](id, fields); err != nil {
		log.Error("student update failed", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Message(c, "Student updated successfully")
}

// Delete removes a student. Deleting an id that does not exist is a store
// no-op and still answers success.
func Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Student ID required"))
		return
	}

	if err := store.DeleteByID[model.Student](id); err != nil {
		log.Error("student delete failed", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("student deleted", "id", id)
	response.Message(c, "Student deleted successfully")
}
