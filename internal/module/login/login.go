package login

import (
	"strings"

	"github.com/gin-gonic/gin"

	"student-portal-system/config"
	"student-portal-system/internal/global/jwt"
	"student-portal-system/internal/global/response"
	"student-portal-system/internal/global/store"
	"student-portal-system/internal/model"
	"student-portal-system/tools"
)

// loginReq carries the student credential pair: reg number as username,
// national ID number as password.
type loginReq struct {
	RegNo    string `json:"regNo" binding:"required"`
	IDNumber string `json:"idNumber" binding:"required"`
}

// Login authenticates a student (or the built-in superadmin) and returns a
// reduced profile. Every failure after field validation answers the same
// generic 401 so responses never reveal which half of the credential was
// wrong.
func Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Registration number and ID number are required").WithOrigin(err))
		return
	}

	regNo := strings.ToUpper(strings.TrimSpace(req.RegNo))
	idNumber := strings.TrimSpace(req.IDNumber)

	// The superadmin lives outside the store and wins regardless of its
	// contents. A miss here still falls through to the student lookup.
	super := config.Get().Superadmin
	if regNo == strings.ToUpper(super.Username) && tools.SecretEqual(idNumber, super.Password) {
		log.Info("superadmin login")
		profile := superadminProfile(super)
		profile.Token = jwt.CreateToken(jwt.Payload{Subject: super.Username, Role: jwt.RoleAdmin})
		response.User(c, profile)
		return
	}

	students, err := store.Where[model.Student]("reg_number", regNo)
	if err != nil {
		log.Error("student lookup failed", "error", err, "reg_no", regNo)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// Scan matches comparing the ID number in constant time. RegNumber is
	// unique by index, so at most one record arrives here.
	var matched *model.Student
	for i := range students {
		if tools.SecretEqual(students[i].IDNumber, idNumber) {
			matched = &students[i]
			break
		}
	}

	if matched == nil {
		log.Warn("login failed", "reg_no", regNo, "client_ip", c.ClientIP())
		response.Fail(c, response.ErrInvalidCredentials)
		return
	}

	log.Info("student login", "reg_no", matched.RegNumber)

	profile := matched.Profile()
	profile.Token = jwt.CreateToken(jwt.Payload{Subject: matched.RegNumber, Role: jwt.RoleStudent})
	response.User(c, profile)
}

func superadminProfile(super config.Superadmin) model.Profile {
	return model.Profile{
		ID:        "admin",
		FirstName: "Admin",
		LastName:  "Administrator",
		RegNumber: strings.ToUpper(super.Username),
		Email:     "admin@khu.ac.ke",
		Course:    "Administrator",
		IsAdmin:   true,
	}
}
