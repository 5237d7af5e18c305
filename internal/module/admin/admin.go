package admin

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

// adminView is the wire shape of an authenticated admin: the stored record
// minus its password hash, plus a signed token.
type adminView struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Token     string `json:"token,omitempty"`
}

// Login authenticates an admin from query credentials. The superadmin is
// checked first and exists outside the store. A wrong username and a wrong
// password answer the same generic 404.
func Login(c *gin.Context) {
	username := strings.ToLower(strings.TrimSpace(c.Query("username")))
	password := c.Query("password")

	if username == "" || password == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Username and password required"))
		return
	}

	super := config.Get().Superadmin
	if username == super.Username && tools.SecretEqual(password, super.Password) {
		log.Info("superadmin login")
		response.Success(c, []adminView{{
			ID:        "admin001",
			FirstName: "System",
			LastName:  "Admin",
			Email:     "admin@khu.ac.ke",
			Username:  super.Username,
			Role:      "superadmin",
			Token:     jwt.CreateToken(jwt.Payload{Subject: super.Username, Role: jwt.RoleAdmin}),
		}})
		return
	}

	admins, err := store.Where[model.Admin]("username", username)
	if err != nil {
		log.Error("admin lookup failed", "error", err, "username", username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	matched := make([]adminView, 0, 1)
	for i := range admins {
		if tools.PasswordCompare(password, admins[i].Password) {
			matched = append(matched, adminView{
				ID:        admins[i].ID,
				FirstName: admins[i].FirstName,
				LastName:  admins[i].LastName,
				Email:     admins[i].Email,
				Username:  admins[i].Username,
				Role:      admins[i].Role,
				Token:     jwt.CreateToken(jwt.Payload{Subject: admins[i].Username, Role: jwt.RoleAdmin}),
			})
		}
	}

	if len(matched) == 0 {
		log.Warn("admin login failed", "username", username, "client_ip", c.ClientIP())
		response.Fail(c, response.ErrAdminNotFound)
		return
	}

	log.Info("admin login", "username", username)
	response.Success(c, matched)
}

type createReq struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role"`
}

// Create adds an admin. The username-taken and email-taken checks are
// separate round trips; two concurrent creations can race past them, which
// the unique indexes then catch.
func Create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("All fields are required").WithOrigin(err))
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := store.Where[model.Admin]("username", username)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if len(existing) > 0 {
		response.Fail(c, response.ErrAlreadyExists.WithTips("Username already exists"))
		return
	}

	existing, err = store.Where[model.Admin]("email", email)
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if len(existing) > 0 {
		response.Fail(c, response.ErrAlreadyExists.WithTips("Email already exists"))
		return
	}

	role := req.Role
	if role == "" {
		role = "admin"
	}

	admin := model.Admin{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Username:  username,
		Password:  tools.PasswordEncrypt(req.Password),
		Role:      role,
	}

	if err := store.Insert(&admin); err != nil {
		log.Error("admin create failed", "error", err, "username", username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("admin created", "username", admin.Username, "role", admin.Role)
	response.Created(c, "Admin created", admin)
}

// Delete removes an admin by id or username. The superadmin username can
// never be deleted through either addressing mode.
func Delete(c *gin.Context) {
	id := c.Query("id")
	username := strings.ToLower(strings.TrimSpace(c.Query("username")))

	if id == "" && username == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Admin ID or username required"))
		return
	}

	super := config.Get().Superadmin
	if username == super.Username {
		response.Fail(c, response.ErrInvalidRequest.WithTips("Cannot delete super admin"))
		return
	}

	if id != "" {
		admins, err := store.Where[model.Admin]("id", id)
		if err != nil {
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		if len(admins) > 0 && admins[0].Username == super.Username {
			response.Fail(c, response.ErrInvalidRequest.WithTips("Cannot delete super admin"))
			return
		}
		if err := store.DeleteByID[model.Admin](id); err != nil {
			log.Error("admin delete failed", "error", err, "id", id)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	} else {
		if err := store.DeleteWhere[model.Admin]("username", username); err != nil {
			log.Error("admin delete failed", "error", err, "username", username)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	log.Info("admin deleted", "id", id, "username", username)
	response.Message(c, "Admin deleted")
}
