package model

// Admin is a portal administrator. Username and email are unique and
// lowercase; the password is a bcrypt hash and never serialized.
type Admin struct {
	Model
	FirstName string `gorm:"type:varchar(60);not null" json:"firstName"`
	LastName  string `gorm:"type:varchar(60);not null" json:"lastName"`
	Email     string `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Username  string `gorm:"type:varchar(30);uniqueIndex;not null" json:"username"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	Role      string `gorm:"type:varchar(20);default:admin" json:"role"`
}
