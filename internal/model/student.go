package model

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Student is a student record managed through the admin panel. RegNumber is
// uppercase and unique; it doubles as the login username. IDNumber is both
// record data and the login credential, so unlike admin passwords it stays
// readable.
type Student struct {
	Model
	FirstName             string `gorm:"type:varchar(60);not null" json:"firstName" excel:"First Name"`
	LastName              string `gorm:"type:varchar(60);not null" json:"lastName" excel:"Last Name"`
	RegNumber             string `gorm:"type:varchar(30);uniqueIndex;not null" json:"regNumber" excel:"Reg Number"`
	IDNumber              string `gorm:"type:varchar(12);not null" json:"idNumber" excel:"ID Number"`
	Email                 string `gorm:"type:varchar(120)" json:"email" excel:"Email"`
	Phone                 string `gorm:"type:varchar(16)" json:"phone" excel:"Phone"`
	Course                string `gorm:"type:varchar(120)" json:"course" excel:"Course"`
	YearOfStudy           string `gorm:"type:varchar(10)" json:"yearOfStudy" excel:"Year"`
	DateOfBirth           string `gorm:"type:varchar(10)" json:"dateOfBirth" excel:"-"`
	Gender                string `gorm:"type:varchar(10)" json:"gender" excel:"-"`
	Address               string `gorm:"type:varchar(255)" json:"address" excel:"-"`
	EmergencyContactName  string `gorm:"type:varchar(120)" json:"emergencyContactName" excel:"-"`
	EmergencyContactPhone string `gorm:"type:varchar(16)" json:"emergencyContactPhone" excel:"-"`
	Username              string `gorm:"type:varchar(30)" json:"username" excel:"-"`
	Password              string `gorm:"type:varchar(12)" json:"password" excel:"-"`
	Status                string `gorm:"type:varchar(10);default:Active" json:"status" excel:"Status"`
	PhotoURL              string `gorm:"type:varchar(255)" json:"photoUrl,omitempty" excel:"-"`
	CreatedBy             string `gorm:"type:varchar(30)" json:"createdBy,omitempty" excel:"-"`
}

// Profile is the reduced shape returned on login: everything a student page
// needs, nothing that authenticates (the IDNumber credential is excluded).
type Profile struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	RegNumber   string `json:"regNumber"`
	Email       string `json:"email"`
	Course      string `json:"course"`
	YearOfStudy string `json:"yearOfStudy,omitempty"`
	IsAdmin     bool   `json:"isAdmin"`
	Token       string `json:"token,omitempty"`
}

// Profile builds the login profile for a student.
func (s *Student) Profile() Profile {
	return Profile{
		ID:          s.ID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		RegNumber:   s.RegNumber,
		Email:       s.Email,
		Course:      s.Course,
		YearOfStudy: s.YearOfStudy,
		IsAdmin:     false,
	}
}
