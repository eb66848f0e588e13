package model

type User struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email       string `gorm:"type:varchar(255);not null" json:"email" validate:"required,email"`
	Address     string `gorm:"type:varchar(500)" json:"address,omitempty"`
	Phone       string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Description string `json:"description,omitempty"`
	ProfilePic  string `gorm:"type:varchar(500)" json:"profilePic,omitempty"`
}
