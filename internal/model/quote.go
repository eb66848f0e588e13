package model

type Quote struct {
	BaseModel
	Quote       string `gorm:"not null" json:"quote" validate:"required"`
	Author      string `gorm:"type:varchar(255);default:'Unknown'" json:"author"`
	Likes       int    `gorm:"not null;default:0" json:"likes"`
	Type        string `gorm:"type:varchar(100);default:'motivational'" json:"type"`
	Description string `json:"description,omitempty"`
}
