package model

import (
	"time"
)

type Profile struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	FullName       string    `gorm:"type:varchar(255)" json:"full_name"`
	Email          string    `gorm:"type:varchar(255)" json:"email"`
	ResumeText     string    `gorm:"type:text" json:"resume_text"`
	ResumeFileName string    `gorm:"type:varchar(255)" json:"resume_file_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p *Profile) TableName() string {
	return "profiles"
}
