package model

import "time"

// StudyPlan é um item do plano de estudos, sempre restrito ao usuário dono.
// swagger:model StudyPlan
type StudyPlan struct {
	BaseModel
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Disciplina string    `gorm:"size:255;not null" json:"disciplina"`
	Conteudo   string    `gorm:"type:text;not null" json:"conteudo"`
	StudyDate  time.Time `gorm:"not null" json:"study_date"`
}

func (StudyPlan) TableName() string {
	return "study_plans"
}
