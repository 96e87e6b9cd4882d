package model

// UserAnswer registra a resposta dada por um usuário a um quiz.
// swagger:model UserAnswer
type UserAnswer struct {
	BaseModel
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	QuizID       uint   `gorm:"not null;index" json:"quiz_id"`
	RespostaDada string `gorm:"size:1;not null" json:"resposta_dada"`
	Acertou      bool   `gorm:"not null" json:"acertou"`
	Quiz         *Quiz  `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
}

func (UserAnswer) TableName() string {
	return "respostas_usuarios"
}
