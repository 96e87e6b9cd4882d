package model

// Category é uma disciplina/assunto que agrupa conteúdos e quizzes.
// swagger:model Category
type Category struct {
	BaseModel
	Nome  string `gorm:"size:255;not null" json:"nome"`
	Icone string `gorm:"size:255" json:"icone"`
}

func (Category) TableName() string {
	return "categorias"
}
