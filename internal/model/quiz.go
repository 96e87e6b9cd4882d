package model

// Quiz é uma questão de múltipla escolha com quatro alternativas (a-d).
// A letra correta é armazenada sempre em minúsculo.
// swagger:model Quiz
type Quiz struct {
	BaseModel
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	CategoriaID     uint      `gorm:"not null;index" json:"categoria_id"`
	Pergunta        string    `gorm:"size:500;not null" json:"pergunta"`
	AlternativaA    string    `gorm:"size:255;not null" json:"alternativa_a"`
	AlternativaB    string    `gorm:"size:255;not null" json:"alternativa_b"`
	AlternativaC    string    `gorm:"size:255;not null" json:"alternativa_c"`
	AlternativaD    string    `gorm:"size:255;not null" json:"alternativa_d"`
	RespostaCorreta string    `gorm:"size:1;not null" json:"resposta_correta"`
	Categoria       *Category `gorm:"foreignKey:CategoriaID" json:"categoria,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// PlayQuestion é o formato servido pelos endpoints /play/quizzes/*.
// swagger:model PlayQuestion
type PlayQuestion struct {
	ID              uint              `json:"id"`
	Pergunta        string            `json:"pergunta"`
	Alternativas    map[string]string `json:"alternativas"`
	RespostaCorreta string            `json:"respostaCorreta"`
}
