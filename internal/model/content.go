package model

// Content é um material de estudo vinculado a uma categoria.
// swagger:model Content
type Content struct {
	BaseModel
	Titulo      string    `gorm:"size:255;not null" json:"titulo"`
	Descricao   string    `gorm:"type:text;not null" json:"descricao"`
	Link        *string   `gorm:"size:255" json:"link"`
	CategoriaID uint      `gorm:"not null;index" json:"categoria_id"`
	Categoria   *Category `gorm:"foreignKey:CategoriaID" json:"categoria,omitempty"`
}

func (Content) TableName() string {
	return "conteudos"
}
