package model

// swagger:model User
type User struct {
	BaseModel
	Name           string `gorm:"size:255;not null" json:"name"`
	Email          string `gorm:"size:255;unique;not null" json:"email"`
	Password       string `gorm:"size:100;not null" json:"-"`
	PontuacaoTotal int    `gorm:"default:0" json:"pontuacao_total"` // pontuação acumulada exibida no ranking geral
}

func (User) TableName() string {
	return "users"
}
