package model

// Favorite é a relação usuário→quiz favoritado. O par (user_id, quiz_id)
// é único; a criação usa semântica first-or-create.
// swagger:model Favorite
type Favorite struct {
	BaseModel
	UserID uint  `gorm:"not null;uniqueIndex:idx_fav_user_quiz" json:"user_id"`
	QuizID uint  `gorm:"not null;uniqueIndex:idx_fav_user_quiz" json:"quiz_id"`
	Quiz   *Quiz `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
}

func (Favorite) TableName() string {
	return "favoritos"
}
