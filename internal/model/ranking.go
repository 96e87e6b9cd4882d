package model

import "time"

// RankingEntry guarda a pontuação de um usuário para o placar.
// A atualização sobrescreve a pontuação (não soma).
// swagger:model RankingEntry
type RankingEntry struct {
	BaseModel
	UsuarioID         uint      `gorm:"not null;uniqueIndex" json:"usuario_id"`
	Pontuacao         int       `gorm:"not null;default:0" json:"pontuacao"`
	UltimaAtualizacao time.Time `json:"ultima_atualizacao"`
}

func (RankingEntry) TableName() string {
	return "ranking"
}
