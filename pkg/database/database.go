package database

import (
	"concurso_quiz_backend/internal/config"
	"concurso_quiz_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, mode string, forceMigrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	logMode := logger.Warn
	if mode == "debug" {
		logMode = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Release mode only migrates when -migrate is passed.
	if mode != "release" || forceMigrate {
		if err := migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	return db, nil
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Content{},
		&model.Quiz{},
		&model.UserAnswer{},
		&model.Favorite{},
		&model.RankingEntry{},
		&model.StudyPlan{},
	)
	if err != nil {
		return err
	}

	// Categorias padrão para uma instalação vazia.
	var count int64
	db.Model(&model.Category{}).Count(&count)
	if count == 0 {
		defaultCategories := []model.Category{
			{Nome: "Língua Portuguesa", Icone: "📘"},
			{Nome: "Raciocínio Lógico", Icone: "🧠"},
			{Nome: "Informática", Icone: "💻"},
			{Nome: "Direitos", Icone: "⚖️"},
		}
		for _, c := range defaultCategories {
			db.Create(&c)
		}
	}

	return nil
}
