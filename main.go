// @title MeuApp Concursos API
// @version 1.0
// @description API do aplicativo de estudos e quizzes para concursos.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"concurso_quiz_backend/internal/app"
	"concurso_quiz_backend/internal/config"
	"concurso_quiz_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "executa apenas a migração do banco e sai")
	migrate := flag.Bool("migrate", false, "força a migração do banco na inicialização (mesmo em modo release)")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("migração concluída, encerrando")
		return
	}

	application.Run()
}
