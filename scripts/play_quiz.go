// Jogador de quiz no terminal.
//
// Faz login na API, busca um lote de questões e roda uma sessão completa,
// imprimindo o placar final. Útil para validar o fluxo de jogo de ponta a
// ponta sem o aplicativo móvel.
//
// Uso: go run scripts/play_quiz.go -email ana@example.com -senha segredo [-categoria 2]

package main

import (
	"bufio"
	"concurso_quiz_backend/internal/session"
	"concurso_quiz_backend/pkg/apiclient"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "endereço da API")
	email := flag.String("email", "", "e-mail do usuário")
	password := flag.String("senha", "", "senha do usuário")
	categoryID := flag.Uint("categoria", 0, "joga só com questões desta categoria (0 = aleatório)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("informe -email e -senha")
	}

	ctx := context.Background()
	client := apiclient.New(*baseURL)

	name, err := client.Login(ctx, *email, *password)
	if err != nil {
		log.Fatalf("falha no login: %v", err)
	}
	fmt.Printf("Bem-vindo(a), %s!\n\n", name)

	runner := session.NewRunner(client)

	mode := session.RandomMode()
	if *categoryID > 0 {
		mode = session.ByCategoryMode(*categoryID)
	}

	if err := runner.Start(ctx, mode); err != nil {
		log.Fatalf("não foi possível iniciar a sessão: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)
	number := 1

	for {
		q := runner.Current()
		if q == nil {
			break
		}

		fmt.Printf("Questão %d: %s\n", number, q.Pergunta)
		for _, letter := range []string{"a", "b", "c", "d"} {
			fmt.Printf("  %s) %s\n", letter, q.Alternativas[letter])
		}

		letter := readLetter(reader)
		correct, err := runner.Answer(letter)
		if err != nil {
			log.Fatalf("erro ao responder: %v", err)
		}
		if correct {
			fmt.Println("Acertou!")
		} else {
			fmt.Printf("Errou. Resposta correta: %s\n", q.RespostaCorreta)
		}
		fmt.Println()

		// Registra também no servidor, para contar no histórico.
		if _, err := client.SubmitAnswer(ctx, q.ID, letter); err != nil {
			log.Printf("aviso: resposta não registrada no servidor: %v", err)
		}

		done, tally, err := runner.Advance()
		if err != nil {
			log.Fatalf("erro ao avançar: %v", err)
		}
		if done {
			fmt.Printf("Fim de jogo! Placar: %d/%d\n", tally.CorrectCount, tally.TotalQuestions)
			break
		}
		number++
	}

	if err := client.Logout(ctx); err != nil {
		log.Printf("aviso: logout falhou: %v", err)
	}
}

func readLetter(reader *bufio.Reader) string {
	for {
		fmt.Print("Sua resposta (a/b/c/d): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			log.Fatalf("entrada encerrada: %v", err)
		}
		letter := strings.ToLower(strings.TrimSpace(line))
		switch letter {
		case "a", "b", "c", "d":
			return letter
		}
		fmt.Println("Letra inválida, tente de novo.")
	}
}
