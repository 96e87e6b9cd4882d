package session

// Mentor é o material de apresentação mostrado junto de uma categoria na tela
// de jogo (nome do "mentor" da disciplina e a imagem associada).
type Mentor struct {
	Nome     string
	Mensagem string
	Imagem   string
}

// mentorTable mapeia nome de categoria para o mentor exibido. Categorias fora
// da tabela caem no defaultMentor, nunca em tela vazia.
var mentorTable = map[string]Mentor{
	"Língua Portuguesa": {
		Nome:     "Profa. Clarice",
		Mensagem: "Interpretação de texto é metade da prova. Vamos treinar?",
		Imagem:   "mentores/portugues.png",
	},
	"Raciocínio Lógico": {
		Nome:     "Prof. Malba",
		Mensagem: "Lógica se aprende resolvendo. Uma questão de cada vez.",
		Imagem:   "mentores/logica.png",
	},
	"Informática": {
		Nome:     "Prof. Ada",
		Mensagem: "Atalhos e conceitos: o básico bem feito garante pontos.",
		Imagem:   "mentores/informatica.png",
	},
	"Direitos": {
		Nome:     "Profa. Ruth",
		Mensagem: "Leia a letra da lei com calma. Os detalhes decidem.",
		Imagem:   "mentores/direitos.png",
	},
}

var defaultMentor = Mentor{
	Nome:     "Equipe MeuApp",
	Mensagem: "Bora estudar! Escolha uma categoria e comece o quiz.",
	Imagem:   "mentores/default.png",
}

// MentorFor resolve o mentor de uma categoria pelo nome, com fallback padrão.
func MentorFor(categoryName string) Mentor {
	if m, ok := mentorTable[categoryName]; ok {
		return m
	}
	return defaultMentor
}
