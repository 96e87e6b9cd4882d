package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindError converte erros de binding do gin em uma resposta 422 com
// mensagens por campo, no mesmo formato que o app já consumia.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			fields[field] = append(fields[field], validationMessage(fe))
		}
		ValidationError(c, fields)
		return
	}

	BadRequest(c, err.Error())
}

func validationMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório.", field)
	case "email":
		return fmt.Sprintf("O campo %s deve ser um e-mail válido.", field)
	case "min":
		return fmt.Sprintf("O campo %s deve ter no mínimo %s caracteres.", field, fe.Param())
	case "max":
		return fmt.Sprintf("O campo %s deve ter no máximo %s caracteres.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("O campo %s deve ser um de: %s.", field, fe.Param())
	case "url":
		return fmt.Sprintf("O campo %s deve ser uma URL válida.", field)
	default:
		return fmt.Sprintf("O campo %s é inválido.", field)
	}
}
