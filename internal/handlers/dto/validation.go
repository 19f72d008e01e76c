package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterTagNames configura o validator do gin para reportar campos
// pelos nomes das tags json, não pelos nomes dos campos da struct
func RegisterTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationMessage agrega todas as falhas de validação em uma única
// mensagem no formato "<motivo>: <campo>, <motivo>: <campo>"
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, messageForTag(fe.Tag())+": "+fe.Field())
	}
	return strings.Join(parts, ", ")
}

func messageForTag(tag string) string {
	switch tag {
	case "email":
		return "Invalid email"
	case "min":
		return "Value too short"
	case "oneof":
		return "Invalid value"
	default:
		return "Invalid value"
	}
}
