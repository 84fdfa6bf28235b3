package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"sort"
	"strings"
	"sync"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	TagTaxID = "cpfcnpj"
	TagPlate = "placa"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the shop binding rules on gin's validator. Safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

// RegisterOn installs the rules on v and reports fields by their json name.
func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	if err := v.RegisterValidation(TagTaxID, func(fl validator.FieldLevel) bool {
		return entities.IsValidTaxID(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation(TagPlate, func(fl validator.FieldLevel) bool {
		return entities.IsValidPlate(fl.Field().String())
	})
}

// BindingError turns a ShouldBind* failure into the 400 envelope, naming the offending fields.
func BindingError(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fe.Field()+" "+validationMessage(fe))
		}
		sort.Strings(msgs)
		return pkg.NewDomainError("INVALID_REQUEST", strings.Join(msgs, "; "), err, http.StatusBadRequest)
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		return pkg.NewDomainError("INVALID_REQUEST", fmt.Sprintf("%s has an invalid type", typeErr.Field), err, http.StatusBadRequest)
	case errors.As(err, &syntaxErr):
		return pkg.NewDomainError("INVALID_REQUEST", "malformed json body", err, http.StatusBadRequest)
	}
	return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s item(s)", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "email":
		return "must be a valid email"
	case TagTaxID:
		return "must have 11 (CPF) or 14 (CNPJ) digits"
	case TagPlate:
		return "must be a valid plate (ABC1234 or ABC1D23)"
	}
	return "is invalid"
}
