package lib

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"saes/study-app/core"
)

// Validator plugs go-playground/validator into gin binding and adds the
// domain tags "notblank" and "aspectratio".
type Validator struct {
	once     sync.Once
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := &Validator{}
	v.lazyinit()
	return v
}

func (v *Validator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}
	v.lazyinit()
	return v.validate.Struct(obj)
}

func (v *Validator) Engine() any {
	v.lazyinit()
	return v.validate
}

func (v *Validator) lazyinit() {
	v.once.Do(func() {
		v.validate = validator.New(validator.WithRequiredStructEnabled())
		v.validate.SetTagName("binding")
		v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
		_ = v.validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.validate.RegisterValidation("aspectratio", func(fl validator.FieldLevel) bool {
			_, err := core.ParseAspectRatio(fl.Field().String())
			return err == nil
		})
	})
}
