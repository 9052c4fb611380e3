package handler

import (
	"reflect"
	"sync"

	"travelbooking/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidation sync.Once

// registerDateTimeType учит валидатор gin проверять model.DateTime как time.Time,
// чтобы тег required отклонял пропущенные даты.
func registerDateTimeType() {
	registerValidation.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(model.DateTime); ok {
				return d.Time
			}
			return nil
		}, model.DateTime{})
	})
}
