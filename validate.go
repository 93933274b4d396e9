package sandbox

import (
	"net/http"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

const validateTagName = "validate"

var defaultValidator = &structValidator{}

type structValidator struct {
	once     sync.Once
	validate *validator.Validate
}

// Validate 参数验证
func (v *structValidator) Validate(obj interface{}) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() {
			return nil
		}
		return v.Validate(value.Elem().Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < value.Len(); i++ {
			if err := v.Validate(value.Index(i).Interface()); err != nil {
				return err
			}
		}
	case reflect.Struct:
		v.lazyInit()
		if err := v.validate.Struct(obj); err != nil {
			return &APIError{StatusCode: http.StatusBadRequest, Message: err.Error()}
		}
	}

	return nil
}

// lazyInit 延迟初始化
func (v *structValidator) lazyInit() {
	v.once.Do(func() {
		v.validate = validator.New()
		v.validate.SetTagName(validateTagName)
	})
}
