package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "frontdesk/errors"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return jsonName(fld.Tag.Get("json"), fld.Tag.Get("form"), fld.Name)
		})
	})
	return instance
}

// ValidateStruct validate request theo tag `validate`
func ValidateStruct(v interface{}) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}

	fe := fieldErrs[0]
	if fe.Tag() == "required" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, fmt.Sprintf("%s không được để trống", fe.Field()), err)
	}
	return apperrors.NewAppError(apperrors.ErrCodeValidation, describe(fe), err)
}

// ValidateAmount validate số tiền
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidAmount, "Số tiền không được âm", nil)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s phải lớn hơn hoặc bằng %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s phải nhỏ hơn hoặc bằng %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s phải là một trong [%s]", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s không hợp lệ", fe.Field())
}

func jsonName(tags ...string) string {
	for _, tag := range tags {
		name := strings.SplitN(tag, ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return ""
}
