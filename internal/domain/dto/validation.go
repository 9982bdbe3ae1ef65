package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/guttosm/boxcalc-service/internal/domain/model"
)

// TagShippingMethod is the binding tag accepting only supported shipping methods.
const TagShippingMethod = "shipping_method"

// RegisterValidators installs the custom tags on v and reports fields by their JSON names.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, key := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v.RegisterValidation(TagShippingMethod, func(fl validator.FieldLevel) bool {
		return model.ShippingMethod(fl.Field().String()).Valid()
	})
}

// ValidationDetails maps each failing field to a short message.
// It returns nil when err is not a validation error.
func ValidationDetails(err error) map[string]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	details := make(map[string]string, len(errs))
	for _, fe := range errs {
		details[fieldPath(fe)] = validationMessage(fe)
	}
	return details
}

// HasTag reports whether err is a validation error raised by tag.
func HasTag(err error, tag string) bool {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return false
	}
	for _, fe := range errs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte", "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case TagShippingMethod:
		return "must be one of standard, express, freight"
	}
	return "is invalid"
}
