package api

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Nixie-Tech-LLC/minaret/internal/model"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
)

// RegisterValidators adds the binding rules used by the request packets:
//
//	clock             "5:15 AM" or "05:15"
//	application_kind  one of model.ApplicationKinds
//	project_category  one of model.ProjectCategories, or "all"
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}

	rules := map[string]validator.Func{
		"clock": func(fl validator.FieldLevel) bool {
			_, err := prayer.ParseClock(fl.Field().String())
			return err == nil
		},
		"application_kind": func(fl validator.FieldLevel) bool {
			return model.IsApplicationKind(fl.Field().String())
		},
		"project_category": func(fl validator.FieldLevel) bool {
			c := fl.Field().String()
			return c == "all" || model.IsProjectCategory(c)
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
