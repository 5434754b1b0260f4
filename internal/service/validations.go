package service

import (
	"errors"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once

	timeOfDay   = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	weekdayTags = map[entity.Weekday]struct{}{
		entity.Monday:    {},
		entity.Tuesday:   {},
		entity.Wednesday: {},
		entity.Thursday:  {},
		entity.Friday:    {},
		entity.Saturday:  {},
		entity.Sunday:    {},
	}
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, ok := weekdayTags[entity.Weekday(fl.Field().String())]
			return ok
		})
		// HH:MM, 24h clock
		validate.RegisterValidation("time_of_day", func(fl validator.FieldLevel) bool {
			return timeOfDay.MatchString(fl.Field().String())
		})
		validate.RegisterStructValidation(func(sl validator.StructLevel) {
			req := sl.Current().Interface().(HabitRequest)
			if len(req.Reminders) > req.Frequency {
				sl.ReportError(req.Reminders, "Reminders", "Reminders", "reminders_fit_frequency", "")
			}
		}, HabitRequest{})
	})
}

// validateStruct joins every field error under ErrValidation
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}
