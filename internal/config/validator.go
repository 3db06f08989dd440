package config

import (
	stderrors "errors"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all
// validation errors at once rather than stopping at the first one.
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.General == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		})
		return validationErrors
	}

	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
	}

	if c.API != nil {
		if err := validate.Struct(c.API); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "api", "")...)
		}
	}

	validationErrors = append(validationErrors, c.validatePaths()...)

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// validatePaths runs the cross-field path checks. The output target must
// not live inside the networks directory: a published file ending up
// among the fragments would be merged into the next assembly.
func (c *Config) validatePaths() ValidationErrors {
	var validationErrors ValidationErrors

	if c.General.NetworksDir == "" || c.General.OutputPath == "" {
		return validationErrors
	}

	networksDir := filepath.Clean(c.GetAbsNetworksDir())
	outputDir := filepath.Dir(c.GetAbsOutputPath())

	if networksDir == outputDir {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general.output_path",
			Message:   "output_path must not be located inside networks_dir",
		})
	}

	return validationErrors
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if stderrors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				fieldName := e.Field()

				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + fieldName
				} else {
					fieldPath = fieldName
				}
			}

			message := getValidationMessage(e)

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   message,
			})
		}
	}

	return validationErrors
}
