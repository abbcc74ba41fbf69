package config

import "fmt"

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	switch c.Conversion.Mode {
	case "ocr", "text", "mac":
	default:
		errors = append(errors, ValidationError{
			Field:   "conversion.mode",
			Message: fmt.Sprintf("unknown mode %q (want ocr, text, or mac)", c.Conversion.Mode),
		})
	}

	switch c.Conversion.Engine {
	case "tesseract", "paddle":
	default:
		errors = append(errors, ValidationError{
			Field:   "conversion.engine",
			Message: fmt.Sprintf("unknown engine %q (want tesseract or paddle)", c.Conversion.Engine),
		})
	}

	if c.Conversion.DPI < 1 {
		errors = append(errors, ValidationError{
			Field:   "conversion.dpi",
			Message: "dpi must be positive",
		})
	}

	if c.Conversion.Workers < 0 {
		errors = append(errors, ValidationError{
			Field:   "conversion.workers",
			Message: "workers must be zero or positive",
		})
	}

	if c.Output.FontName == "" {
		errors = append(errors, ValidationError{
			Field:   "output.font_name",
			Message: "font name is required",
		})
	}

	if c.Output.FontSize < 1 {
		errors = append(errors, ValidationError{
			Field:   "output.font_size",
			Message: "font size must be positive",
		})
	}

	return errors
}
