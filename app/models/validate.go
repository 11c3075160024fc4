package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// FieldError is one entry of a batched validation failure, in the shape the
// API returns to clients.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param"`
}

// ValidateRequest runs the declarative rules on a request struct and returns
// every violation, not just the first.
func ValidateRequest(req interface{}) []FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Msg: "Invalid request"}}
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Msg:   messageFor(fe),
			Param: lowerFirst(fe.Field()),
		})
	}
	return fieldErrors
}

// messageFor maps a failed rule to its user-facing message.
func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "Name is required"
	case "Email":
		return "Please enter a valid email"
	case "Password":
		if fe.Tag() == "min" {
			return "Please enter a password with 6 or more characters"
		}
		return "Password is required"
	case "Text":
		return "Text is required"
	}
	return "Invalid value for " + fe.Field()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}
