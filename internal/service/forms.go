package service

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Form field coercion. Raw form values arrive as strings; each helper
// appends one message to errs when the field is missing or fails coercion.

func coerceInt(field, raw string, errs *ValidationErrors) int {
	if raw == "" {
		*errs = append(*errs, field+": this field is required")
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, field+": enter a whole number")
		return 0
	}
	if n < 0 {
		*errs = append(*errs, field+": ensure this value is greater than or equal to 0")
		return 0
	}
	return n
}

func coerceDecimal(field, raw string, errs *ValidationErrors) decimal.Decimal {
	if raw == "" {
		*errs = append(*errs, field+": this field is required")
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		*errs = append(*errs, field+": enter a number")
		return decimal.Zero
	}
	return d
}

func coerceUUID(field, raw string, errs *ValidationErrors) uuid.UUID {
	if raw == "" {
		*errs = append(*errs, field+": this field is required")
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		*errs = append(*errs, field+": select a valid choice")
		return uuid.Nil
	}
	return id
}
