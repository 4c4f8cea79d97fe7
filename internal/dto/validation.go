package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/pharmadesk/pharma_ledger_app/internal/core/reconcile"
)

// RegisterCustomValidations wires ledger-specific validators into the binding
// engine. Must be called before the first request is bound.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("amount", validAmount)
}

// validAmount accepts any numeric text the ledger can coerce, including
// grouped digits like "1,200.50".
func validAmount(fl validator.FieldLevel) bool {
	_, ok := reconcile.ParseAmount(fl.Field().String())
	return ok
}
