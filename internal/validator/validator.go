// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("income_source", validateIncomeSource)
		_ = v.RegisterValidation("payment_type", validatePaymentType)
		_ = v.RegisterValidation("bill_category", validateBillCategory)
		_ = v.RegisterValidation("bill_recurrence", validateBillRecurrence)
		_ = v.RegisterValidation("payment_status", validatePaymentStatus)
	}
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Food", "Transport", "Housing", "Utilities", "Entertainment",
		"Shopping", "Health", "Education", "Travel", "Other":
		return true
	}
	return false
}

func validateIncomeSource(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Salary", "Business", "Freelance", "Investment", "Rental", "Gift", "Other":
		return true
	}
	return false
}

func validatePaymentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Cash", "Card", "UPI", "BankTransfer", "Other":
		return true
	}
	return false
}

func validateBillCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Rent", "Electricity", "Water", "Internet", "Phone",
		"Insurance", "Subscription", "Other":
		return true
	}
	return false
}

func validateBillRecurrence(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Monthly", "Quarterly", "Yearly", "OneTime":
		return true
	}
	return false
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Pending", "Paid", "Overdue":
		return true
	}
	return false
}
