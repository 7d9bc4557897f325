package service

import (
	"strings"

	"github.com/acmehq/invoicedesk/internal/currency"
	"github.com/acmehq/invoicedesk/internal/invoice/domain"
	"github.com/acmehq/invoicedesk/internal/validation"
	"github.com/bwmarrin/snowflake"
)

const (
	msgSelectCustomer = "Please select a customer."
	msgAmountTooSmall = "Please enter an amount greater than $0"
	msgSelectStatus   = "Please select an invoice status."
)

// parsedInput is typed, validated form data ready for persistence.
type parsedInput struct {
	customerID snowflake.ID
	cents      int64
	status     domain.Status
}

func checkCustomerID(raw string) []string {
	if msgs := validation.Required(msgSelectCustomer)(raw); len(msgs) > 0 {
		return msgs
	}
	if id, err := snowflake.ParseString(strings.TrimSpace(raw)); err != nil || id == 0 {
		return []string{msgSelectCustomer}
	}
	return nil
}

// checkAmount accepts positive amounts that land on a whole cent. Sub-cent
// input is rejected rather than rounded.
func checkAmount(raw string) []string {
	amount, err := currency.ParseAmount(raw)
	if err != nil || !amount.IsPositive() {
		return []string{msgAmountTooSmall}
	}
	if _, err := currency.ToCents(amount); err != nil {
		return []string{msgAmountTooSmall}
	}
	return nil
}

var inputValidators = []validation.FieldValidator{
	{Field: "customerId", Check: checkCustomerID},
	{Field: "amount", Check: checkAmount},
	{Field: "status", Check: validation.OneOf(
		[]string{string(domain.StatusPending), string(domain.StatusPaid)},
		msgSelectStatus,
	)},
}

// parseInput validates raw form input, collecting every failing field, and
// converts the amount to minor units on success.
func parseInput(input domain.Input, summary string) (parsedInput, *validation.Errors) {
	raw := map[string]string{
		"customerId": input.CustomerID,
		"amount":     input.Amount,
		"status":     input.Status,
	}
	if errs := validation.Validate(raw, inputValidators, summary); errs != nil {
		return parsedInput{}, errs
	}

	customerID, _ := snowflake.ParseString(strings.TrimSpace(input.CustomerID))
	amount, _ := currency.ParseAmount(input.Amount)
	cents, _ := currency.ToCents(amount)

	return parsedInput{
		customerID: customerID,
		cents:      cents,
		status:     domain.Status(strings.TrimSpace(input.Status)),
	}, nil
}
