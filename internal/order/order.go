// internal/order/order.go
//
// Quantity negotiation for a confirmed search. Pure decisions only: the
// shell owns the prompts, this package owns what each answer means, which
// keeps the whole negotiation testable without a terminal.

package order

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidChoice is the sentinel for operator input that should have been an
// integer but was not. Downstream logic rejects it like any out-of-range
// value; it is never an error.
const InvalidChoice = -1

// ParseChoice parses operator input where an integer is expected,
// substituting InvalidChoice for anything malformed.
func ParseChoice(line string) int {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return InvalidChoice
	}
	return n
}

// Outcome classifies where a negotiation step landed.
type Outcome int

const (
	// None means no order is placed.
	None Outcome = iota
	// Confirmed means an order of Decision.Quantity is placed.
	Confirmed
	// ClampOffer means the request exceeds availability; the operator gets
	// exactly one yes/no offer to order Decision.Quantity instead.
	ClampOffer
)

// Decision is the result of a negotiation step.
type Decision struct {
	Outcome  Outcome
	Quantity int
}

// Negotiate decides what a requested amount means against the total
// availability. Amounts below one (including the InvalidChoice sentinel)
// yield no order. Requests above availability yield a single clamp offer
// for the full available amount, never for the requested one.
func Negotiate(requested, available int) Decision {
	if requested < 1 {
		return Decision{Outcome: None}
	}
	if requested > available {
		return Decision{Outcome: ClampOffer, Quantity: available}
	}
	return Decision{Outcome: Confirmed, Quantity: requested}
}

// ResolveClamp turns the operator's answer to a clamp offer into a final
// decision: accepted orders the full available amount, anything else
// orders nothing.
func ResolveClamp(accepted bool, available int) Decision {
	if accepted {
		return Decision{Outcome: Confirmed, Quantity: available}
	}
	return Decision{Outcome: None}
}

// Pluralize appends a trailing "s" to the item name for any quantity other
// than one.
func Pluralize(name string, quantity int) string {
	if quantity == 1 {
		return name
	}
	return name + "s"
}

// ConfirmationMessage is the terminal acknowledgment of a confirmed order.
// No order is written anywhere; this message is the entire outcome.
func ConfirmationMessage(quantity int, itemName string) string {
	return fmt.Sprintf("Your order of %d %s is confirmed.", quantity, Pluralize(itemName, quantity))
}

// IsYes reports whether a typed answer counts as a yes. Anything not
// starting with "y" is a no.
func IsYes(answer string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}
