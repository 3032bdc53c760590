// Package status provides a status/result aggregation value for business
// logic.
//
// A unit of logic creates a status container, accumulates validation and
// runtime errors while it runs, and returns the container to its caller. The
// caller either inspects it or combines it into its own container, so errors
// reported deep in a call chain surface at the top with their provenance
// intact. A result-carrying variant additionally flows a typed value
// alongside validity.
//
// # Features
//
//   - Ordered, append-only error accumulation with monotonic validity
//   - Header scoping: errors are labeled with their origin, and labels chain
//     through combination ("Order>Item: quantity must be positive")
//   - Status combination that preserves error order, transfers messages, and
//     adopts status codes with well-defined precedence
//   - A fallible-operation wrapper that narrows a chosen family of errors
//     into status errors and lets everything else propagate
//   - A generic result-carrying container whose value is visible only while
//     the status is valid
//   - JSON serialization for API responses
//   - Zero runtime dependencies (Layer 0 library)
//
// # Quick Start
//
// Accumulating errors:
//
//	s := status.NewWithHeader("Order")
//	if input.Quantity <= 0 {
//	    s.AddError("quantity must be positive", "Quantity")
//	}
//	if input.Currency == "" {
//	    s.AddErrorWithCode(http.StatusBadRequest, "currency is required", "Currency")
//	}
//	return s
//
// Combining child statuses:
//
//	s := status.NewWithHeader("Checkout")
//	s.CombineStatuses(validateOrder(order))
//	s.CombineStatuses(validateCustomer(customer))
//	if s.HasErrors() {
//	    log.Print(s.Message()) // "Failed with 2 errors"
//	}
//
// Carrying a result:
//
//	s := status.NewResult[*Invoice]()
//	invoice, err := build(order)
//	if err != nil {
//	    s.AddErrorWithCause(err, "could not build invoice")
//	    return s
//	}
//	return s.SetResult(invoice)
//
// Wrapping a fallible call:
//
//	s.RunAndCatch(func() error { return repo.Save(order) },
//	    status.WithErrorCode(http.StatusConflict),
//	    status.WithSuccessCode(http.StatusCreated),
//	    status.WithCatch(status.CatchIs(repo.ErrDuplicate)))
//
// # Combination Rules
//
// CombineStatuses appends the child's errors to the parent, in the child's
// order, after prefixing each error's header with the parent's header
// (separator ">"). Nested combination therefore yields nested chains:
// grandparent>parent>child. A child's custom message transfers to the parent
// only while the parent is still valid; once a parent has errors, its
// computed "Failed with N errors" message is authoritative. The parent
// adopts the child's container-level status code only if it has none of its
// own (first code wins).
//
// # Status Code Precedence
//
// Two codes exist with deliberately different rules. The container-level
// code follows first-write-wins across combines. GetLastStatusCode instead
// reads the code attached to the most recently appended error (latest wins,
// with no fallback to earlier errors) and only falls back to the container
// code when there are no errors at all.
//
// # Concurrency
//
// A container is a plain value with no internal locking. It is not safe for
// concurrent mutation: confine construction and accumulation to a single
// goroutine and combine the returned statuses afterwards.
//
// # Best Practices
//
//   - Return the Status interface (or StatusWithResult) from business logic
//     so callers depend on the contract, not the concrete handler
//   - Give each layer its own header; let combination build the chain
//   - Use WithCatch to restrict RunAndCatch to failures you can genuinely
//     report as validation problems; let defects propagate
//   - Use ToJSON for API responses; debug data never leaves the process
package status
