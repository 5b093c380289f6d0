// Package services provides the pure decision logic of the fulfillment workflow.
// Nothing here touches storage: callers gather the facts inside their transaction
// and act on the returned plan.
//
// The package includes:
//   - TransitionPlanner: decides which side effects a status change triggers
//   - ResolveInvoicePrefix: expands the {year}, {month} and {day} tokens of the invoice prefix template
package services
