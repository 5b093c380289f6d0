// Package notification provides mail kinds and the outbox entry that keeps a failed
// mail for later retries. Delivery state never affects the order it belongs to.
package notification
