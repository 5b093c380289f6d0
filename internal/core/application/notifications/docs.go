// Package notifications renders and sends the order mails.
//
// A mail that cannot be delivered never fails the operation that triggered it:
// the Service stores it in the outbox and the retry job sends it later.
package notifications
