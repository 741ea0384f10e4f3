// Package fetch performs the application's single outbound request and
// publishes its outcome.
//
// A Fetcher issues exactly one GET against the configured endpoint. Transport
// failures, non-2xx statuses and bodies that do not decode into a list of
// records all collapse into one error wrapping ErrFetchFailed; there are no
// retries and no timeout. The outcome is written once into a Cell, which
// starts Pending and settles to Success or Failure for the rest of the
// session. Readers only ever see immutable Result snapshots.
package fetch
