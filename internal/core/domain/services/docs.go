// Package services contains stateless domain services implementing
// business logic that spans multiple aggregates, such as planning the
// stock consumption caused by processing a production order.
package services
