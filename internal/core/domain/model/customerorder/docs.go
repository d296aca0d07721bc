// Package customerorder contains the customer order aggregate: the
// order a client places, its item lines, and the five-state lifecycle
// that carries it from registration through production and delivery to
// completion. Transition timestamps captured here feed the lead time
// metrics served by the query side.
package customerorder
