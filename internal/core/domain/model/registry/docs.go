// Package registry holds the people and places the restaurant deals
// with: Clients, DeliveryPersons, Collaborators and Neighborhoods.
// These are CRUD-only master data with no derived state; the customer
// order engine borrows them by id at transaction time.
package registry
