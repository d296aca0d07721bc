// Package catalog holds the reference data the kitchen works from:
// raw Products grouped into FoodGroups, PreparationTypes, PreparedItems
// (recipes derived from a product) and Menus composed of prepared items.
//
// Catalog entities carry no lifecycle state. They are created and updated
// through aggregated validation — every field violation of a request is
// collected into a single errs.ValidationError — and are referenced by id
// from the production and customer order engines, never owned by them.
package catalog
