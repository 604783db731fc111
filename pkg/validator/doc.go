// Package validator provides small declarative validation rules.
//
// A Rule pairs a Check func with the error reported when it fails. Apply runs
// a list of rules and aggregates failures into ValidationErrors, which
// implements error and can be grouped by field with Map.
//
//	err := validator.Apply(
//	    validator.RequiredString("country", req.Country),
//	    validator.RequiredString("language", req.Language),
//	)
//	if validator.IsValidationError(err) {
//	    // respond 400 with validator.ExtractValidationErrors(err).Map()
//	}
package validator
