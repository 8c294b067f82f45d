// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: User and Joke, plus the JokeListItem projection
//   - Session values: the claims carried by a signed session token
//   - Domain Errors: business rule violations and field-level validation errors
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Input validation lives next to the entity it protects
//
// Example:
//
//	if errs := domain.ValidateJoke(name, content); errs != nil {
//	    return nil, errs
//	}
package domain
