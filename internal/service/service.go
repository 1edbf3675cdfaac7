// Package service contains the business logic.
//
// It sits between the handler layer and the data it serves. Handlers
// pass in validated values; services perform the business operations
// and return plain result values or explicit HTTP errors.
package service
