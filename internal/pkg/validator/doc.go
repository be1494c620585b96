// Package validator wraps go-playground/validator for the typed parts of
// userguard: HTTP envelopes, module dependencies and bulk row DTOs.
//
// Free-form user payloads are not validated here; they go through the rule
// engine in internal/uservalidation/rule, which borrows Var for the few
// format checks it shares with struct tags.
package validator
