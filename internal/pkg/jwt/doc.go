// Package jwt issues and verifies the HS512 bearer tokens that callers of the
// validation API present, and carries verified claims through the context.
package jwt
