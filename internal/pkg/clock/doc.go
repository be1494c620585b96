// Package clock hides time.Now behind Clocker so timestamps and elapsed-time
// logging can be pinned in tests.
package clock
