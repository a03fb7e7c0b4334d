// Package domain holds the records served by the roster API and the payloads
// used to create and change them. Validation rules live in the struct tags and
// are enforced by the action package.
package domain
