// Package utils provides small helpers shared by the commands:
// name validation, reading piped input and opening URLs.
package utils
