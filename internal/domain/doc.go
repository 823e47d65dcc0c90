// Package domain contains shared domain types used across entity sub-packages.
// The completion-rate calculation lives in domain/rate and the task entity in
// domain/task. This root package holds sentinel errors and validation types
// shared by every layer above it.
package domain
