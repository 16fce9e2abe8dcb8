// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (results/entries) and contracts (interfaces) only.
package domain
