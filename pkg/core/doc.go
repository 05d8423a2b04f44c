// Package core defines the shared language of the bashate system.
//
// This package contains the severity scale and the rule metadata DTO
// that every other layer (scanner consumers, rule engine, reporter, CLI)
// agrees on.
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
