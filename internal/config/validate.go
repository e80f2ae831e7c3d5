// This file adds a lightweight linter/validator for Config values. It
// performs static checks over a resolved Config and returns a list of issues
// (errors and warnings) that callers can surface in a CLI or tests.
package config

import (
	"fmt"
	"strings"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a configuration warning that should be surfaced
	// to users but may not necessarily block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation/lint finding for a Config.
//
// Path is a dotted path into the config (e.g. "engine", "host").
// Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a single
// error in contexts that expect error.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// knownEngines mirrors the backends wired in internal/store/all. The list is
// duplicated here so config stays dependency-free and usable before any
// backend package has been imported.
var knownEngines = map[string]bool{
	"mysql":    true,
	"postgres": true,
	"sqlite":   true,
	"mssql":    true,
}

// Validate performs static validation / linting of a Config.
//
// It does not mutate the config. Instead it returns a slice of Issue values;
// callers decide whether to treat warnings as fatal. Validate expects a
// resolved config, i.e. FromEnv has already been applied.
func Validate(cfg Config) []Issue {
	var issues []Issue

	engine := strings.TrimSpace(cfg.Engine)
	switch {
	case engine == "":
		issues = append(issues, Issue{SeverityError, "engine", "engine must be set"})
	case !knownEngines[engine]:
		issues = append(issues, Issue{SeverityError, "engine",
			fmt.Sprintf("unknown engine %q (known: mysql, postgres, sqlite, mssql)", engine)})
	}

	if engine == "sqlite" {
		if strings.TrimSpace(cfg.Database) == "" {
			issues = append(issues, Issue{SeverityError, "database",
				"sqlite requires a database file path"})
		}
		return issues
	}

	if strings.TrimSpace(cfg.Host) == "" {
		issues = append(issues, Issue{SeverityError, "host",
			"host must be set (or provided via DB_HOST)"})
	}
	if cfg.Password == "" {
		issues = append(issues, Issue{SeverityWarning, "password",
			"password is empty; set it or export DB_PASSWORD"})
	}
	if strings.TrimSpace(cfg.Database) == "" {
		issues = append(issues, Issue{SeverityWarning, "database",
			"no database selected; only server-level statements will work"})
	}

	return issues
}

// HasErrors reports whether any issue in the slice has SeverityError.
func HasErrors(issues []Issue) bool {
	for _, iss := range issues {
		if iss.Severity == SeverityError {
			return true
		}
	}
	return false
}
