package config

import "testing"

func findIssue(issues []Issue, path string) (Issue, bool) {
	for _, iss := range issues {
		if iss.Path == path {
			return iss, true
		}
	}
	return Issue{}, false
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name      string
		cfg       Config
		errPaths  []string
		warnPaths []string
	}{
		{
			"valid mysql",
			Config{Engine: "mysql", Host: "localhost", User: "root", Password: "x", Database: "logs"},
			nil, nil,
		},
		{
			"missing engine",
			Config{Host: "localhost"},
			[]string{"engine"}, nil,
		},
		{
			"unknown engine",
			Config{Engine: "oracle", Host: "localhost"},
			[]string{"engine"}, nil,
		},
		{
			"missing host",
			Config{Engine: "mysql", Password: "x", Database: "logs"},
			[]string{"host"}, nil,
		},
		{
			"warnings only",
			Config{Engine: "mysql", Host: "localhost"},
			nil, []string{"password", "database"},
		},
		{
			"sqlite needs a path",
			Config{Engine: "sqlite"},
			[]string{"database"}, nil,
		},
		{
			"sqlite ignores host",
			Config{Engine: "sqlite", Database: "x.db"},
			nil, nil,
		},
	}
	for _, tc := range cases {
		issues := Validate(tc.cfg)
		for _, p := range tc.errPaths {
			iss, ok := findIssue(issues, p)
			if !ok || iss.Severity != SeverityError {
				t.Fatalf("%s: want error at %q; got %v", tc.name, p, issues)
			}
		}
		for _, p := range tc.warnPaths {
			iss, ok := findIssue(issues, p)
			if !ok || iss.Severity != SeverityWarning {
				t.Fatalf("%s: want warning at %q; got %v", tc.name, p, issues)
			}
		}
		if len(tc.errPaths) == 0 && HasErrors(issues) {
			t.Fatalf("%s: unexpected errors: %v", tc.name, issues)
		}
	}
}

func TestIssueError(t *testing.T) {
	iss := Issue{SeverityError, "host", "host must be set"}
	want := "error at host: host must be set"
	if iss.Error() != want {
		t.Fatalf("Error() = %q; want %q", iss.Error(), want)
	}
}
