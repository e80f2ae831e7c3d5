package config

import "testing"

func TestFromEnvFallback(t *testing.T) {
	t.Setenv(EnvHost, "db.example")
	t.Setenv(EnvUser, "svc")
	t.Setenv(EnvPassword, "secret")

	got := FromEnv(Config{Engine: "mysql", Database: "logs"})
	if got.Host != "db.example" || got.User != "svc" || got.Password != "secret" {
		t.Fatalf("FromEnv = %+v; want env-resolved credentials", got)
	}
}

func TestFromEnvExplicitWins(t *testing.T) {
	t.Setenv(EnvHost, "db.example")
	t.Setenv(EnvUser, "svc")
	t.Setenv(EnvPassword, "secret")

	in := Config{Host: "other", User: "me", Password: "mine"}
	got := FromEnv(in)
	if got.Host != "other" || got.User != "me" || got.Password != "mine" {
		t.Fatalf("FromEnv = %+v; explicit fields must win", got)
	}
}

func TestFromEnvDefaultUser(t *testing.T) {
	t.Setenv(EnvUser, "")
	got := FromEnv(Config{})
	if got.User != DefaultUser {
		t.Fatalf("User = %q; want %q", got.User, DefaultUser)
	}
}
