package main

import "testing"

func TestRedactDSN(t *testing.T) {
	cases := map[string]string{
		"":                                  "",
		"mongodb://admin:secret@db:27017":   "mongodb://admin:xxxxx@db:27017",
		"postgres://seed@localhost:5432/dx": "postgres://seed@localhost:5432/dx",
		"not a url":                         "***",
	}
	for input, want := range cases {
		if got := redactDSN(input); got != want {
			t.Fatalf("redactDSN(%q) = %q, want %q", input, got, want)
		}
	}
}
