package storage

import "testing"

func TestBackend(t *testing.T) {
	cases := map[string]string{
		"mongodb://localhost:27017":           BackendMongo,
		"mongodb+srv://cluster.example.net":   BackendMongo,
		"postgres://user:pw@localhost/seed":   BackendPostgres,
		"postgresql://localhost:5432/seed":    BackendPostgres,
		"MONGODB://localhost:27017/?ssl=true": BackendMongo,
	}
	for input, want := range cases {
		got, err := Backend(input)
		if err != nil {
			t.Fatalf("backend %s: %v", input, err)
		}
		if got != want {
			t.Fatalf("backend %s: got %s want %s", input, got, want)
		}
	}
}

func TestBackendInvalid(t *testing.T) {
	for _, input := range []string{"", "localhost:27017", "mysql://localhost/seed"} {
		if _, err := Backend(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}
