package personnel

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsValidExactEquality(t *testing.T) {
	store := New([]Credential{
		{UserName: "marcel", Password: "jobs"},
		{UserName: "petra", Password: "s3cret"},
	})
	if !store.IsValid("petra", "s3cret") {
		t.Fatalf("expected valid credentials to pass")
	}
	if store.IsValid("petra", "S3CRET") {
		t.Fatalf("password check must be case-sensitive")
	}
	if store.IsValid("Petra", "s3cret") {
		t.Fatalf("user name check must be case-sensitive")
	}
	if store.IsValid("petra", "") {
		t.Fatalf("empty password must not pass")
	}
}

func TestEmptyStoreAlwaysFails(t *testing.T) {
	store := New(nil)
	if store.IsValid("anyone", "anything") {
		t.Fatalf("empty store must reject every login")
	}
}

func TestLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personnel.json")
	body := `[{"user_name": "marcel", "password": "jobs"}]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	store, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.IsValid("marcel", "jobs") {
		t.Fatalf("loaded credential must validate")
	}
}

func TestLoadRejectsMissingUserName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personnel.json")
	if err := os.WriteFile(path, []byte(`[{"password": "jobs"}]`), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected load to fail on a record without user_name")
	}
}
