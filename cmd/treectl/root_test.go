package main

import (
	"bytes"
	"testing"
)

func execRoot(args ...string) (string, error) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestCreateInsertSearchRoundTrip(t *testing.T) {
	if _, err := execRoot("create", "bt", "t1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := execRoot("insert", "t1", "k", "v"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	c, ok := db.Container("t1")
	if !ok {
		t.Fatalf("expected container t1 to exist")
	}
	if v := c.Search("k"); v == nil || *v != "v" {
		t.Fatalf("expected search to find inserted value, got %v", v)
	}
}

func TestClearEmptiesContainer(t *testing.T) {
	if _, err := execRoot("create", "nst", "t3"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := execRoot("insert", "t3", "k", "v"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := execRoot("clear", "t3"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	c, ok := db.Container("t3")
	if !ok {
		t.Fatalf("expected container t3 to still exist after clear")
	}
	if v := c.Search("k"); v != nil {
		t.Fatalf("expected cleared container to have no keys, found %v", v)
	}
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	if _, err := execRoot("create", "cbst", "t2"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := execRoot("create", "cbst", "t2"); err == nil {
		t.Fatalf("expected duplicate create to error")
	}
}
