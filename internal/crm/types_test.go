package crm

import "testing"

func TestParseStage(t *testing.T) {
	for _, s := range Stages() {
		got, err := ParseStage(" " + string(s) + " ")
		if err != nil || got != s {
			t.Fatalf("ParseStage(%q) = %q, %v", s, got, err)
		}
	}
	if _, err := ParseStage("Won"); err == nil {
		t.Fatalf("ParseStage(Won) returned nil error")
	}
}

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Daniel King":        "DK",
		"maya alvarez jones": "MA",
		"  Priya  ":          "P",
		"":                   "",
	}
	for name, want := range cases {
		if got := (ActivityEntry{Actor: name}).Initials(); got != want {
			t.Fatalf("Initials(%q) = %q, want %q", name, got, want)
		}
	}
}
