package version

import "testing"

func TestVersionStrings(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })
	Version = "v1.2.3"

	if got := Short(); got != "v1.2.3" {
		t.Fatalf("Short() = %q", got)
	}
	if got := Long("throbber-demo"); got != "throbber-demo v1.2.3" {
		t.Fatalf("Long() = %q", got)
	}
}
