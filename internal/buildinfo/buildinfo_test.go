package buildinfo

import "testing"

func TestShortAndTitle(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	cases := []struct {
		version, commit string
		short, title    string
	}{
		{"dev", "unknown", "dev", "spincube"},
		{"dev", "abc1234", "abc1234", "spincube abc1234"},
		{"v1.2.0", "abc1234", "v1.2.0", "spincube v1.2.0"},
		{"", "", "dev", "spincube"},
	}
	for _, tc := range cases {
		Version, Commit = tc.version, tc.commit
		if got := Short(); got != tc.short {
			t.Fatalf("Short() with %q/%q = %q, want %q", tc.version, tc.commit, got, tc.short)
		}
		if got := Title("spincube"); got != tc.title {
			t.Fatalf("Title() with %q/%q = %q, want %q", tc.version, tc.commit, got, tc.title)
		}
	}
}
