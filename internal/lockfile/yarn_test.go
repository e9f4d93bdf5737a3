package lockfile

import "testing"

func TestParseYarn_Classic(t *testing.T) {
	data := []byte(`# THIS IS AN AUTOGENERATED FILE. DO NOT EDIT THIS FILE DIRECTLY.
# yarn lockfile v1


"chalk@^5.6.1":
  version "5.6.1"
  resolved "https://registry.yarnpkg.com/chalk/-/chalk-5.6.1.tgz"
  integrity sha512-abc

debug@^4.3.0, debug@^4.4.0:
  version "4.4.2"
  resolved "https://registry.yarnpkg.com/debug/-/debug-4.4.2.tgz"
  dependencies:
    ms "^2.1.3"
`)
	recs, warns, err := ParseYarn("yarn.lock", data)
	if err != nil {
		t.Fatalf("ParseYarn: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records (one per descriptor), got %d", len(recs))
	}
	if recs[0].Name != "chalk" || recs[0].Version != "5.6.1" {
		t.Fatalf("unexpected record: %+v", recs[0])
	}
	if recs[1].Name != "debug" || recs[1].Version != "4.4.2" {
		t.Fatalf("unexpected record: %+v", recs[1])
	}
	if recs[2].Name != "debug" || recs[2].Version != "4.4.2" {
		t.Fatalf("unexpected record: %+v", recs[2])
	}
	if recs[0].PackageKey != "chalk@^5.6.1" {
		t.Fatalf("descriptor not preserved as key: %q", recs[0].PackageKey)
	}
}

func TestParseYarn_ScopedAndBerry(t *testing.T) {
	data := []byte(`"@babel/core@npm:^7.0.0, @babel/core@npm:^7.20.0":
  version: 7.26.0
  resolution: "@babel/core@npm:7.26.0"

"strip-ansi@npm:^7.1.0":
  version: 7.1.1
`)
	recs, _, err := ParseYarn("yarn.lock", data)
	if err != nil {
		t.Fatalf("ParseYarn: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[0].Name != "@babel/core" || recs[0].Version != "7.26.0" {
		t.Fatalf("scoped descriptor mishandled: %+v", recs[0])
	}
	if recs[2].Name != "strip-ansi" || recs[2].Version != "7.1.1" {
		t.Fatalf("berry descriptor mishandled: %+v", recs[2])
	}
}

func TestParseYarn_BlockWithoutVersion(t *testing.T) {
	data := []byte(`broken@^1.0.0:
  resolved "https://example.com/broken-1.0.0.tgz"

ok@^2.0.0:
  version "2.0.0"
`)
	recs, warns, err := ParseYarn("yarn.lock", data)
	if err != nil {
		t.Fatalf("ParseYarn: %v", err)
	}
	if len(recs) != 1 || recs[0].Name != "ok" {
		t.Fatalf("expected only the valid block, got %+v", recs)
	}
	if len(warns) != 1 {
		t.Fatalf("expected one warning for the version-less block, got %v", warns)
	}
}

func TestParseYarn_VersionFieldOfDependencyNotConfused(t *testing.T) {
	// the version line must come from the block body, not from a nested
	// dependencies list
	data := []byte(`a@^1.0.0:
  version "1.2.3"
  dependencies:
    b "^9.9.9"
`)
	recs, _, err := ParseYarn("yarn.lock", data)
	if err != nil {
		t.Fatalf("ParseYarn: %v", err)
	}
	if len(recs) != 1 || recs[0].Version != "1.2.3" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestDescriptorName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"chalk@^5.6.1", "chalk"},
		{"@scope/name@^1.0.0", "@scope/name"},
		{"@scope/name@npm:1.2.3", "@scope/name"},
		{"left-pad@patch:left-pad@1.0.0#hash", "left-pad"},
		{"noversion", ""},
		{"@", ""},
		{"@scope/only", ""},
		{"__metadata", ""},
	}
	for _, c := range cases {
		if got := descriptorName(c.in); got != c.want {
			t.Errorf("descriptorName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
