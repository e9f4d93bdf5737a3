package lockfile

import (
	"testing"

	"github.com/accrava/lockhound/internal/types"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		path string
		want types.Kind
	}{
		{"package-lock.json", types.KindNPM},
		{"a/b/package-lock.json", types.KindNPM},
		{"yarn.lock", types.KindYarn},
		{"sub/dir/yarn.lock", types.KindYarn},
		{"pnpm-lock.yaml", types.KindPNPM},
		{"deep/pnpm-lock.yaml", types.KindPNPM},
		{"package.json", types.KindUnknown},
		{"pnpm-lock.yml", types.KindUnknown},
		{"yarn.lock.bak", types.KindUnknown},
		{"some/package-lock.json/other", types.KindUnknown},
	}
	for _, c := range cases {
		if got := Detect(c.path); got != c.want {
			t.Errorf("Detect(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}
