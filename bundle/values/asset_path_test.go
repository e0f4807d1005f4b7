package values

import "testing"

func TestNewAssetPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"Simple", "icon.png", false},
		{"Nested", "en.lproj/pass.strings", false},
		{"DeeplyNested", "images/logo@2x.png", false},
		{"Empty", "", true},
		{"Whitespace", "   ", true},
		{"Absolute", "/etc/passwd", true},
		{"Backslash", `images\icon.png`, true},
		{"ParentTraversal", "../secrets", true},
		{"EmbeddedTraversal", "a/../b", true},
		{"CurrentDirSegment", "./icon.png", true},
		{"EmptySegment", "a//b", true},
		{"TrailingSlash", "images/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewAssetPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewAssetPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got.String() != tt.path {
				t.Errorf("String() = %q, want %q", got.String(), tt.path)
			}
		})
	}
}

func TestAssetPathOrdering(t *testing.T) {
	a := MustNewAssetPath("icon.png")
	b := MustNewAssetPath("pass.json")

	if !a.Less(b) {
		t.Errorf("%q should order before %q", a, b)
	}
	if b.Less(a) {
		t.Errorf("%q should not order before %q", b, a)
	}
	if !a.Equals(MustNewAssetPath("icon.png")) {
		t.Error("equal paths should compare equal")
	}
}
