package platform

import "testing"

func TestBuildReelURL(t *testing.T) {
	if got := BuildReelURL("r42"); got != "https://reelbite.app/?reel=r42" {
		t.Errorf("BuildReelURL = %q", got)
	}
}

func TestParseReelURL(t *testing.T) {
	tests := []struct {
		raw    string
		wantID string
		wantOK bool
	}{
		{"https://reelbite.app/?reel=r42", "r42", true},
		{"https://staging.reelbite.app/?reel=abc&utm=x", "abc", true},
		{"  https://reelbite.app/?reel=r1  ", "r1", true},
		{"https://reelbite.app/", "", false},
		{"https://reelbite.app/?reel=", "", false},
		{"::not a url::", "", false},
	}
	for _, tt := range tests {
		id, ok := ParseReelURL(tt.raw)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("ParseReelURL(%q) = %q, %v; want %q, %v", tt.raw, id, ok, tt.wantID, tt.wantOK)
		}
	}
}
