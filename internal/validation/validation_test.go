package validation

import "testing"

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"api root", "https://api.github.com", true, ""},
		{"enterprise api", "https://ghe.example.com/api/v3", true, ""},
		{"local stub", "http://127.0.0.1:9999", true, ""},
		{"avatar with query", "https://avatars.githubusercontent.com/u/583231?v=4", true, ""},
		{"uppercase scheme", "HTTPS://api.github.com", true, ""},
		{"empty string", "", false, "URL is required"},
		{"javascript scheme", "javascript:alert(1)", false, "URL must use http:// or https:// scheme"},
		{"data scheme", "data:image/png;base64,AAAA", false, "URL must use http:// or https:// scheme"},
		{"file scheme", "file:///etc/passwd", false, "URL must use http:// or https:// scheme"},
		{"no scheme", "api.github.com", false, "URL must use http:// or https:// scheme"},
		{"relative url", "/users/octocat", false, "URL must use http:// or https:// scheme"},
		{"scheme only", "https://", false, "URL must have a valid host"},
		{"bad escape", "https://exa mple.com/%zz", false, "Invalid URL format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}
