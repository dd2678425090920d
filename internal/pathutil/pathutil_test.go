package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("failed to get home dir: %v", err)
	}

	baseDir := "/home/release/.sparkle-sign"

	tests := []struct {
		name    string
		path    string
		baseDir string
		want    string
		wantErr bool
	}{
		{
			name:    "resolves dot-relative path",
			path:    "./release.pem",
			baseDir: baseDir,
			want:    "/home/release/.sparkle-sign/release.pem",
		},
		{
			name:    "resolves parent-relative path",
			path:    "../keys/release.pem",
			baseDir: baseDir,
			want:    "/home/release/keys/release.pem",
		},
		{
			name:    "expands tilde path",
			path:    "~/keys/release.pem",
			baseDir: baseDir,
			want:    filepath.Join(home, "keys/release.pem"),
		},
		{
			name:    "returns absolute path unchanged",
			path:    "/etc/sparkle/release.pem",
			baseDir: baseDir,
			want:    "/etc/sparkle/release.pem",
		},
		{
			name:    "resolves bare filename from baseDir",
			path:    "release.pem",
			baseDir: baseDir,
			want:    "/home/release/.sparkle-sign/release.pem",
		},
		{
			name:    "tilde in middle of path is not expanded",
			path:    "/keys/~user/release.pem",
			baseDir: baseDir,
			want:    "/keys/~user/release.pem",
		},
		{
			name:    "empty path returns error",
			path:    "",
			baseDir: baseDir,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(tt.path, tt.baseDir)
			if (err != nil) != tt.wantErr {
				t.Errorf("ResolvePath() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ResolvePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("failed to get home dir: %v", err)
	}

	tests := []struct {
		path string
		want string
	}{
		{"~/release.pem", filepath.Join(home, "release.pem")},
		{"release.pem", "release.pem"},
		{"~release.pem", "~release.pem"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ExpandTilde(tt.path)
			if err != nil {
				t.Fatalf("ExpandTilde() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExpandTilde(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
