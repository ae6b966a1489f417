package errors

import (
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"generic", ErrNotFound, true},
		{"page", ErrPageNotFound, true},
		{"wrapped asset", fmt.Errorf("styles.css: %w", ErrAssetNotFound), true},
		{"download", ErrDownloadUnavailable, true},
		{"invalid content", ErrInvalidContent, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	if !IsInvalid(fmt.Errorf("home.hero: %w", ErrInvalidContent)) {
		t.Error("wrapped ErrInvalidContent not reported as invalid")
	}
	if IsInvalid(ErrPublishFailed) {
		t.Error("ErrPublishFailed reported as invalid")
	}
}
