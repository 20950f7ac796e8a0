package launch

import (
	"context"
	"testing"
)

func TestNewProbe_ReturnsProbeForThisPlatform(t *testing.T) {
	if NewProbe() == nil {
		t.Fatal("NewProbe() returned nil")
	}
}

func TestStaticProbe_ReportsNotInstalled(t *testing.T) {
	if (staticProbe{}).Installed(context.Background()) {
		t.Error("staticProbe reports installed, want not installed")
	}
}
