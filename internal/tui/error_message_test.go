package tui

import (
	"strings"
	"testing"
	"time"
)

func TestRenderErrorMessage(t *testing.T) {
	t.Parallel()

	out := RenderErrorMessage("Switch failed", "chain 999 is not supported", 0)
	if !strings.Contains(out, "Switch failed") || !strings.Contains(out, "chain 999 is not supported") {
		t.Fatalf("error message missing content:\n%s", out)
	}
	if RenderErrorMessage("x", "", 40) != "" {
		t.Fatal("empty message should render nothing")
	}
	if out := RenderErrorMessage("", "boom", 0); !strings.Contains(out, "Error") {
		t.Fatalf("default title missing:\n%s", out)
	}
}

func TestToastActive(t *testing.T) {
	t.Parallel()

	now := time.Now()
	if !(Toast{Text: "hi", At: now}).Active(now.Add(time.Second)) {
		t.Fatal("fresh toast should be active")
	}
	if (Toast{Text: "hi", At: now}).Active(now.Add(toastTTL)) {
		t.Fatal("toast should expire after its TTL")
	}
	if (Toast{At: now}).Active(now) {
		t.Fatal("empty toast should not be active")
	}
}
