package service

import (
	"context"
	"strings"
	"testing"
)

func TestGenerateDescription(t *testing.T) {
	s := NewDescribeService(context.Background())

	t.Run("KnownCategory", func(t *testing.T) {
		desc := s.GenerateDescription("Neon Nights", "Music")
		if !strings.Contains(desc, "Neon Nights") {
			t.Errorf("description does not mention the title: %q", desc)
		}
		if !strings.Contains(desc, "#") {
			t.Errorf("description has no hashtags: %q", desc)
		}
	})

	t.Run("UnknownCategoryFallsBack", func(t *testing.T) {
		desc := s.GenerateDescription("Mystery", "Cooking")
		if !strings.Contains(desc, "#VideoMack") {
			t.Errorf("fallback hashtags missing: %q", desc)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := s.GenerateDescription("Same", "Tech")
		b := s.GenerateDescription("Same", "Tech")
		if a != b {
			t.Errorf("same input produced different output:\n%q\n%q", a, b)
		}
	})
}
