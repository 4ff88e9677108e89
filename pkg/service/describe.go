package service

import (
	"context"
	"fmt"
	"strings"
)

// DescribeService generates a punchy video description locally. It replaces
// the hosted generation call of the original product; the output is
// deterministic for a given title and category.
type DescribeService struct {
	ctx context.Context
}

func NewDescribeService(ctx context.Context) *DescribeService {
	return &DescribeService{ctx: ctx}
}

var categoryHashtags = map[string][]string{
	"Music":    {"#NowPlaying", "#VibeCheck", "#OnRepeat"},
	"Gaming":   {"#GamerLife", "#Clutch", "#GG"},
	"Tech":     {"#TechTok", "#BuildInPublic", "#DevLife"},
	"Podcasts": {"#RealTalk", "#Unfiltered", "#DeepDive"},
	"Shorts":   {"#Shorts", "#Viral", "#Trending"},
	"Learning": {"#LearnWithMe", "#StudyTok", "#Knowledge"},
	"Live":     {"#LiveNow", "#DontMissIt", "#Streaming"},
}

var categoryEmoji = map[string]string{
	"Music":    "🎧",
	"Gaming":   "🎮",
	"Tech":     "💻",
	"Podcasts": "🎙️",
	"Shorts":   "⚡",
	"Learning": "📚",
	"Live":     "🔴",
}

// GenerateDescription returns a viral-style description for the title in the
// given category.
func (s *DescribeService) GenerateDescription(title, category string) string {
	emoji, ok := categoryEmoji[category]
	if !ok {
		emoji = "🔥"
	}
	tags, ok := categoryHashtags[category]
	if !ok {
		tags = []string{"#VideoMack", "#ForYou"}
	}

	return fmt.Sprintf(
		"%s %q is here and it hits different! Drop a like if this made your day and smash that subscribe for more %s content. %s %s",
		emoji, title, strings.ToLower(category), strings.Join(tags, " "), "🚀",
	)
}
