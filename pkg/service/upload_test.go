package service

import (
	"context"
	"strings"
	"testing"

	"github.com/videomack/videomack/pkg/constants"
	"github.com/videomack/videomack/pkg/model"
)

func TestUploadProgress(t *testing.T) {
	testConfig()
	s := NewUploadService(context.Background(), newTestStore(t))

	if err := s.Upload(UploadForm{}, nil); err == nil {
		t.Error("expected error for empty title")
	}

	var last int
	calls := 0
	err := s.Upload(UploadForm{Title: "ok"}, func(percent int) {
		if percent < last {
			t.Errorf("progress went backwards: %d after %d", percent, last)
		}
		last = percent
		calls++
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if last != 100 {
		t.Errorf("final progress = %d, want 100", last)
	}
	if calls == 0 {
		t.Error("progress callback never invoked")
	}
}

func TestPublish(t *testing.T) {
	testConfig()
	ctx := context.Background()
	st := newTestStore(t)
	s := NewUploadService(ctx, st)

	user := &model.User{Id: "u1", FullName: "John Doe", Username: "johndoe"}
	form := UploadForm{Title: "My Set", Category: "Music", Description: "desc"}

	video, err := s.Publish(user, form)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !strings.HasPrefix(video.Id, "v-") {
		t.Errorf("video id = %q, want v- prefix", video.Id)
	}
	if video.Artist != "John Doe" || video.UserId != "u1" {
		t.Errorf("ownership fields wrong: artist=%q userId=%q", video.Artist, video.UserId)
	}
	if video.Views != 0 || video.LikesCount != 0 || video.Liked {
		t.Errorf("fresh video must start with zeroed engagement: %+v", video)
	}
	if video.UploadedAt != constants.UploadedJustNow {
		t.Errorf("uploadedAt = %q", video.UploadedAt)
	}

	saved, err := st.GetVideos(ctx, "u1")
	if err != nil {
		t.Fatalf("GetVideos: %v", err)
	}
	if len(saved) != 1 || saved[0].Id != video.Id {
		t.Errorf("published video not in store: %+v", saved)
	}
}
