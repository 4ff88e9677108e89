package store

import (
	"context"
	"testing"
)

func TestToggleSubscription(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.SaveUser(ctx, testUser("fan"))
	s.SaveUser(ctx, testUser("creator"))

	if err := s.ToggleSubscription(ctx, "fan", "creator"); err != nil {
		t.Fatalf("ToggleSubscription: %v", err)
	}
	subscribed, err := s.IsSubscribed(ctx, "fan", "creator")
	if err != nil {
		t.Fatalf("IsSubscribed: %v", err)
	}
	if !subscribed {
		t.Error("expected subscribed after first toggle")
	}

	if err := s.ToggleSubscription(ctx, "fan", "creator"); err != nil {
		t.Fatalf("ToggleSubscription again: %v", err)
	}
	subscribed, _ = s.IsSubscribed(ctx, "fan", "creator")
	if subscribed {
		t.Error("expected unsubscribed after second toggle")
	}
}

func TestSubscriptionDoesNotTouchCounters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	creator := testUser("creator")
	creator.SubscriberCount = 7
	s.SaveUser(ctx, creator)
	s.SaveUser(ctx, testUser("fan"))

	if err := s.ToggleSubscription(ctx, "fan", "creator"); err != nil {
		t.Fatalf("ToggleSubscription: %v", err)
	}

	got, _ := s.GetUser(ctx, "creator")
	if got.SubscriberCount != 7 {
		t.Errorf("subscriber_count changed by toggle: %d, want 7", got.SubscriberCount)
	}
}

func TestFollowersAndFollowing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.SaveUser(ctx, testUser("a"))
	s.SaveUser(ctx, testUser("b"))
	s.SaveUser(ctx, testUser("c"))

	// a and b both follow c; a follows b.
	s.ToggleSubscription(ctx, "a", "c")
	s.ToggleSubscription(ctx, "b", "c")
	s.ToggleSubscription(ctx, "a", "b")

	followers, err := s.GetFollowers(ctx, "c")
	if err != nil {
		t.Fatalf("GetFollowers: %v", err)
	}
	if len(followers) != 2 {
		t.Fatalf("c has %d followers, want 2", len(followers))
	}
	seen := map[string]bool{}
	for _, f := range followers {
		seen[f.Id] = true
		if f.FullName == "" {
			t.Errorf("follower %s not resolved to full record", f.Id)
		}
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("followers = %v, want a and b", seen)
	}

	following, err := s.GetFollowing(ctx, "a")
	if err != nil {
		t.Fatalf("GetFollowing: %v", err)
	}
	if len(following) != 2 {
		t.Fatalf("a follows %d users, want 2", len(following))
	}
}

func TestToggleWatchLater(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	v := testVideo("v9", "creator")

	// Insert path must upsert the video row even if it was never saved.
	if err := s.ToggleWatchLater(ctx, "u1", v); err != nil {
		t.Fatalf("ToggleWatchLater: %v", err)
	}
	all, _ := s.GetVideos(ctx, "")
	if len(all) != 1 || all[0].Id != "v9" {
		t.Errorf("watch-later insert did not upsert the video: %+v", all)
	}
	list, err := s.GetWatchLaterVideos(ctx, "u1")
	if err != nil {
		t.Fatalf("GetWatchLaterVideos: %v", err)
	}
	if len(list) != 1 || list[0].Id != "v9" {
		t.Errorf("watch later list = %+v, want v9", list)
	}

	if err := s.ToggleWatchLater(ctx, "u1", v); err != nil {
		t.Fatalf("ToggleWatchLater again: %v", err)
	}
	list, _ = s.GetWatchLaterVideos(ctx, "u1")
	if len(list) != 0 {
		t.Errorf("expected empty watch later after second toggle, got %+v", list)
	}
	// The removal only drops the join row, not the video itself.
	all, _ = s.GetVideos(ctx, "")
	if len(all) != 1 {
		t.Errorf("video row should survive watch-later removal, got %d", len(all))
	}
}
