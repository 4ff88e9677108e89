package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/videomack/videomack/config"
	"github.com/videomack/videomack/pkg/service"
	"github.com/videomack/videomack/pkg/storage"
	"github.com/videomack/videomack/pkg/store"
)

func Init() *store.Store {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}
	config.Init()

	kv, err := storage.Open(config.ConfigInfo.Storage.Path)
	if err != nil {
		logrus.Fatalf("open client storage failed: %v", err)
	}

	st, err := store.Init(kv)
	if err != nil {
		// Matches the UI contract: nothing runs until the store is ready.
		logrus.Fatalf("store initialization failed: %v", err)
	}
	return st
}

func main() {
	st := Init()
	ctx := context.Background()

	if config.ConfigInfo.Seed.Enabled {
		if err := st.Seed(ctx); err != nil {
			logrus.Fatalf("seed failed: %v", err)
		}
	}

	authService := service.NewAuthService(ctx, st)
	uploadService := service.NewUploadService(ctx, st)
	describeService := service.NewDescribeService(ctx)

	user, err := st.LoadSession(ctx)
	if err != nil {
		logrus.Fatalf("load session failed: %v", err)
	}
	if user == nil {
		user, err = authService.Login("john@videomack.app", "hunter2")
		if err != nil {
			logrus.Fatalf("login failed: %v", err)
		}
	}
	logrus.Infof("Welcome back, %s!", user.FullName)

	feed, err := st.GetVideos(ctx, "")
	if err != nil {
		logrus.Fatalf("load feed failed: %v", err)
	}
	logrus.Infof("feed has %d videos", len(feed))

	form := service.UploadForm{
		Title:    "My First Broadcast",
		Category: "Music",
	}
	form.Description = describeService.GenerateDescription(form.Title, form.Category)

	if err := uploadService.Upload(form, func(percent int) {
		if percent%25 == 0 {
			logrus.Infof("uploading... %d%%", percent)
		}
	}); err != nil {
		logrus.Fatalf("upload failed: %v", err)
	}
	video, err := uploadService.Publish(user, form)
	if err != nil {
		logrus.Fatalf("publish failed: %v", err)
	}
	logrus.Infof("Video published! %s", video.Id)

	if err := st.IncrementVideoViews(ctx, video.Id); err != nil {
		logrus.Errorf("view increment failed: %v", err)
	}

	if err := st.ToggleLike(ctx, user.Id, video.Id); err != nil {
		logrus.Errorf("like failed: %v", err)
	}

	if err := st.SendMessage(ctx, user.Id, "system", "hello from the demo"); err != nil {
		logrus.Errorf("send message failed: %v", err)
	}
	peers, err := st.GetChatPeers(ctx, user.Id)
	if err != nil {
		logrus.Errorf("chat peers failed: %v", err)
	}
	for _, peer := range peers {
		fmt.Printf("chat with: %s\n", peer.Username)
	}

	mine, err := st.GetVideos(ctx, user.Id)
	if err != nil {
		logrus.Fatalf("load own videos failed: %v", err)
	}
	for _, v := range mine {
		fmt.Printf("%s  %s  views=%d likes=%d\n", v.Id, v.Title, v.Views, v.LikesCount)
	}
}
