package service

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/videomack/videomack/config"
	"github.com/videomack/videomack/pkg/constants"
	"github.com/videomack/videomack/pkg/errno"
	"github.com/videomack/videomack/pkg/model"
	"github.com/videomack/videomack/pkg/store"
	"github.com/videomack/videomack/pkg/utils"
)

// UploadForm carries what the upload screen collects before publishing.
type UploadForm struct {
	Title       string
	Category    string
	Description string
	Thumbnail   string
	Filter      string
}

// UploadService fakes the upload pipeline: a tick-driven progress loop with
// no bytes behind it, then a publish into the store.
type UploadService struct {
	ctx   context.Context
	store *store.Store
}

func NewUploadService(ctx context.Context, st *store.Store) *UploadService {
	return &UploadService{ctx: ctx, store: st}
}

// Upload walks progress from 0 to 100, invoking onProgress on each tick.
func (s *UploadService) Upload(form UploadForm, onProgress func(percent int)) error {
	if form.Title == "" {
		return errno.ParamErr.WithMessage("Title is required")
	}

	tick := time.Duration(config.ConfigInfo.Upload.TickMs) * time.Millisecond
	step := config.ConfigInfo.Upload.StepSize
	if step <= 0 {
		step = 5
	}

	for progress := step; progress <= 100; progress += step {
		time.Sleep(tick)
		if onProgress != nil {
			onProgress(progress)
		}
	}
	if onProgress != nil {
		onProgress(100)
	}
	return nil
}

// Publish builds the video record for the upload and saves it. Fresh id,
// zeroed counters, "Just now" timestamp text.
func (s *UploadService) Publish(user *model.User, form UploadForm) (*model.Video, error) {
	thumbnail := form.Thumbnail
	if thumbnail == "" {
		thumbnail = "https://picsum.photos/seed/" + utils.GenerateId() + "/400/225"
	}

	video := &model.Video{
		Id:          "v-" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Title:       form.Title,
		Artist:      user.FullName,
		UserId:      user.Id,
		Views:       0,
		Duration:    constants.DefaultVideoDuration,
		Thumbnail:   thumbnail,
		Category:    form.Category,
		UploadedAt:  constants.UploadedJustNow,
		Liked:       false,
		Description: form.Description,
	}
	if err := s.store.SaveVideo(s.ctx, video); err != nil {
		return nil, err
	}
	logrus.Infof("video %s published by %s", video.Id, user.Username)
	return video, nil
}
