package store

import (
	"context"

	"github.com/videomack/videomack/pkg/constants"
	"github.com/videomack/videomack/pkg/model"
)

// SampleVideos is the platform-seeded demo content, owned by the system
// sentinel rather than a real user.
var SampleVideos = []model.Video{
	{
		Id:           "1",
		Title:        "Neon Nights: Cyberpunk Beats",
		Artist:       "Digital Echo",
		UserId:       constants.SystemUserId,
		Views:        1200000,
		Duration:     "10:45",
		Thumbnail:    "https://picsum.photos/seed/v1/400/225",
		Category:     "Music",
		Liked:        false,
		UploadedAt:   "2 days ago",
		Description:  "Immerse yourself in the glowing atmosphere of the future with this high-energy cyberpunk mix.",
		LikesCount:   12500,
		RepostsCount: 450,
		SharesCount:  1200,
	},
	{
		Id:           "2",
		Title:        "Building a React App with Gemini AI",
		Artist:       "Code Master",
		UserId:       constants.SystemUserId,
		Views:        450000,
		Duration:     "22:15",
		Thumbnail:    "https://picsum.photos/seed/v2/400/225",
		Category:     "Tech",
		Liked:        true,
		UploadedAt:   "5 hours ago",
		Description:  "Learn how to integrate the latest Google Gemini API into your React projects.",
		LikesCount:   32000,
		RepostsCount: 890,
		SharesCount:  2500,
	},
}

// BadgeCatalog is the fixed achievement catalog users reference by id.
var BadgeCatalog = []model.Badge{
	{Id: "rising_star", Name: "Rising Star", Icon: "fa-star", Color: "text-yellow-400", Description: "Gained over 1,000 views in a single week."},
	{Id: "content_king", Name: "Content King", Icon: "fa-crown", Color: "text-primary", Description: "Uploaded more than 10 high-quality broadcasts."},
	{Id: "verified_pro", Name: "Verified Pro", Icon: "fa-check-double", Color: "text-blue-400", Description: "Account identity fully verified by VideoMack."},
	{Id: "vibe_master", Name: "Vibe Master", Icon: "fa-headphones", Color: "text-purple-400", Description: "Your Music videos reached the top charts."},
	{Id: "engagement_guru", Name: "Guru", Icon: "fa-fire", Color: "text-orange-500", Description: "Consistently high comment-to-view ratio."},
}

// Seed inserts the sample videos that are not already present. Existing rows
// are left alone so engagement state survives restarts.
func (s *Store) Seed(ctx context.Context) error {
	for i := range SampleVideos {
		video := SampleVideos[i]

		s.mu.Lock()
		var count int64
		err := s.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", video.Id).Count(&count).Error
		s.mu.Unlock()
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := s.SaveVideo(ctx, &video); err != nil {
			return err
		}
	}
	return nil
}
