package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	// Fixed-width so lexicographic order on the stored text equals
	// chronological order; chat rendering depends on that.
	TimestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

	// Keys in the durable client storage. The whole engine snapshot lives
	// under SnapshotKey; the current session user is a plain JSON record
	// under SessionKey. A schema change requires resetting both.
	SnapshotKey = "videomack_db"
	SessionKey  = "videomack_user"

	StorageBucket = "videomack"

	UserTableName         = "users"
	VideoTableName        = "videos"
	CommentTableName      = "comments"
	MessageTableName      = "messages"
	SubscriptionTableName = "subscriptions"
	WatchLaterTableName   = "watch_later"

	// Owner sentinel for platform-seeded videos.
	SystemUserId = "system"

	// Verification tiers shown next to a username.
	VerificationBlue = "blue"
	VerificationGold = "gold"
	VerificationGray = "gray"
	VerificationNone = ""

	DefaultVideoDuration = "3:45"
	UploadedJustNow      = "Just now"

	UnknownUserName = "Unknown User"
)

var Categories = []string{
	"All", "Music", "Gaming", "Tech", "Podcasts", "Shorts", "Learning", "Live",
}
