package mastery

import "context"

// ProgressStore is the persistence port for mastery state. The tracker
// serializes writes per key above this interface, so implementations only
// need to make individual calls safe for concurrent use.
//
// Get methods return (nil, nil) when no row exists; only storage failures
// produce an error.
type ProgressStore interface {
	// UserExists reports whether the user identity is known, independent
	// of whether progress has been initialized for it.
	UserExists(ctx context.Context, userID string) (bool, error)
	// RegisterUser records a new user identity. Registering an existing
	// user is an error.
	RegisterUser(ctx context.Context, userID string) error
	// DeleteUser removes the identity and every stored record belonging
	// to it. Deleting an unknown user is a no-op.
	DeleteUser(ctx context.Context, userID string) error

	GetUserProgress(ctx context.Context, userID string) (*UserProgress, error)
	SaveUserProgress(ctx context.Context, progress *UserProgress) error

	GetContentMastery(ctx context.Context, userID, contentID string) (*ContentMastery, error)
	// ListContentMastery returns the rows for the given content ids,
	// keyed by content id; ids with no row are simply absent. A nil ids
	// slice returns every row the user has.
	ListContentMastery(ctx context.Context, userID string, contentIDs []string) (map[string]*ContentMastery, error)
	SaveContentMastery(ctx context.Context, userID string, record *ContentMastery) error
	// CreateContentMasteries bulk-inserts rows for a user, used when
	// progress is first initialized.
	CreateContentMasteries(ctx context.Context, userID string, records []*ContentMastery) error

	GetPathProgress(ctx context.Context, userID, pathID string) (*PathProgressDetails, error)
	SavePathProgress(ctx context.Context, userID string, details *PathProgressDetails) error
}
