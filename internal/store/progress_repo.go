package store

import (
	"context"
	"fmt"

	"github.com/oselot/stitchpath/ent"
	"github.com/oselot/stitchpath/ent/contentmastery"
	"github.com/oselot/stitchpath/ent/learner"
	"github.com/oselot/stitchpath/ent/masteryevent"
	"github.com/oselot/stitchpath/ent/pathprogress"
	entschema "github.com/oselot/stitchpath/ent/schema"
	"github.com/oselot/stitchpath/ent/sessionevent"
	"github.com/oselot/stitchpath/ent/userprogress"
	"github.com/oselot/stitchpath/internal/mastery"
)

// progressRepo implements mastery.ProgressStore on the ent client. Upserts
// are get-then-write; the tracker serializes writers per key, so the two
// steps cannot interleave for the same row.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) UserExists(ctx context.Context, userID string) (bool, error) {
	exists, err := r.client.Learner.Query().
		Where(learner.UserID(userID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("query learner: %w", err)
	}
	return exists, nil
}

func (r *progressRepo) RegisterUser(ctx context.Context, userID string) error {
	_, err := r.client.Learner.Create().
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: %q", ErrAlreadyRegistered, userID)
		}
		return fmt.Errorf("create learner: %w", err)
	}
	return nil
}

// DeleteUser removes the learner row, all progress rows, and the user's
// logged events, atomically. Unknown users are a no-op.
func (r *progressRepo) DeleteUser(ctx context.Context, userID string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	steps := []func() error{
		func() error {
			_, err := tx.ContentMastery.Delete().Where(contentmastery.UserID(userID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.PathProgress.Delete().Where(pathprogress.UserID(userID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.UserProgress.Delete().Where(userprogress.UserID(userID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.SessionEvent.Delete().Where(sessionevent.UserID(userID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.MasteryEvent.Delete().Where(masteryevent.UserID(userID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := tx.Learner.Delete().Where(learner.UserID(userID)).Exec(ctx)
			return err
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return rollback(tx, fmt.Errorf("delete user %q: %w", userID, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete of user %q: %w", userID, err)
	}
	return nil
}

func (r *progressRepo) GetUserProgress(ctx context.Context, userID string) (*mastery.UserProgress, error) {
	row, err := r.client.UserProgress.Query().
		Where(userprogress.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user progress: %w", err)
	}
	return userProgressFromRow(row), nil
}

func (r *progressRepo) SaveUserProgress(ctx context.Context, up *mastery.UserProgress) error {
	existing, err := r.client.UserProgress.Query().
		Where(userprogress.UserID(up.UserID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query user progress: %w", err)
	}

	if existing == nil {
		_, err = r.client.UserProgress.Create().
			SetUserID(up.UserID).
			SetOverallCompletion(up.OverallCompletion).
			SetPerPathCompletion(up.PerPathCompletion).
			SetMasteredItemCount(up.MasteredItemCount).
			SetTotalItemCount(up.TotalItemCount).
			SetLastUpdate(up.LastUpdate).
			Save(ctx)
	} else {
		_, err = existing.Update().
			SetOverallCompletion(up.OverallCompletion).
			SetPerPathCompletion(up.PerPathCompletion).
			SetMasteredItemCount(up.MasteredItemCount).
			SetTotalItemCount(up.TotalItemCount).
			SetLastUpdate(up.LastUpdate).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save user progress: %w", err)
	}
	return nil
}

func (r *progressRepo) GetContentMastery(ctx context.Context, userID, contentID string) (*mastery.ContentMastery, error) {
	row, err := r.client.ContentMastery.Query().
		Where(
			contentmastery.UserID(userID),
			contentmastery.ContentID(contentID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query content mastery: %w", err)
	}
	return contentMasteryFromRow(row), nil
}

func (r *progressRepo) ListContentMastery(ctx context.Context, userID string, contentIDs []string) (map[string]*mastery.ContentMastery, error) {
	query := r.client.ContentMastery.Query().
		Where(contentmastery.UserID(userID))
	if contentIDs != nil {
		query = query.Where(contentmastery.ContentIDIn(contentIDs...))
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list content mastery: %w", err)
	}

	out := make(map[string]*mastery.ContentMastery, len(rows))
	for _, row := range rows {
		out[row.ContentID] = contentMasteryFromRow(row)
	}
	return out, nil
}

func (r *progressRepo) SaveContentMastery(ctx context.Context, userID string, cm *mastery.ContentMastery) error {
	existing, err := r.client.ContentMastery.Query().
		Where(
			contentmastery.UserID(userID),
			contentmastery.ContentID(cm.ContentID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query content mastery: %w", err)
	}

	if existing == nil {
		_, err = r.client.ContentMastery.Create().
			SetUserID(userID).
			SetContentID(cm.ContentID).
			SetMasteryLevel(cm.MasteryLevel).
			SetAttemptCount(cm.AttemptCount).
			SetLastAttemptTime(cm.LastAttemptTime).
			SetNextReviewTime(cm.NextReviewTime).
			Save(ctx)
	} else {
		_, err = existing.Update().
			SetMasteryLevel(cm.MasteryLevel).
			SetAttemptCount(cm.AttemptCount).
			SetLastAttemptTime(cm.LastAttemptTime).
			SetNextReviewTime(cm.NextReviewTime).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save content mastery: %w", err)
	}
	return nil
}

func (r *progressRepo) CreateContentMasteries(ctx context.Context, userID string, records []*mastery.ContentMastery) error {
	if len(records) == 0 {
		return nil
	}
	builders := make([]*ent.ContentMasteryCreate, len(records))
	for i, cm := range records {
		builders[i] = r.client.ContentMastery.Create().
			SetUserID(userID).
			SetContentID(cm.ContentID).
			SetMasteryLevel(cm.MasteryLevel).
			SetAttemptCount(cm.AttemptCount).
			SetLastAttemptTime(cm.LastAttemptTime).
			SetNextReviewTime(cm.NextReviewTime)
	}
	if _, err := r.client.ContentMastery.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("bulk create content mastery: %w", err)
	}
	return nil
}

func (r *progressRepo) GetPathProgress(ctx context.Context, userID, pathID string) (*mastery.PathProgressDetails, error) {
	row, err := r.client.PathProgress.Query().
		Where(
			pathprogress.UserID(userID),
			pathprogress.PathID(pathID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query path progress: %w", err)
	}
	return pathProgressFromRow(row), nil
}

func (r *progressRepo) SavePathProgress(ctx context.Context, userID string, pp *mastery.PathProgressDetails) error {
	existing, err := r.client.PathProgress.Query().
		Where(
			pathprogress.UserID(userID),
			pathprogress.PathID(pp.PathID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query path progress: %w", err)
	}

	items := itemStateToRow(pp.PerItemState)
	if existing == nil {
		_, err = r.client.PathProgress.Create().
			SetUserID(userID).
			SetPathID(pp.PathID).
			SetCompletion(pp.Completion).
			SetPerItemState(items).
			SetMasteredCount(pp.MasteredCount).
			SetLastUpdate(pp.LastUpdate).
			Save(ctx)
	} else {
		_, err = existing.Update().
			SetCompletion(pp.Completion).
			SetPerItemState(items).
			SetMasteredCount(pp.MasteredCount).
			SetLastUpdate(pp.LastUpdate).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save path progress: %w", err)
	}
	return nil
}

func userProgressFromRow(row *ent.UserProgress) *mastery.UserProgress {
	per := make(map[string]float64, len(row.PerPathCompletion))
	for id, v := range row.PerPathCompletion {
		per[id] = v
	}
	return &mastery.UserProgress{
		UserID:            row.UserID,
		OverallCompletion: row.OverallCompletion,
		PerPathCompletion: per,
		MasteredItemCount: row.MasteredItemCount,
		TotalItemCount:    row.TotalItemCount,
		LastUpdate:        row.LastUpdate,
	}
}

func contentMasteryFromRow(row *ent.ContentMastery) *mastery.ContentMastery {
	return &mastery.ContentMastery{
		ContentID:       row.ContentID,
		MasteryLevel:    row.MasteryLevel,
		AttemptCount:    row.AttemptCount,
		LastAttemptTime: row.LastAttemptTime,
		NextReviewTime:  row.NextReviewTime,
	}
}

func pathProgressFromRow(row *ent.PathProgress) *mastery.PathProgressDetails {
	items := make(map[string]mastery.ItemState, len(row.PerItemState))
	for id, st := range row.PerItemState {
		items[id] = mastery.ItemState{
			MasteryLevel: st.MasteryLevel,
			AttemptCount: st.AttemptCount,
			Position:     st.Position,
		}
	}
	return &mastery.PathProgressDetails{
		PathID:        row.PathID,
		Completion:    row.Completion,
		PerItemState:  items,
		MasteredCount: row.MasteredCount,
		LastUpdate:    row.LastUpdate,
	}
}

func itemStateToRow(items map[string]mastery.ItemState) map[string]entschema.ItemStateData {
	out := make(map[string]entschema.ItemStateData, len(items))
	for id, st := range items {
		out[id] = entschema.ItemStateData{
			MasteryLevel: st.MasteryLevel,
			AttemptCount: st.AttemptCount,
			Position:     st.Position,
		}
	}
	return out
}

// rollback rolls tx back and folds any rollback failure into err.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}
