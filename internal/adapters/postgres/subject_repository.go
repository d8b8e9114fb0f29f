package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oceansouq/platform-core/internal/domain"
	"github.com/oceansouq/platform-core/internal/ports"
	"gorm.io/gorm"
)

// SubjectRepository is the gorm-backed identity store gateway.
type SubjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

var _ ports.SubjectRepository = (*SubjectRepository)(nil)

func (r *SubjectRepository) Create(ctx context.Context, subject domain.Subject) error {
	rec := toSubjectModel(subject)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return storeErr("create_subject", err)
	}
	return nil
}

func (r *SubjectRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Subject, error) {
	var rec subjectModel
	if err := r.db.WithContext(ctx).Where("subject_id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Subject{}, domain.ErrNotFound
		}
		return domain.Subject{}, storeErr("get_subject_by_id", err)
	}
	return toDomainSubject(rec), nil
}

func (r *SubjectRepository) GetByEmail(ctx context.Context, email string) (domain.Subject, error) {
	var rec subjectModel
	if err := r.db.WithContext(ctx).Where("lower(email) = lower(?)", email).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Subject{}, domain.ErrNotFound
		}
		return domain.Subject{}, storeErr("get_subject_by_email", err)
	}
	return toDomainSubject(rec), nil
}

func (r *SubjectRepository) List(ctx context.Context, limit, offset int) ([]domain.Subject, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var recs []subjectModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recs).Error; err != nil {
		return nil, storeErr("list_subjects", err)
	}
	subjects := make([]domain.Subject, 0, len(recs))
	for _, rec := range recs {
		subjects = append(subjects, toDomainSubject(rec))
	}
	return subjects, nil
}

func (r *SubjectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, updatedAt time.Time) error {
	return r.updateFields(ctx, "update_subject_status", id, map[string]any{
		"status":     string(status),
		"updated_at": updatedAt,
	})
}

func (r *SubjectRepository) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role, updatedAt time.Time) error {
	return r.updateFields(ctx, "update_subject_role", id, map[string]any{
		"role":       string(role),
		"updated_at": updatedAt,
	})
}

func (r *SubjectRepository) updateFields(ctx context.Context, op string, id uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&subjectModel{}).
		Where("subject_id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return storeErr(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// storeErr folds abandoned round-trips into the Unavailable taxonomy so
// the edge answers 503 instead of leaking driver errors.
func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s: %v", domain.ErrUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
