package postgres

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/oceansouq/platform-core/internal/domain"
)

type subjectModel struct {
	SubjectID    uuid.UUID `gorm:"column:subject_id;type:uuid;primaryKey"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	DisplayName  string    `gorm:"column:display_name"`
	Role         string    `gorm:"column:role"`
	Status       string    `gorm:"column:status"`
	Profile      string    `gorm:"column:profile;type:jsonb"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (subjectModel) TableName() string { return "subjects" }

func toSubjectModel(s domain.Subject) subjectModel {
	profile := []byte(`{}`)
	if len(s.Profile) > 0 {
		if raw, err := json.Marshal(s.Profile); err == nil {
			profile = raw
		}
	}
	return subjectModel{
		SubjectID:    s.ID,
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
		DisplayName:  s.Name,
		Role:         string(s.Role),
		Status:       string(s.Status),
		Profile:      string(profile),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toDomainSubject(rec subjectModel) domain.Subject {
	var profile map[string]any
	if rec.Profile != "" {
		_ = json.Unmarshal([]byte(rec.Profile), &profile)
	}
	return domain.Subject{
		ID:           rec.SubjectID,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		Name:         rec.DisplayName,
		Role:         domain.Role(rec.Role),
		Status:       domain.Status(rec.Status),
		Profile:      profile,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
