package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"messenger-backend/internal/domain/user"
	messenger_errors "messenger-backend/pkg/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	res := r.db.WithContext(ctx).Create(u)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return messenger_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id int64) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, messenger_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, messenger_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int64, firstName, lastName, displayName, avatarURL sql.NullString) error {
	res := r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"first_name":   firstName,
			"last_name":    lastName,
			"display_name": displayName,
			"avatar_url":   avatarURL,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return messenger_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) UpdateLastSeen(ctx context.Context, userID int64, lastSeen time.Time) error {
	return r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("id = ?", userID).
		Update("last_seen", lastSeen).Error
}

func (r *PostgresUserRepository) SearchUsers(ctx context.Context, query string, excludeUserID int64, limit int) ([]user.SearchResult, error) {
	var results []user.SearchResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, u.username, u.display_name, u.first_name, u.last_name,
		       u.avatar_url, u.is_verified,
		       EXISTS(
		           SELECT 1 FROM contacts
		           WHERE user_id = ? AND contact_user_id = u.id
		       ) AS is_contact
		FROM users u
		WHERE u.username ILIKE ? AND u.id <> ?
		ORDER BY u.is_verified DESC, u.username
		LIMIT ?`,
		excludeUserID, "%"+query+"%", excludeUserID, limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *PostgresUserRepository) GetUserContacts(ctx context.Context, userID int64) ([]user.ContactProfile, error) {
	var contacts []user.ContactProfile
	err := r.db.WithContext(ctx).
		Table("contacts c").
		Select(`c.id, c.contact_user_id, c.custom_name,
			u.username, u.display_name, u.avatar_url,
			u.is_verified, u.is_friend_of_admin, u.last_seen, u.status_visibility`).
		Joins("JOIN users u ON c.contact_user_id = u.id").
		Where("c.user_id = ?", userID).
		Order("c.added_at DESC").
		Scan(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *PostgresUserRepository) AddContact(ctx context.Context, c *user.Contact) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "contact_user_id"}},
			DoNothing: true,
		}).
		Create(c)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
