package repository

import (
	"context"
	"strings"
	"time"

	"photoorders/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) DB() *gorm.DB { return r.db }

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(strings.ToLower(email))).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", id).
		Update("last_login", now).Error
}

// allow-lists for admin user listing; anything else in filter/sort is dropped
var (
	userFilterColumns = map[string]bool{
		"phone": true, "email": true, "name": true, "role": true,
		"created_at": true, "updated_at": true,
	}
	userSortColumns = map[string]bool{
		"phone": true, "email": true, "name": true, "role": true,
		"created_at": true, "updated_at": true,
	}
)

// List applies only allow-listed filter equality pairs and sort columns.
func (r *UserRepository) List(ctx context.Context, filter map[string]string, sort map[string]string, skip, limit int) ([]domain.User, error) {
	var users []domain.User
	q := r.db.WithContext(ctx).Model(&domain.User{})

	for col, val := range filter {
		if userFilterColumns[col] {
			q = q.Where(col+" = ?", val)
		}
	}
	ordered := false
	for col, dir := range sort {
		if !userSortColumns[col] {
			continue
		}
		if dir == "desc" || dir == "descending" || dir == "-1" {
			q = q.Order(col + " DESC")
		} else {
			q = q.Order(col)
		}
		ordered = true
	}
	if !ordered {
		q = q.Order("id")
	}
	if skip > 0 {
		q = q.Offset(skip)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return users, q.Find(&users).Error
}

func (r *UserRepository) Count(ctx context.Context, filter map[string]string) (int64, error) {
	var cnt int64
	q := r.db.WithContext(ctx).Model(&domain.User{})
	for col, val := range filter {
		if userFilterColumns[col] {
			q = q.Where(col+" = ?", val)
		}
	}
	err := q.Count(&cnt).Error
	return cnt, err
}

// AppendOrder records a request under the user's order history. Callers treat
// a failure here as non-fatal: the request itself is already persisted.
func (r *UserRepository) AppendOrder(ctx context.Context, userID int64, requestID string) error {
	return r.db.WithContext(ctx).Create(&domain.UserOrder{
		UserID:    userID,
		RequestID: requestID,
	}).Error
}

func (r *UserRepository) OrderRequestIDs(ctx context.Context, userID int64) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&domain.UserOrder{}).
		Where("user_id = ?", userID).
		Pluck("request_id", &ids).Error
	return ids, err
}
