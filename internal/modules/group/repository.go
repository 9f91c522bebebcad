package group

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, g *Group) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *Repository) List(ctx context.Context) ([]Group, error) {
	var groups []Group
	err := r.db.WithContext(ctx).Order("id ASC").Find(&groups).Error
	return groups, err
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*Group, error) {
	var g Group
	err := r.db.WithContext(ctx).First(&g, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) Save(ctx context.Context, g *Group) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Group{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGroupNotFound
	}
	return nil
}

func (r *Repository) AddMember(ctx context.Context, m *Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *Repository) MemberExists(ctx context.Context, groupID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Member{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) RemoveMember(ctx context.Context, groupID, userID int64) error {
	res := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&Member{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *Repository) RemoveMembersByGroup(ctx context.Context, groupID int64) error {
	return r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Delete(&Member{}).Error
}

func (r *Repository) ListMembers(ctx context.Context, groupID int64) ([]Member, error) {
	var members []Member
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("id ASC").
		Find(&members).Error
	return members, err
}

// ListMemberIDs resolves the fan-out recipients for a group. An unknown
// group yields an empty slice, not an error.
func (r *Repository) ListMemberIDs(ctx context.Context, groupID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&Member{}).
		Where("group_id = ?", groupID).
		Order("id ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}
