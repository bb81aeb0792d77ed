package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/hotel-management/internal/room"
)

// RoomRepository implements the room.Repository interface using GORM
type RoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) room.Repository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(rm *room.Room) error {
	return r.db.Create(rm).Error
}

func (r *RoomRepository) GetByID(id int64) (*room.Room, error) {
	var rm room.Room
	err := r.db.Where("id = ?", id).First(&rm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, room.ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

func (r *RoomRepository) GetByNumber(number string) (*room.Room, error) {
	var rm room.Room
	err := r.db.Where("room_number = ?", number).First(&rm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, room.ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

func (r *RoomRepository) List(limit, offset int) ([]*room.Room, int64, error) {
	var total int64
	if err := r.db.Model(&room.Room{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rooms []*room.Room
	err := r.db.
		Order("room_number ASC").
		Limit(limit).
		Offset(offset).
		Find(&rooms).Error
	return rooms, total, err
}

func (r *RoomRepository) Update(rm *room.Room) error {
	rm.UpdatedAt = time.Now()
	return r.db.Save(rm).Error
}

func (r *RoomRepository) Delete(id int64) error {
	return r.db.Delete(&room.Room{}, id).Error
}

func (r *RoomRepository) CreateIssue(issue *room.MaintenanceIssue) error {
	return r.db.Create(issue).Error
}

func (r *RoomRepository) GetIssueByID(id int64) (*room.MaintenanceIssue, error) {
	var issue room.MaintenanceIssue
	err := r.db.Where("id = ?", id).First(&issue).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, room.ErrIssueNotFound
		}
		return nil, err
	}
	return &issue, nil
}

func (r *RoomRepository) ListIssues(roomID int64, limit, offset int) ([]*room.MaintenanceIssue, int64, error) {
	query := r.db.Model(&room.MaintenanceIssue{}).Where("room_id = ?", roomID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var issues []*room.MaintenanceIssue
	err := query.
		Order("reported_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&issues).Error
	return issues, total, err
}

func (r *RoomRepository) UpdateIssue(issue *room.MaintenanceIssue) error {
	return r.db.Save(issue).Error
}

func (r *RoomRepository) CountOpenIssues(roomID int64) (int64, error) {
	var count int64
	err := r.db.Model(&room.MaintenanceIssue{}).
		Where("room_id = ? AND status = ?", roomID, room.IssueStatusOpen).
		Count(&count).Error
	return count, err
}
