package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/hotel-management/internal/reservation"
)

// ReservationRepository implements the reservation.Repository interface using GORM
type ReservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *gorm.DB) reservation.Repository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(res *reservation.Reservation) error {
	return r.db.Create(res).Error
}

func (r *ReservationRepository) GetByID(id int64) (*reservation.Reservation, error) {
	var res reservation.Reservation
	err := r.db.Where("id = ?", id).First(&res).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, reservation.ErrReservationNotFound
		}
		return nil, err
	}
	return &res, nil
}

// ListArrivalsByDate returns reservations whose stay begins on the given day.
func (r *ReservationRepository) ListArrivalsByDate(date time.Time, limit, offset int) ([]*reservation.Reservation, int64, error) {
	day := date.Format(reservation.DateFormat)

	query := r.db.Model(&reservation.Reservation{}).
		Where("check_in_date = ?", day).
		Where("status IN ?", []string{reservation.StatusReserved, reservation.StatusCheckedIn})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reservations []*reservation.Reservation
	err := query.
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&reservations).Error
	return reservations, total, err
}

// ListDeparturesByDate returns checked-in reservations whose stay ends on
// the given day.
func (r *ReservationRepository) ListDeparturesByDate(date time.Time, limit, offset int) ([]*reservation.Reservation, int64, error) {
	day := date.Format(reservation.DateFormat)

	query := r.db.Model(&reservation.Reservation{}).
		Where("check_out_date = ?", day).
		Where("status = ?", reservation.StatusCheckedIn)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reservations []*reservation.Reservation
	err := query.
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&reservations).Error
	return reservations, total, err
}

func (r *ReservationRepository) Update(res *reservation.Reservation) error {
	res.UpdatedAt = time.Now()
	return r.db.Save(res).Error
}
