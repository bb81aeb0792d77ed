package reservation_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hotel-management/internal/reservation"
)

func TestReservation(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Reservation Suite")
}

type mockRepo struct {
	reservations map[int64]*reservation.Reservation
	nextID       int64
	createErr    error
	updateErr    error
}

func newMockRepo() *mockRepo {
	return &mockRepo{reservations: map[int64]*reservation.Reservation{}, nextID: 1}
}

func (m *mockRepo) Create(res *reservation.Reservation) error {
	if m.createErr != nil {
		return m.createErr
	}
	res.ID = m.nextID
	m.nextID++
	stored := *res
	m.reservations[res.ID] = &stored
	return nil
}

func (m *mockRepo) GetByID(id int64) (*reservation.Reservation, error) {
	res, ok := m.reservations[id]
	if !ok {
		return nil, reservation.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (m *mockRepo) ListArrivalsByDate(date time.Time, limit, offset int) ([]*reservation.Reservation, int64, error) {
	var out []*reservation.Reservation
	for _, res := range m.reservations {
		if res.CheckInDate.Equal(date) && res.Status != reservation.StatusCancelled {
			copied := *res
			out = append(out, &copied)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockRepo) ListDeparturesByDate(date time.Time, limit, offset int) ([]*reservation.Reservation, int64, error) {
	var out []*reservation.Reservation
	for _, res := range m.reservations {
		if res.CheckOutDate.Equal(date) && res.Status == reservation.StatusCheckedIn {
			copied := *res
			out = append(out, &copied)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockRepo) Update(res *reservation.Reservation) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	stored := *res
	m.reservations[res.ID] = &stored
	return nil
}

type mockRooms struct {
	occupied    map[int64]bool
	numbers     map[int64]string
	availErr    error
	occupiedErr error
}

func newMockRooms() *mockRooms {
	return &mockRooms{
		occupied: map[int64]bool{},
		numbers:  map[int64]string{101: "101", 102: "102"},
	}
}

func (m *mockRooms) IsAvailable(roomID int64) (bool, error) {
	if m.availErr != nil {
		return false, m.availErr
	}
	return !m.occupied[roomID], nil
}

func (m *mockRooms) RoomNumber(roomID int64) (string, error) {
	return m.numbers[roomID], nil
}

func (m *mockRooms) SetOccupied(roomID int64, occupied bool) error {
	if m.occupiedErr != nil {
		return m.occupiedErr
	}
	m.occupied[roomID] = occupied
	return nil
}

var _ = Describe("Reservation Service", func() {
	var (
		repo  *mockRepo
		rooms *mockRooms
		svc   *reservation.Service
		ctx   context.Context
	)

	testLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	validDTO := func() reservation.CreateReservationDTO {
		return reservation.CreateReservationDTO{
			CustomerID:   7,
			RoomID:       101,
			CheckInDate:  "2026-09-01",
			CheckOutDate: "2026-09-03",
			NumGuests:    2,
			TotalAmount:  250000,
		}
	}

	BeforeEach(func() {
		repo = newMockRepo()
		rooms = newMockRooms()
		svc = reservation.NewService(repo, rooms, nil, testLogger)
		ctx = context.Background()
	})

	Describe("CreateCheckIn", func() {
		It("should create the reservation already checked in and occupy the room", func() {
			res, err := svc.CreateCheckIn(ctx, validDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(res.ID).To(BeNumerically(">", 0))
			Expect(res.Status).To(Equal(reservation.StatusCheckedIn))
			Expect(res.CheckedInAt).NotTo(BeNil())
			Expect(rooms.occupied[101]).To(BeTrue())
		})

		It("should refuse an occupied room", func() {
			rooms.occupied[101] = true
			_, err := svc.CreateCheckIn(ctx, validDTO())
			Expect(err).To(Equal(reservation.ErrAlreadyCheckedIn))
		})

		It("should reject a checkout date not after the checkin date", func() {
			dto := validDTO()
			dto.CheckOutDate = dto.CheckInDate
			_, err := svc.CreateCheckIn(ctx, dto)
			Expect(err).To(HaveOccurred())
			Expect(repo.reservations).To(BeEmpty())
		})

		It("should reject malformed dates", func() {
			dto := validDTO()
			dto.CheckInDate = "01-09-2026"
			_, err := svc.CreateCheckIn(ctx, dto)
			Expect(err).To(HaveOccurred())
		})

		It("should reject a missing customer", func() {
			dto := validDTO()
			dto.CustomerID = 0
			_, err := svc.CreateCheckIn(ctx, dto)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("CheckOut", func() {
		It("should complete the stay and free the room", func() {
			res, _ := svc.CreateCheckIn(ctx, validDTO())

			out, err := svc.CheckOut(ctx, res.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Status).To(Equal(reservation.StatusCheckedOut))
			Expect(out.CheckedOutAt).NotTo(BeNil())
			Expect(rooms.occupied[101]).To(BeFalse())
		})

		It("should refuse a second checkout", func() {
			res, _ := svc.CreateCheckIn(ctx, validDTO())
			_, err := svc.CheckOut(ctx, res.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.CheckOut(ctx, res.ID)
			Expect(err).To(Equal(reservation.ErrAlreadyCheckedOut))
		})

		It("should return not-found for an unknown reservation", func() {
			_, err := svc.CheckOut(ctx, 99)
			Expect(err).To(Equal(reservation.ErrReservationNotFound))
		})

		It("should keep the reservation checked in when the update fails", func() {
			res, _ := svc.CreateCheckIn(ctx, validDTO())
			repo.updateErr = errors.New("connection reset")

			_, err := svc.CheckOut(ctx, res.ID)
			Expect(err).To(HaveOccurred())
			Expect(repo.reservations[res.ID].Status).To(Equal(reservation.StatusCheckedIn))
		})
	})

	Describe("Cancel", func() {
		It("should void a checked-in reservation and free the room", func() {
			res, _ := svc.CreateCheckIn(ctx, validDTO())

			cancelled, err := svc.Cancel(ctx, res.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(cancelled.Status).To(Equal(reservation.StatusCancelled))
			Expect(rooms.occupied[101]).To(BeFalse())
		})

		It("should refuse to cancel a completed stay", func() {
			res, _ := svc.CreateCheckIn(ctx, validDTO())
			_, err := svc.CheckOut(ctx, res.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Cancel(ctx, res.ID)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("listing by date", func() {
		It("should return arrivals and departures for the requested day", func() {
			res, err := svc.CreateCheckIn(ctx, validDTO())
			Expect(err).NotTo(HaveOccurred())

			arrivalDate, _ := time.Parse(reservation.DateFormat, "2026-09-01")
			arrivals, total, err := svc.ArrivalsForDate(arrivalDate, 20, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(arrivals[0].ID).To(Equal(res.ID))

			departureDate, _ := time.Parse(reservation.DateFormat, "2026-09-03")
			departures, total, err := svc.DeparturesForDate(departureDate, 20, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)))
			Expect(departures[0].ID).To(Equal(res.ID))
		})
	})
})
