package room_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hotel-management/internal/room"
)

func TestRoom(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Room Suite")
}

type mockRepo struct {
	rooms      map[int64]*room.Room
	issues     map[int64]*room.MaintenanceIssue
	nextRoomID int64
	nextIssue  int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		rooms:      map[int64]*room.Room{},
		issues:     map[int64]*room.MaintenanceIssue{},
		nextRoomID: 1,
		nextIssue:  1,
	}
}

func (m *mockRepo) Create(rm *room.Room) error {
	rm.ID = m.nextRoomID
	m.nextRoomID++
	stored := *rm
	m.rooms[rm.ID] = &stored
	return nil
}

func (m *mockRepo) GetByID(id int64) (*room.Room, error) {
	rm, ok := m.rooms[id]
	if !ok {
		return nil, room.ErrRoomNotFound
	}
	copied := *rm
	return &copied, nil
}

func (m *mockRepo) GetByNumber(number string) (*room.Room, error) {
	for _, rm := range m.rooms {
		if rm.RoomNumber == number {
			copied := *rm
			return &copied, nil
		}
	}
	return nil, room.ErrRoomNotFound
}

func (m *mockRepo) List(limit, offset int) ([]*room.Room, int64, error) {
	var out []*room.Room
	for _, rm := range m.rooms {
		copied := *rm
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (m *mockRepo) Update(rm *room.Room) error {
	stored := *rm
	m.rooms[rm.ID] = &stored
	return nil
}

func (m *mockRepo) Delete(id int64) error {
	delete(m.rooms, id)
	return nil
}

func (m *mockRepo) CreateIssue(issue *room.MaintenanceIssue) error {
	issue.ID = m.nextIssue
	m.nextIssue++
	stored := *issue
	m.issues[issue.ID] = &stored
	return nil
}

func (m *mockRepo) GetIssueByID(id int64) (*room.MaintenanceIssue, error) {
	issue, ok := m.issues[id]
	if !ok {
		return nil, room.ErrIssueNotFound
	}
	copied := *issue
	return &copied, nil
}

func (m *mockRepo) ListIssues(roomID int64, limit, offset int) ([]*room.MaintenanceIssue, int64, error) {
	var out []*room.MaintenanceIssue
	for _, issue := range m.issues {
		if issue.RoomID == roomID {
			copied := *issue
			out = append(out, &copied)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockRepo) UpdateIssue(issue *room.MaintenanceIssue) error {
	stored := *issue
	m.issues[issue.ID] = &stored
	return nil
}

func (m *mockRepo) CountOpenIssues(roomID int64) (int64, error) {
	var count int64
	for _, issue := range m.issues {
		if issue.RoomID == roomID && issue.Status == room.IssueStatusOpen {
			count++
		}
	}
	return count, nil
}

var _ = Describe("Room Service", func() {
	var (
		repo *mockRepo
		svc  *room.Service
		ctx  context.Context
	)

	testLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	validDTO := func() room.RoomDTO {
		return room.RoomDTO{
			RoomNumber:    "101",
			RoomType:      "deluxe",
			Floor:         1,
			PricePerNight: 450000,
		}
	}

	BeforeEach(func() {
		repo = newMockRepo()
		svc = room.NewService(repo, nil, testLogger)
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("should create an available room by default", func() {
			rm, err := svc.Create(validDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(rm.ID).To(BeNumerically(">", 0))
			Expect(rm.Status).To(Equal(room.StatusAvailable))
		})

		It("should refuse a duplicate room number", func() {
			_, err := svc.Create(validDTO())
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Create(validDTO())
			Expect(err).To(Equal(room.ErrDuplicateRoom))
		})

		It("should reject a non-positive price", func() {
			dto := validDTO()
			dto.PricePerNight = 0
			_, err := svc.Create(dto)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("occupancy transitions", func() {
		It("should flip between occupied and available", func() {
			rm, _ := svc.Create(validDTO())

			Expect(svc.SetOccupied(rm.ID, true)).To(Succeed())
			available, err := svc.IsAvailable(rm.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(available).To(BeFalse())

			Expect(svc.SetOccupied(rm.ID, false)).To(Succeed())
			available, err = svc.IsAvailable(rm.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(available).To(BeTrue())
		})

		It("should not return a maintenance room to service on checkout", func() {
			rm, _ := svc.Create(validDTO())
			_, err := svc.ReportIssue(ctx, rm.ID, room.ReportIssueDTO{Description: "broken AC"})
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.SetOccupied(rm.ID, false)).To(Succeed())

			got, _ := svc.GetByID(rm.ID)
			Expect(got.Status).To(Equal(room.StatusMaintenance))
		})
	})

	Describe("maintenance issues", func() {
		It("should pull the room out of the pool while an issue is open", func() {
			rm, _ := svc.Create(validDTO())

			issue, err := svc.ReportIssue(ctx, rm.ID, room.ReportIssueDTO{Description: "leaking tap"})
			Expect(err).NotTo(HaveOccurred())
			Expect(issue.Status).To(Equal(room.IssueStatusOpen))

			available, _ := svc.IsAvailable(rm.ID)
			Expect(available).To(BeFalse())
		})

		It("should return the room once the last open issue is resolved", func() {
			rm, _ := svc.Create(validDTO())
			first, _ := svc.ReportIssue(ctx, rm.ID, room.ReportIssueDTO{Description: "leaking tap"})
			second, _ := svc.ReportIssue(ctx, rm.ID, room.ReportIssueDTO{Description: "broken lamp"})

			_, err := svc.ResolveIssue(rm.ID, first.ID)
			Expect(err).NotTo(HaveOccurred())
			available, _ := svc.IsAvailable(rm.ID)
			Expect(available).To(BeFalse(), "one issue still open")

			resolved, err := svc.ResolveIssue(rm.ID, second.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resolved.ResolvedAt).NotTo(BeNil())

			available, _ = svc.IsAvailable(rm.ID)
			Expect(available).To(BeTrue())
		})

		It("should reject resolving an issue through the wrong room", func() {
			rm, _ := svc.Create(validDTO())
			other := validDTO()
			other.RoomNumber = "102"
			rm2, _ := svc.Create(other)

			issue, _ := svc.ReportIssue(ctx, rm.ID, room.ReportIssueDTO{Description: "leaking tap"})
			_, err := svc.ResolveIssue(rm2.ID, issue.ID)
			Expect(err).To(Equal(room.ErrIssueNotFound))
		})

		It("should reject an empty description", func() {
			rm, _ := svc.Create(validDTO())
			_, err := svc.ReportIssue(ctx, rm.ID, room.ReportIssueDTO{})
			Expect(err).To(HaveOccurred())
		})
	})
})
