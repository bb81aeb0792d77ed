package shift_test

import (
	"context"
	"errors"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hotel-management/internal/shift"
)

var _ = Describe("Shift Service", func() {
	var (
		store   *mockStore
		service *shift.Service
		ctx     context.Context
	)

	testLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	BeforeEach(func() {
		store = newMockStore()
		service = shift.NewService(store, nil, testLogger)
		ctx = context.Background()
	})

	Describe("first-use priming", func() {
		BeforeEach(func() {
			store.entries = []shift.ShiftEntry{
				{ID: 1, StaffID: 7, DayOfWeek: "Monday", StartTime: "09:00", EndTime: "17:00"},
				{ID: 2, StaffID: 7, DayOfWeek: "Tuesday", StartTime: "09:00", EndTime: "17:00"},
			}
			store.nextID = 3
		})

		It("should load the stored schedule before the first mutation", func() {
			entries, err := service.Upsert(ctx, 7, shift.UpsertShiftDTO{
				DayOfWeek: "Friday", StartTime: "10:00", EndTime: "12:00",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(3))
			Expect(store.entries).To(HaveLen(3))
		})

		It("should not mutate through a reconciler whose initial load failed", func() {
			store.getErr = errors.New("timeout")

			_, err := service.Upsert(ctx, 7, shift.UpsertShiftDTO{
				DayOfWeek: "Friday", StartTime: "10:00", EndTime: "12:00",
			})
			Expect(err).To(HaveOccurred())
			Expect(store.replaceCalls).To(BeZero(), "an unprimed schedule must never be written back")

			store.mu.Lock()
			store.getErr = nil
			store.mu.Unlock()

			entries, err := service.Upsert(ctx, 7, shift.UpsertShiftDTO{
				DayOfWeek: "Friday", StartTime: "10:00", EndTime: "12:00",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(3), "retry after recovery must see the stored schedule")

			days := map[string]bool{}
			for _, e := range store.entries {
				days[e.DayOfWeek] = true
			}
			Expect(days).To(HaveKey("Monday"))
			Expect(days).To(HaveKey("Tuesday"))
			Expect(days).To(HaveKey("Friday"))
		})

		It("should surface the load failure from GetForStaff too", func() {
			store.getErr = errors.New("timeout")

			_, err := service.GetForStaff(ctx, 7)
			Expect(err).To(HaveOccurred())

			store.mu.Lock()
			store.getErr = nil
			store.mu.Unlock()

			entries, err := service.GetForStaff(ctx, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
		})
	})

	Describe("StateForStaff", func() {
		It("should report idle for staff with no reconciler yet", func() {
			Expect(service.StateForStaff(99)).To(Equal(shift.StateIdle))
		})

		It("should report the reconciler state after a failed write", func() {
			_, err := service.Upsert(ctx, 7, shift.UpsertShiftDTO{
				DayOfWeek: "Monday", StartTime: "09:00", EndTime: "17:00",
			})
			Expect(err).NotTo(HaveOccurred())

			store.mu.Lock()
			store.replaceErr = errors.New("connection reset")
			store.mu.Unlock()

			_, err = service.Upsert(ctx, 7, shift.UpsertShiftDTO{
				DayOfWeek: "Tuesday", StartTime: "09:00", EndTime: "17:00",
			})
			Expect(err).To(HaveOccurred())
			Expect(service.StateForStaff(7)).To(Equal(shift.StateFailedRetained))
		})
	})

	Describe("Remove", func() {
		It("should delete through the primed reconciler", func() {
			store.entries = []shift.ShiftEntry{
				{ID: 1, StaffID: 7, DayOfWeek: "Monday", StartTime: "09:00", EndTime: "17:00"},
			}
			store.nextID = 2

			entries, err := service.Remove(ctx, 7, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())
			Expect(store.entries).To(BeEmpty())
		})
	})
})
