package main_test

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OpenAPI Document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should be a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("should document the front desk endpoints", func() {
		Expect(doc.Paths.Find("/reservations/check-ins")).NotTo(BeNil())
		Expect(doc.Paths.Find("/reservations/check-outs")).NotTo(BeNil())
		Expect(doc.Paths.Find("/reservations/{id}/check-out")).NotTo(BeNil())
		Expect(doc.Paths.Find("/reservations/{id}/cancel")).NotTo(BeNil())
	})

	It("should document the schedule endpoints with a delete per entry", func() {
		shifts := doc.Paths.Find("/staff/{id}/shifts")
		Expect(shifts).NotTo(BeNil())
		Expect(shifts.Get).NotTo(BeNil())
		Expect(shifts.Put).NotTo(BeNil())
		Expect(shifts.Post).NotTo(BeNil())

		entry := doc.Paths.Find("/staff/{id}/shifts/{shiftId}")
		Expect(entry).NotTo(BeNil())
		Expect(entry.Delete).NotTo(BeNil())
	})

	It("should document accounting summaries and the monthly report", func() {
		Expect(doc.Paths.Find("/accounting/summary/daily")).NotTo(BeNil())
		Expect(doc.Paths.Find("/accounting/summary/weekly")).NotTo(BeNil())
		Expect(doc.Paths.Find("/reports/monthly")).NotTo(BeNil())
	})

	It("should require bearer auth on protected operations", func() {
		me := doc.Paths.Find("/users/me")
		Expect(me).NotTo(BeNil())
		Expect(me.Get.Security).NotTo(BeNil())
	})
})
