package demo_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vehiclefactory/vehiclefactory/pkg/demo"
	"github.com/vehiclefactory/vehiclefactory/pkg/logger"
	"github.com/vehiclefactory/vehiclefactory/pkg/mocks"
	"github.com/vehiclefactory/vehiclefactory/pkg/types"
)

var _ = Describe("Run", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	It("prints one line per vehicle in order", func() {
		demo.Run(logger.CreateLoggerWithOutput("info", logger.FormatMessage, buf))

		Expect(buf.String()).To(Equal(
			"Ford Puma (EU Spec): Engine started\n" +
				"Tesla Model 3 (US Spec): Engine started\n" +
				"Harley-Davidson Sportster (US Spec): Motor started\n" +
				"Toyota Corolla (JP Spec): Engine started\n" +
				"Hyundai Elantra (EU Spec): Engine started\n",
		))
	})

	It("returns the built vehicles", func() {
		vehicles := demo.Run(mocks.NewRecordingLogger())

		Expect(vehicles).To(HaveLen(5))
		Expect(vehicles[2].Kind()).To(Equal(types.VehicleKindMotorcycle))
		Expect(vehicles[2].Model()).To(Equal("Sportster (US Spec)"))
	})

	It("builds the unmapped AU step with the EU factory", func() {
		vehicles := demo.Run(mocks.NewRecordingLogger())

		last := vehicles[len(vehicles)-1]
		Expect(last.Make()).To(Equal("Hyundai"))
		Expect(last.Model()).To(Equal("Elantra (EU Spec)"))
	})

	It("logs nothing beyond the engine lines", func() {
		log := mocks.NewRecordingLogger()
		demo.Run(log)

		Expect(log.Entries()).To(HaveLen(5))
		for _, e := range log.Entries() {
			Expect(e.Level).To(Equal("info"))
		}
	})

	Context("with custom steps", func() {
		It("falls back silently for unknown regions", func() {
			log := mocks.NewRecordingLogger()
			vehicles := demo.RunSteps([]demo.Step{
				{Region: "", Kind: types.VehicleKindMotorcycle, Make: "Ducati", Model: "Monster"},
				{Region: "jp", Kind: types.VehicleKindCar, Make: "Mazda", Model: "MX-5"},
			}, log)

			Expect(vehicles[0].Model()).To(Equal("Monster (EU Spec)"))
			Expect(vehicles[1].Model()).To(Equal("MX-5 (JP Spec)"))
			Expect(log.Messages("info")).To(Equal([]string{
				"Ducati Monster (EU Spec): Motor started",
				"Mazda MX-5 (JP Spec): Engine started",
			}))
		})

		It("does nothing for an empty sequence", func() {
			Expect(demo.RunSteps(nil, mocks.NewRecordingLogger())).To(BeEmpty())
		})
	})
})
