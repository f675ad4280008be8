package studydef_test

import (
	"github.com/spf13/afero"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/storage"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/studydef"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

var _ = Describe("Land-use/plant-input files", func() {
	It("keeps steps in file order", func() {
		content, err := studydef.ParseLandUsePI([]byte(`{
			"LandusePI": {"3": ["cropland", 1.5], "1": ["forest", 2], "2": ["grassland", 0]},
			"yearFrom": 1990
		}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(content.Keys).To(Equal([]string{"LandusePI", "yearFrom"}))
		Expect(content.Has(types.LandUsePIMarker)).To(BeTrue())
		Expect(content.Steps).To(Equal([]types.LandUsePIStep{
			{Index: "3", LandUse: "cropland", PlantInput: 1.5},
			{Index: "1", LandUse: "forest", PlantInput: 2},
			{Index: "2", LandUse: "grassland", PlantInput: 0},
		}))
	})

	It("accepts a file without the marker", func() {
		content, err := studydef.ParseLandUsePI([]byte(`{"other": 1}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(content.Has(types.LandUsePIMarker)).To(BeFalse())
		Expect(content.Steps).To(BeEmpty())
	})

	DescribeTable("rejects invalid content",
		func(data string) {
			_, err := studydef.ParseLandUsePI([]byte(data))
			Expect(err).To(MatchError(studydef.ErrInvalidLandUsePI))
		},
		Entry("malformed", `{"LandusePI": `),
		Entry("not an object", `[1, 2]`),
		Entry("short step", `{"LandusePI": {"1": ["forest"]}}`),
	)

	It("loads from a store", func() {
		fs := afero.NewMemMapFs()
		Expect(afero.WriteFile(fs, "/lupi.json", []byte(`{"LandusePI": {"1": ["forest", 3]}}`), 0644)).To(Succeed())

		content, err := studydef.LoadLandUsePI(storage.New(fs), "/lupi.json")
		Expect(err).NotTo(HaveOccurred())
		Expect(content.Steps).To(HaveLen(1))
		Expect(content.Steps[0].LandUse).To(Equal("forest"))
	})

	It("reports a missing file", func() {
		_, err := studydef.LoadLandUsePI(storage.New(afero.NewMemMapFs()), "/none.json")
		Expect(err).To(MatchError(storage.ErrNotFound))
	})
})
