package studydef_test

import (
	"github.com/spf13/afero"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/form"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/storage"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/internal/studydef"
	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

const simsDir = "/data/simulations"

func newForm() *form.Form {
	f := form.New(form.Options{
		WeatherResources: []string{"CRU", "EObs"},
		LandUseAbbrevs:   map[string]string{"forest": "F", "cropland": "C", "grassland": "G"},
		Version:          "2.0",
	})
	Expect(f.SetText(form.Study, "glasgow")).To(Succeed())
	Expect(f.SetText(form.WeatherResource, "CRU")).To(Succeed())
	Expect(f.SetText(form.ClimScenario, "rcp26")).To(Succeed())
	Expect(f.SetText(form.HistStartYr, "1901")).To(Succeed())
	Expect(f.SetText(form.HistEndYr, "2019")).To(Succeed())
	Expect(f.SetText(form.FutStartYr, "2006")).To(Succeed())
	Expect(f.SetText(form.FutEndYr, "2100")).To(Succeed())
	Expect(f.SetText(form.LLLon, "-3.5")).To(Succeed())
	Expect(f.SetText(form.LLLat, "55")).To(Succeed())
	Expect(f.SetText(form.URLon, "-2.0")).To(Succeed())
	Expect(f.SetText(form.URLat, " 56.25 ")).To(Succeed())
	Expect(f.SetText(form.LuPiJSONFname, "lupi.json")).To(Succeed())
	f.LuPi = &types.LandUsePIContent{
		Keys: []string{"LandusePI"},
		Steps: []types.LandUsePIStep{
			{Index: "1", LandUse: "forest", PlantInput: 2.5},
			{Index: "2", LandUse: "cropland", PlantInput: 1},
		},
	}
	return f
}

func setBBox(f *form.Form, llLon, llLat, urLon, urLat string) {
	Expect(f.SetText(form.LLLon, llLon)).To(Succeed())
	Expect(f.SetText(form.LLLat, llLat)).To(Succeed())
	Expect(f.SetText(form.URLon, urLon)).To(Succeed())
	Expect(f.SetText(form.URLat, urLat)).To(Succeed())
}

var quarterDegree = studydef.GridCellFunc(func(*form.Form) float64 { return 0.25 })

var _ = Describe("Writer", func() {
	var (
		store  *storage.Store
		writer *studydef.Writer
		f      *form.Form
	)

	BeforeEach(func() {
		store = storage.New(afero.NewMemMapFs())
		writer = studydef.NewWriter(store, simsDir, quarterDegree)
		f = newForm()
	})

	Describe("Write", func() {
		It("writes the study definition with sorted keys", func() {
			path, err := writer.Write(f)
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(Equal(simsDir + "/glasgow_study_definition.txt"))

			data, err := store.Read(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(`{
  "studyDefn": {
    "bbox": [
      -3.5,
      55,
      -2,
      56.25
    ],
    "climScnr": "rcp26",
    "futEndYr": "2100",
    "futStrtYr": "2006",
    "histEndYr": "2019",
    "histStrtYr": "1901",
    "land_use": "F2C",
    "luPiJsonFname": "lupi.json",
    "province": "xxxx",
    "resolution": 0.25,
    "shpe_file": "xxxx",
    "study": "glasgow",
    "version": "2.0"
  }
}
`))
		})

		It("produces identical bytes when written twice", func() {
			path, err := writer.Write(f)
			Expect(err).NotTo(HaveOccurred())
			first, err := store.Read(path)
			Expect(err).NotTo(HaveOccurred())

			_, err = writer.Write(f)
			Expect(err).NotTo(HaveOccurred())
			second, err := store.Read(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("does nothing without land-use/plant-input content", func() {
			f.LuPi = nil
			path, err := writer.Write(f)
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(BeEmpty())
			Expect(store.Exists(studydef.Path(simsDir, "glasgow"))).To(BeFalse())
		})

		It("does nothing when the marker key is absent", func() {
			f.LuPi = &types.LandUsePIContent{Keys: []string{"Other"}}
			path, err := writer.Write(f)
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(BeEmpty())
		})

		It("skips the write when the study is empty", func() {
			Expect(f.SetText(form.Study, "")).To(Succeed())
			path, err := writer.Write(f)
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(BeEmpty())
			Expect(store.Exists(studydef.Path(simsDir, ""))).To(BeFalse())
		})

		It("fails without writing on an unknown land use", func() {
			f.LuPi.Steps = append(f.LuPi.Steps, types.LandUsePIStep{Index: "3", LandUse: "wetland"})
			path, err := writer.Write(f)
			Expect(err).To(MatchError(studydef.ErrUnknownLandUse))
			Expect(path).To(BeEmpty())
			Expect(store.Exists(studydef.Path(simsDir, "glasgow"))).To(BeFalse())
		})

		It("reports a zero resolution without a grid calculator", func() {
			path, err := studydef.NewWriter(store, simsDir, nil).Write(f)
			Expect(err).NotTo(HaveOccurred())

			var file types.StudyDefinitionFile
			Expect(store.Get(path, &file)).To(Succeed())
			Expect(file.StudyDefn.Resolution).To(BeZero())
			Expect(file.StudyDefn.LandUse).To(Equal("F2C"))
		})
	})

	Describe("ClimateScenario", func() {
		It("uses the selected scenario for CRU", func() {
			Expect(studydef.ClimateScenario("CRU", "rcp85")).To(Equal("rcp85"))
		})

		It("uses the weather resource otherwise", func() {
			Expect(studydef.ClimateScenario("EObs", "rcp85")).To(Equal("EObs"))
		})
	})

	Describe("LandUseCode", func() {
		abbrevs := map[string]string{"forest": "F", "cropland": "C", "odd": "X2"}

		steps := func(landUses ...string) *types.LandUsePIContent {
			c := &types.LandUsePIContent{Keys: []string{types.LandUsePIMarker}}
			for _, lu := range landUses {
				c.Steps = append(c.Steps, types.LandUsePIStep{LandUse: lu})
			}
			return c
		}

		DescribeTable("joins abbreviations",
			func(content *types.LandUsePIContent, want string) {
				code, err := studydef.LandUseCode(content, abbrevs)
				Expect(err).NotTo(HaveOccurred())
				Expect(code).To(Equal(want))
			},
			Entry("two steps", steps("forest", "cropland"), "F2C"),
			Entry("one step", steps("forest"), "F"),
			Entry("no steps", steps(), ""),
			Entry("nil content", (*types.LandUsePIContent)(nil), ""),
			Entry("trailing 2 in the last abbreviation", steps("forest", "odd"), "F2X"),
		)
	})

	Describe("ParseBBox", func() {
		DescribeTable("parses corners in order",
			func(llLon, llLat, urLon, urLat string, want types.BBox) {
				setBBox(f, llLon, llLat, urLon, urLat)
				Expect(studydef.ParseBBox(f)).To(Equal(want))
			},
			Entry("all valid", "1", "2", "3", "4", types.BBox{1, 2, 3, 4}),
			Entry("bad ll-lon", "x", "2", "3", "4", types.BBox{0, 0, 0, 0}),
			Entry("bad ll-lat", "1", "", "3", "4", types.BBox{1, 0, 0, 0}),
			Entry("bad ur-lon", "1", "2", "?", "4", types.BBox{1, 2, 0, 0}),
			Entry("bad ur-lat", "1", "2", "3", "north", types.BBox{1, 2, 0, 0}),
			Entry("NaN", "1", "2", "NaN", "4", types.BBox{1, 2, 0, 0}),
			Entry("infinity", "1", "2", "3", "+Inf", types.BBox{1, 2, 0, 0}),
		)
	})
})
