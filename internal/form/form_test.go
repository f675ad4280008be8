package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

func newTestForm() *Form {
	return New(Options{
		PlantFuncTypes:   []string{"SoilBareGlobal", "Crop"},
		WeatherResources: []string{"CRU", "EObs"},
		GridResolutions:  []string{`30"`, "1'"},
	})
}

func TestNew(t *testing.T) {
	f := newTestForm()

	assert.NotEmpty(t, f.SessionID)
	assert.NotNil(t, f.WeatherSettings)
	assert.NotNil(t, f.LandUseAbbrevs)
	assert.Equal(t, "SoilBareGlobal", f.Text(PlantFuncType))
	assert.Equal(t, 0, f.Index(WeatherResource))
	assert.Contains(t, f.Names(), LandUseField("all"))
	for _, name := range f.Names() {
		assert.True(t, f.Enabled(name), name)
	}
}

func TestText(t *testing.T) {
	f := newTestForm()

	require.NoError(t, f.SetText(Study, "glasgow"))
	assert.Equal(t, "glasgow", f.Text(Study))

	// combo without items takes any text
	require.NoError(t, f.SetText(HistStartYr, "1980"))
	assert.Equal(t, "1980", f.Text(HistStartYr))
	assert.Equal(t, -1, f.Index(HistStartYr))

	require.NoError(t, f.SetText(WeatherResource, "EObs"))
	assert.Equal(t, 1, f.Index(WeatherResource))

	err := f.SetText(WeatherResource, "Unknown")
	assert.ErrorIs(t, err, ErrNotSelectable)
	assert.Equal(t, "EObs", f.Text(WeatherResource))

	assert.ErrorIs(t, f.SetText(AveWeather, "x"), ErrWrongKind)
	assert.Empty(t, f.Text("nope"))
}

func TestIndex(t *testing.T) {
	f := newTestForm()

	require.NoError(t, f.SetIndex(GridResol, 1))
	assert.Equal(t, "1'", f.Text(GridResol))
	assert.ErrorIs(t, f.SetIndex(GridResol, 2), ErrNotSelectable)
	assert.ErrorIs(t, f.SetIndex(GridResol, -1), ErrNotSelectable)
	assert.ErrorIs(t, f.SetIndex(Study, 0), ErrWrongKind)
	assert.Equal(t, -1, f.Index(Study))
}

func TestSetItems(t *testing.T) {
	f := newTestForm()
	require.NoError(t, f.SetText(PlantFuncType, "Crop"))

	require.NoError(t, f.SetItems(PlantFuncType, []string{"Forest", "Crop"}))
	assert.Equal(t, "Crop", f.Text(PlantFuncType))
	assert.Equal(t, []string{"Forest", "Crop"}, f.fields[PlantFuncType].Items())

	require.NoError(t, f.SetItems(PlantFuncType, []string{"Grass"}))
	assert.Equal(t, "Grass", f.Text(PlantFuncType))

	// emptied combo keeps its text as free text
	require.NoError(t, f.SetItems(PlantFuncType, nil))
	assert.Equal(t, "Grass", f.Text(PlantFuncType))

	assert.ErrorIs(t, f.SetItems(Study, []string{"a"}), ErrWrongKind)
}

func TestChecked(t *testing.T) {
	f := newTestForm()

	require.NoError(t, f.SetChecked(UseDomSoil, true))
	assert.True(t, f.Checked(UseDomSoil))
	assert.ErrorIs(t, f.SetChecked(Study, true), ErrWrongKind)
	assert.False(t, f.Checked(Study))
}

func TestEnabled(t *testing.T) {
	f := newTestForm()

	require.NoError(t, f.SetEnabled(RunEcosse, false))
	assert.False(t, f.Enabled(RunEcosse))
	assert.False(t, f.Enabled("nope"))
}

func TestUnknownField(t *testing.T) {
	f := newTestForm()

	err := f.SetText("studdy", "x")
	assert.ErrorIs(t, err, ErrUnknownField)

	var unknown *UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, Study, unknown.Suggestion)
	assert.Equal(t, `unknown field "studdy" (did you mean "study"?)`, err.Error())

	err = f.SetText("completely_unrelated", "x")
	require.ErrorAs(t, err, &unknown)
	assert.Empty(t, unknown.Suggestion)
	assert.Equal(t, `unknown field "completely_unrelated"`, err.Error())
}

func TestSetValue(t *testing.T) {
	f := newTestForm()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{Study, "glasgow", "glasgow"},
		{WeatherResource, "EObs", "EObs"},
		{GridResol, "1", "1'"},
		{AveWeather, "true", "true"},
		{UseHighCover, "1", "true"},
		{RunEcosse, "false", "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, f.SetValue(tt.name, tt.value))
			assert.Equal(t, tt.want, f.Value(tt.name))
		})
	}

	assert.ErrorIs(t, f.SetValue(WeatherResource, "Nowhere"), ErrNotSelectable)
	assert.Error(t, f.SetValue(AveWeather, "maybe"))
	assert.ErrorIs(t, f.SetValue("nope", "x"), ErrUnknownField)
}

func TestLandUse(t *testing.T) {
	f := newTestForm()

	require.NoError(t, f.SetChecked(LandUseField("forest"), true))
	flags := f.LandUseFlags()
	assert.Len(t, flags, len(types.LandUseClasses))
	assert.True(t, flags["forest"])
	assert.False(t, flags["all"])

	require.NoError(t, f.SetChecked(LandUseField("all"), true))
	AdjustLandUse(f)
	for _, class := range types.LandUseClasses {
		assert.Equal(t, class == "all", f.Enabled(LandUseField(class)), class)
	}

	require.NoError(t, f.SetChecked(LandUseField("all"), false))
	AdjustLandUse(f)
	for _, class := range types.LandUseClasses {
		assert.True(t, f.Enabled(LandUseField(class)), class)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "combo", Combo.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
