// Package form holds the in-memory state of the study setup form.
//
// A Form is a set of named fields (text entries, selectors, checkboxes and
// action buttons) plus session state that has no widget of its own, such as
// the bounding box and the remembered weather settings. Fields are read and
// written by name through the Accessor methods so that settings
// reconciliation never depends on a widget toolkit.
package form

import (
	"fmt"
	"slices"
	"sort"
	"strconv"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cast"

	"github.com/NewEconomicPolicy/HoliSoilsGlEcLtdSp/pkg/types"
)

// Accessor reads and writes form fields by name.
// Getters return the zero value for unknown names.
type Accessor interface {
	Text(name string) string
	SetText(name, value string) error
	Index(name string) int
	SetIndex(name string, index int) error
	Checked(name string) bool
	SetChecked(name string, checked bool) error
	Enabled(name string) bool
	SetEnabled(name string, enabled bool) error
}

// Field is one named widget.
type Field struct {
	Kind    Kind
	text    string
	items   []string
	index   int
	checked bool
	enabled bool
}

// Items returns the selectable items of a combo field.
func (f *Field) Items() []string {
	return slices.Clone(f.items)
}

// Options seed a new Form.
type Options struct {
	PlantFuncTypes   []string
	WeatherResources []string
	GridResolutions  []string
	LandUseAbbrevs   map[string]string

	PythonExe      string
	RunsitesPy     string
	RunsitesConfig string
	Version        string
}

// Form is the mutable session state shared by the settings reader and
// writers.
type Form struct {
	// SessionID identifies this form in logs.
	SessionID string

	fields map[string]*Field

	// BBox is the area of interest: ll-lon, ll-lat, ur-lon, ur-lat.
	BBox types.BBox
	// Area of BBox in square kilometres, computed on restore.
	Area float64

	// HWSDLabel describes the area covered by the loaded soil CSV.
	HWSDLabel string
	CSVFname  string
	// MaskFname is the land-use mask file. Land-use flags are only restored
	// when it is set.
	MaskFname string

	// Requested resolution, derived elsewhere. Nil means unset.
	ReqResolDeg    *float64
	ReqResolGranul *int

	// WeatherSettings remembers years and scenario per weather resource.
	WeatherSettings map[string]types.WeatherSettings

	LuPi           *types.LandUsePIContent
	LandUseAbbrevs map[string]string

	// LitterVariables lists the variables found in the litter NetCDF file.
	LitterVariables []string

	PythonExe      string
	RunsitesPy     string
	RunsitesConfig string
	Version        string
}

// New returns a form with every field registered and enabled.
func New(opts Options) *Form {
	f := &Form{
		SessionID:       ulid.Make().String(),
		fields:          make(map[string]*Field),
		WeatherSettings: make(map[string]types.WeatherSettings),
		LandUseAbbrevs:  opts.LandUseAbbrevs,
		PythonExe:       opts.PythonExe,
		RunsitesPy:      opts.RunsitesPy,
		RunsitesConfig:  opts.RunsitesConfig,
		Version:         opts.Version,
	}
	if f.LandUseAbbrevs == nil {
		f.LandUseAbbrevs = make(map[string]string)
	}
	for _, spec := range fieldSpecs() {
		f.fields[spec.name] = &Field{Kind: spec.kind, index: -1, enabled: true}
	}
	f.SetItems(PlantFuncType, opts.PlantFuncTypes)
	f.SetItems(WeatherResource, opts.WeatherResources)
	f.SetItems(GridResol, opts.GridResolutions)
	return f
}

// Names returns all field names, sorted.
func (f *Form) Names() []string {
	names := make([]string, 0, len(f.fields))
	for name := range f.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named field.
func (f *Form) Lookup(name string) (*Field, error) {
	field, ok := f.fields[name]
	if !ok {
		return nil, &UnknownFieldError{Name: name, Suggestion: suggest(name, f.Names())}
	}
	return field, nil
}

// SetItems replaces the items of a combo field. The current text is kept
// selected if it is still an item; otherwise the first item is selected.
func (f *Form) SetItems(name string, items []string) error {
	field, err := f.Lookup(name)
	if err != nil {
		return err
	}
	if field.Kind != Combo {
		return fmt.Errorf("%s is a %s field: %w", name, field.Kind, ErrWrongKind)
	}
	current := f.Text(name)
	field.items = slices.Clone(items)
	field.index = -1
	if len(field.items) == 0 {
		field.text = current
		return nil
	}
	field.index = 0
	if i := slices.Index(field.items, current); i >= 0 {
		field.index = i
	}
	return nil
}

// Text returns the text of a text field or the current text of a combo.
func (f *Form) Text(name string) string {
	field, ok := f.fields[name]
	if !ok {
		return ""
	}
	if field.Kind == Combo && len(field.items) > 0 {
		if field.index < 0 || field.index >= len(field.items) {
			return ""
		}
		return field.items[field.index]
	}
	return field.text
}

// SetText sets a text field, or selects value in a combo. A combo with
// items rejects values that are not among them.
func (f *Form) SetText(name, value string) error {
	field, err := f.Lookup(name)
	if err != nil {
		return err
	}
	switch field.Kind {
	case Text:
		field.text = value
	case Combo:
		if len(field.items) == 0 {
			field.text = value
			return nil
		}
		i := slices.Index(field.items, value)
		if i < 0 {
			return fmt.Errorf("%q for %s: %w", value, name, ErrNotSelectable)
		}
		field.index = i
	default:
		return fmt.Errorf("%s is a %s field: %w", name, field.Kind, ErrWrongKind)
	}
	return nil
}

// Index returns the selected index of a combo, or -1.
func (f *Form) Index(name string) int {
	field, ok := f.fields[name]
	if !ok || field.Kind != Combo {
		return -1
	}
	return field.index
}

// SetIndex selects an item of a combo by position.
func (f *Form) SetIndex(name string, index int) error {
	field, err := f.Lookup(name)
	if err != nil {
		return err
	}
	if field.Kind != Combo {
		return fmt.Errorf("%s is a %s field: %w", name, field.Kind, ErrWrongKind)
	}
	if index < 0 || (len(field.items) > 0 && index >= len(field.items)) {
		return fmt.Errorf("index %d for %s: %w", index, name, ErrNotSelectable)
	}
	field.index = index
	return nil
}

// Checked reports whether a checkbox is checked.
func (f *Form) Checked(name string) bool {
	field, ok := f.fields[name]
	return ok && field.Kind == Check && field.checked
}

// SetChecked checks or unchecks a checkbox.
func (f *Form) SetChecked(name string, checked bool) error {
	field, err := f.Lookup(name)
	if err != nil {
		return err
	}
	if field.Kind != Check {
		return fmt.Errorf("%s is a %s field: %w", name, field.Kind, ErrWrongKind)
	}
	field.checked = checked
	return nil
}

// Enabled reports whether a field accepts user input.
func (f *Form) Enabled(name string) bool {
	field, ok := f.fields[name]
	return ok && field.enabled
}

// SetEnabled enables or disables a field.
func (f *Form) SetEnabled(name string, enabled bool) error {
	field, err := f.Lookup(name)
	if err != nil {
		return err
	}
	field.enabled = enabled
	return nil
}

// SetValue sets a field from its string form: text for text fields, item
// text or index for combos, a boolean for checkboxes and the enabled state
// for actions.
func (f *Form) SetValue(name, value string) error {
	field, err := f.Lookup(name)
	if err != nil {
		return err
	}
	switch field.Kind {
	case Check, Action:
		on, err := cast.ToBoolE(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if field.Kind == Action {
			return f.SetEnabled(name, on)
		}
		return f.SetChecked(name, on)
	case Combo:
		err := f.SetText(name, value)
		if err == nil {
			return nil
		}
		if i, convErr := strconv.Atoi(value); convErr == nil {
			return f.SetIndex(name, i)
		}
		return err
	default:
		return f.SetText(name, value)
	}
}

// Value returns a field in its string form, the inverse of SetValue.
func (f *Form) Value(name string) string {
	field, ok := f.fields[name]
	if !ok {
		return ""
	}
	switch field.Kind {
	case Check:
		return strconv.FormatBool(field.checked)
	case Action:
		return strconv.FormatBool(field.enabled)
	default:
		return f.Text(name)
	}
}

// LandUseFlags returns the land-use checkboxes keyed by class.
func (f *Form) LandUseFlags() map[string]bool {
	flags := make(map[string]bool, len(types.LandUseClasses))
	for _, class := range types.LandUseClasses {
		flags[class] = f.Checked(LandUseField(class))
	}
	return flags
}

// AdjustLandUse disables the individual land-use checkboxes while "all" is
// checked and enables them otherwise.
func AdjustLandUse(f *Form) {
	all := f.Checked(LandUseField("all"))
	for _, class := range types.LandUseClasses {
		if class == "all" {
			continue
		}
		f.SetEnabled(LandUseField(class), !all)
	}
}

var _ Accessor = (*Form)(nil)
