package types

import (
	"encoding/json"
	"testing"
)

func TestBBox_Corners(t *testing.T) {
	b := BBox{-4, 55, -3, 56}

	if lon, lat := b.LowerLeft(); lon != -4 || lat != 55 {
		t.Errorf("LowerLeft = %v, %v", lon, lat)
	}
	if lon, lat := b.UpperRight(); lon != -3 || lat != 56 {
		t.Errorf("UpperRight = %v, %v", lon, lat)
	}

	bounds := b.Bounds()
	if bounds.Min.X != -4 || bounds.Min.Y != 55 || bounds.Max.X != -3 || bounds.Max.Y != 56 {
		t.Errorf("Bounds = %+v", bounds)
	}
	ring := b.Polygon()
	if len(ring) != 1 || len(ring[0]) != 4 {
		t.Fatalf("Polygon = %v", ring)
	}
	if pb := ring.Bounds(); pb.Min.X != -4 || pb.Min.Y != 55 || pb.Max.X != -3 || pb.Max.Y != 56 {
		t.Errorf("Polygon bounds = %+v", pb)
	}
	if got := ring.Area(); got != 1 {
		t.Errorf("Polygon area = %v, want 1", got)
	}
	if got, want := b.String(), "LL: -4.0000, 55.0000  UR: -3.0000, 56.0000"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

func TestBBox_JSON(t *testing.T) {
	data, err := json.Marshal(DefaultBBox)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[116.90045,28.2294,117,29]" {
		t.Errorf("unexpected JSON: %s", data)
	}
}

func TestLandUseFlags(t *testing.T) {
	settings := LandUseSettings{Forest: true, All: true}

	flags := settings.Flags()
	if len(flags) != len(LandUseClasses) {
		t.Fatalf("expected %d flags, got %d", len(LandUseClasses), len(flags))
	}
	for _, class := range LandUseClasses {
		if _, ok := flags[class]; !ok {
			t.Errorf("missing flag %s", class)
		}
	}

	if got := LandUseFromFlags(flags); got != settings {
		t.Errorf("LandUseFromFlags = %+v, want %+v", got, settings)
	}
	if got := LandUseFromFlags(map[string]bool{"wetland": true}); got != (LandUseSettings{}) {
		t.Errorf("unknown class should be ignored, got %+v", got)
	}
}

func TestRawDocument_Section(t *testing.T) {
	var empty RawDocument
	if empty.Section(GroupMin) != nil {
		t.Error("nil document should have no sections")
	}

	doc := RawDocument{GroupMin: {KeyStudy: "x"}}
	if doc.Section(GroupMin)[KeyStudy] != "x" {
		t.Error("expected minGUI section")
	}
	if doc.Section(GroupCommon) != nil {
		t.Error("expected no cmnGUI section")
	}
}

func TestLandUsePIContent_Has(t *testing.T) {
	var none *LandUsePIContent
	if none.Has(LandUsePIMarker) {
		t.Error("nil content has no keys")
	}

	content := &LandUsePIContent{Keys: []string{"yearFrom", LandUsePIMarker}}
	if !content.Has(LandUsePIMarker) {
		t.Error("expected marker")
	}
	if content.Has("other") {
		t.Error("unexpected key")
	}
}
