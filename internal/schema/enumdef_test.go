package schema_test

import (
	"errors"
	"testing"

	"protogen/internal/schema"
)

func TestNewEnumDefValid(t *testing.T) {
	e, err := schema.NewEnumDef("TrackType", "Type of track", []schema.EnumValue{
		{Name: "AUDIO", Value: 0},
		{Name: "INSTRUMENT", Value: 1},
		{Name: "GROUP", Value: 2},
	}, false, nil)
	if err != nil {
		t.Fatalf("NewEnumDef: %v", err)
	}
	if e.MaxValue() != 2 {
		t.Errorf("MaxValue = %d, want 2", e.MaxValue())
	}
	if e.DefaultValue() != "AUDIO" {
		t.Errorf("DefaultValue = %q, want AUDIO", e.DefaultValue())
	}
	if e.WireType() != "uint8" {
		t.Errorf("WireType = %q, want uint8", e.WireType())
	}
}

func TestNewEnumDefConstructionFailures(t *testing.T) {
	one := []schema.EnumValue{{Name: "A", Value: 0}}
	tests := []struct {
		name    string
		enum    string
		values  []schema.EnumValue
		mapping map[string]string
	}{
		{name: "empty name", enum: "", values: one},
		{name: "lowercase name", enum: "trackType", values: one},
		{name: "empty values", enum: "TrackType", values: nil},
		{name: "negative value", enum: "TrackType", values: []schema.EnumValue{{Name: "A", Value: -1}}},
		{name: "duplicate value name", enum: "TrackType", values: []schema.EnumValue{{Name: "A", Value: 0}, {Name: "A", Value: 1}}},
		{name: "dangling string mapping", enum: "TrackType", values: one, mapping: map[string]string{"audio": "MISSING"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.NewEnumDef(tt.enum, "", tt.values, false, tt.mapping)
			if err == nil {
				t.Fatal("expected construction error, got nil")
			}
			var se *schema.SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("expected *SchemaError, got %T: %v", err, err)
			}
		})
	}
}

func TestNewEnumDefStringMappingValid(t *testing.T) {
	_, err := schema.NewEnumDef("DeviceType", "", []schema.EnumValue{
		{Name: "UNKNOWN", Value: 0},
		{Name: "AUDIO_EFFECT", Value: 1},
	}, false, map[string]string{"audio-effect": "AUDIO_EFFECT"})
	if err != nil {
		t.Fatalf("valid string mapping rejected: %v", err)
	}
}

func TestNewEnumDefBitflags(t *testing.T) {
	e, err := schema.NewEnumDef("ChildType", "", []schema.EnumValue{
		{Name: "NONE", Value: 0},
		{Name: "SLOTS", Value: 1},
		{Name: "LAYERS", Value: 2},
		{Name: "DRUMS", Value: 4},
	}, true, nil)
	if err != nil {
		t.Fatalf("NewEnumDef: %v", err)
	}
	if !e.IsBitflags {
		t.Error("IsBitflags not kept")
	}
	if e.MaxValue() != 4 {
		t.Errorf("MaxValue = %d, want 4", e.MaxValue())
	}
}
