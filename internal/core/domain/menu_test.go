package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in      any
		want    float64
		wantErr bool
	}{
		{"12.50", 12.5, false},
		{" 3 ", 3, false},
		{12.5, 12.5, false},
		{7, 7, false},
		{json.Number("4.25"), 4.25, false},
		{"0", 0, false},
		{"abc", 0, true},
		{"", 0, true},
		{-1.0, 0, true},
		{"-2", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{nil, 0, true},
		{true, 0, true},
	}

	for _, tc := range cases {
		got, err := ParsePrice(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidPrice) {
				t.Errorf("ParsePrice(%#v): expected ErrInvalidPrice, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePrice(%#v): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePrice(%#v): want %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestMenuItem_MarshalJSON_FlattensExtraFields(t *testing.T) {
	item := MenuItem{
		ID:        "abc123",
		Category:  "Desserts",
		Name:      "Tiramisu",
		Price:     12.5,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Extra:     Fields{"image": "tiramisu.png", "name": "shadowed"},
	}

	raw, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["_id"] != "abc123" || got["category"] != "Desserts" || got["price"] != 12.5 {
		t.Fatalf("unexpected payload: %s", raw)
	}
	if got["image"] != "tiramisu.png" {
		t.Errorf("extra field lost: %s", raw)
	}
	// typed attributes win over free-form ones with the same key
	if got["name"] != "Tiramisu" {
		t.Errorf("expected typed name, got %v", got["name"])
	}
	if got["createdAt"] != "2026-03-01T12:00:00Z" {
		t.Errorf("unexpected createdAt: %v", got["createdAt"])
	}
}

func TestFields_Without(t *testing.T) {
	f := Fields{"_id": "x", "name": "Soup", "createdAt": "now"}
	out := f.Without("_id", "createdAt")

	if _, ok := out["_id"]; ok {
		t.Error("_id should be removed")
	}
	if out["name"] != "Soup" {
		t.Error("name should be kept")
	}
	if _, ok := f["_id"]; !ok {
		t.Error("original map must not be mutated")
	}
}
