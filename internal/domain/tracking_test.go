package domain

import (
	"reflect"
	"testing"
)

func TestClassifyEvent(t *testing.T) {
	tests := []struct {
		name  string
		event string
		want  []string
	}{
		{
			name:  "view moves both built-in counters",
			event: "view",
			want:  []string{"views", "impressions"},
		},
		{
			name:  "impression is a synonym for view",
			event: "impression",
			want:  []string{"views", "impressions"},
		},
		{
			name:  "click moves clicks only",
			event: "click",
			want:  []string{"clicks"},
		},
		{
			name:  "custom event gets namespaced key",
			event: "signup",
			want:  []string{"events.signup"},
		},
		{
			name:  "custom event is normalized for key safety",
			event: "Video Complete!",
			want:  []string{"events.video_complete_"},
		},
		{
			name:  "empty event is a custom event with empty key",
			event: "",
			want:  []string{"events."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyEvent(tt.event)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ClassifyEvent(%q) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestClassifyEventCapsLongNames(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	got := ClassifyEvent(string(long))
	if len(got) != 1 || len(got[0]) != len(CustomFieldPrefix)+64 {
		t.Errorf("long custom event not capped: %v", got)
	}
}

func TestTargetSelector(t *testing.T) {
	tests := []struct {
		name string
		rec  CreativeRecord
		want string
	}{
		{"bare selector prefixed", CreativeRecord{Selector: "header"}, "#header"},
		{"prefixed selector untouched", CreativeRecord{Selector: "#header"}, "#header"},
		{"legacy id fallback", CreativeRecord{LegacyTargetID: "slot"}, "#slot"},
		{"no addressing", CreativeRecord{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.TargetSelector(); got != tt.want {
				t.Errorf("TargetSelector() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasTarget(t *testing.T) {
	if (CreativeRecord{}).HasTarget() {
		t.Error("record without addressing reports a target")
	}
	if !(CreativeRecord{Selector: "x"}).HasTarget() {
		t.Error("record with selector reports no target")
	}
	if !(CreativeRecord{LegacyTargetID: "x"}).HasTarget() {
		t.Error("record with legacy id reports no target")
	}
}
