package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestServicePatch_ChangesExcludesUnset(t *testing.T) {
	var patch ServicePatch
	if err := json.Unmarshal([]byte(`{"icon":"flame","active":false}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := patch.Changes()
	want := map[string]any{"icon": "flame", "active": false}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected changes: %#v", got)
	}
}

func TestServicePatch_EmptyBody(t *testing.T) {
	var patch ServicePatch
	if err := json.Unmarshal([]byte(`{}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := patch.Changes(); len(got) != 0 {
		t.Fatalf("expected no changes, got %#v", got)
	}
}

func TestServicePatch_ZeroValuesAreChanges(t *testing.T) {
	// {"order":0} means "set order to 0", not "leave order alone".
	var patch ServicePatch
	if err := json.Unmarshal([]byte(`{"order":0}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := patch.Changes()
	if v, ok := got["order"]; !ok || v != 0 {
		t.Fatalf("expected order 0 in changes, got %#v", got)
	}
}

func TestProjectPatch_MultilingualFieldSetWhole(t *testing.T) {
	var patch ProjectPatch
	body := `{"title":{"ua":"Котельня","ru":"Котельная","en":"Boiler room"}}`
	if err := json.Unmarshal([]byte(body), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := patch.Changes()
	title, ok := got["title"].(MultilingualText)
	if !ok {
		t.Fatalf("expected title in changes, got %#v", got)
	}
	if title.EN != "Boiler room" || title.UA != "Котельня" {
		t.Fatalf("unexpected title: %+v", title)
	}
}

func TestLeadPatch_Changes(t *testing.T) {
	status := LeadInProgress
	patch := LeadPatch{Status: &status}

	got := patch.Changes()
	want := map[string]any{"status": LeadInProgress}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected changes: %#v", got)
	}
}

func TestLeadStatus_Valid(t *testing.T) {
	for _, s := range []LeadStatus{LeadNew, LeadInProgress, LeadCompleted, LeadRejected} {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	for _, s := range []LeadStatus{"", "done", "NEW"} {
		if s.Valid() {
			t.Fatalf("%q should be invalid", s)
		}
	}
}
