package validation

import (
	"testing"

	"github.com/aqarcrm/aqarcrm/internal/storage"
)

func TestValidateSnapshotAcceptsWellFormedProperties(t *testing.T) {
	v := NewValidator()

	payload := []byte(`[
		{"id": "p1", "title": "Apartment", "type": "apartment", "status": "available", "location": "Casablanca", "price": 8500}
	]`)
	if err := v.ValidateSnapshot(storage.KeyProperties, payload); err != nil {
		t.Fatalf("valid snapshot rejected: %v", err)
	}
}

func TestValidateSnapshotRejectsMissingRequiredField(t *testing.T) {
	v := NewValidator()

	payload := []byte(`[{"id": "p1", "title": "No status"}]`)
	err := v.ValidateSnapshot(storage.KeyProperties, payload)
	if err == nil {
		t.Fatal("snapshot missing required fields should be rejected")
	}
	if !IsValidationError(err) {
		t.Fatalf("got %T, want *ValidationErrors", err)
	}
	if ve := GetValidationErrors(err); ve == nil || len(ve.Errors) == 0 {
		t.Fatal("validation error carries no details")
	}
}

func TestValidateSnapshotRejectsWrongShape(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateSnapshot(storage.KeyClients, []byte(`{"not": "an array"}`)); err == nil {
		t.Fatal("object payload should be rejected where an array is required")
	}
}

func TestValidateSnapshotToleratesExtraFields(t *testing.T) {
	v := NewValidator()

	payload := []byte(`[
		{"id": "c1", "name": "Fatima", "role": "tenant", "status": "active", "some_future_field": 42}
	]`)
	if err := v.ValidateSnapshot(storage.KeyClients, payload); err != nil {
		t.Fatalf("unfamiliar extra fields should pass: %v", err)
	}
}

func TestValidateSnapshotUnknownCollectionAccepted(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateSnapshot("unknown_collection", []byte(`"anything"`)); err != nil {
		t.Fatalf("collections without a schema should be accepted: %v", err)
	}
}
