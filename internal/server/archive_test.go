package server

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewReceipt(t *testing.T) {
	r := NewReceipt("abc123", "Ada Lovelace", 4096)

	if _, err := uuid.Parse(r.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", r.ID, err)
	}
	if r.DocHash != "abc123" {
		t.Errorf("DocHash = %q, want %q", r.DocHash, "abc123")
	}
	if r.Name != "Ada Lovelace" {
		t.Errorf("Name = %q, want %q", r.Name, "Ada Lovelace")
	}
	if r.Size != 4096 {
		t.Errorf("Size = %d, want 4096", r.Size)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
	if r.CreatedAt.Location() != nil && r.CreatedAt.Location().String() != "UTC" {
		t.Errorf("CreatedAt location = %v, want UTC", r.CreatedAt.Location())
	}
}

func TestNewReceiptUniqueIDs(t *testing.T) {
	a := NewReceipt("h", "n", 1)
	b := NewReceipt("h", "n", 1)
	if a.ID == b.ID {
		t.Errorf("two receipts share ID %q", a.ID)
	}
}

func TestNullArchive(t *testing.T) {
	var a NullArchive
	if err := a.Save(context.Background(), NewReceipt("h", "n", 1)); err != nil {
		t.Errorf("Save returned %v, want nil", err)
	}
	if err := a.Close(context.Background()); err != nil {
		t.Errorf("Close returned %v, want nil", err)
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"generic error", errors.New("boom"), false},
		{"command error", mongo.CommandError{Code: 11000, Message: "duplicate key"}, false},
		{"network labeled", mongo.CommandError{Labels: []string{"NetworkError"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTransient(tt.err); got != tt.want {
				t.Errorf("isTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
