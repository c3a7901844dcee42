package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/komfort-city/site-backend/internal/core/domain"
)

func TestCollectionSpec_ListSort(t *testing.T) {
	cases := []struct {
		spec        CollectionSpec
		createdSort int
	}{
		{Services, 1},
		{Sectors, 1},
		{Advantages, 1},
		{Solutions, 1},
		{FAQs, 1},
		{Projects, -1},
	}
	for _, tc := range cases {
		t.Run(tc.spec.Name, func(t *testing.T) {
			want := bson.D{
				{Key: "order", Value: 1},
				{Key: "created_at", Value: tc.createdSort},
			}
			got := tc.spec.ListSort()
			if len(got) != len(want) {
				t.Fatalf("unexpected sort: %v", got)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("unexpected sort: %v, want %v", got, want)
				}
			}
		})
	}
}

func TestParseID(t *testing.T) {
	if _, err := parseID("not-an-object-id"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}

	oid, err := parseID("64f1a2b3c4d5e6f708192a3b")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if oid.Hex() != "64f1a2b3c4d5e6f708192a3b" {
		t.Fatalf("roundtrip mismatch: %s", oid.Hex())
	}
}
