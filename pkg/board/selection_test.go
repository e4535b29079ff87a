package board

import (
	"testing"

	"beethoven.dev/beethoven/pkg/model"
)

func TestDetailAndEditAreMutuallyExclusive(t *testing.T) {
	var s Selection
	s.OpenDetail("x")
	s.OpenEdit(model.ClientCard{ID: "y"})

	if s.ViewingID() != "" {
		t.Fatalf("viewingID = %q, want cleared", s.ViewingID())
	}
	if s.Editing() == nil || s.Editing().ID != "y" {
		t.Fatalf("editing = %+v", s.Editing())
	}

	s.OpenDetail("z")
	if s.Editing() != nil {
		t.Fatal("opening detail must close the edit surface")
	}
	if s.ViewingID() != "z" {
		t.Fatalf("viewingID = %q", s.ViewingID())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	var s Selection
	s.OpenDetail("x")
	s.CloseDetail()
	s.CloseDetail()
	if s.ViewingID() != "" {
		t.Fatal("detail should stay closed")
	}

	s.OpenEdit(model.ClientCard{ID: "y"})
	s.CloseEdit()
	s.CloseEdit()
	if s.Editing() != nil {
		t.Fatal("edit should stay closed")
	}
}

func TestEditCopiesTheCard(t *testing.T) {
	var s Selection
	card := model.ClientCard{ID: "y", Name: "before"}
	s.OpenEdit(card)
	card.Name = "after"
	if s.Editing().Name != "before" {
		t.Fatal("edit surface must not alias the caller's card")
	}
}

func TestRequestDeleteClosesOtherSurfaces(t *testing.T) {
	var s Selection
	s.OpenDetail("x")
	s.RequestDelete("x")
	if s.ViewingID() != "" || s.Editing() != nil {
		t.Fatal("arming delete must close detail and edit")
	}
	if s.DeletingID() != "x" {
		t.Fatalf("deletingID = %q", s.DeletingID())
	}
	s.CancelDelete()
	if s.DeletingID() != "" {
		t.Fatal("cancel must disarm the delete")
	}
}
