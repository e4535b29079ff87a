package board

import "beethoven.dev/beethoven/pkg/model"

// Selection tracks which single record is open for read-only detail and
// which is open for editing. At most one of the two is ever set: opening
// one closes the other. Deletion gets its own armed-confirmation slot so a
// stray keypress cannot remove a client.
type Selection struct {
	viewingID  string
	editing    *model.ClientCard
	deletingID string
}

// OpenDetail opens the read-only detail view for id, closing any edit.
func (s *Selection) OpenDetail(id string) {
	s.viewingID = id
	s.editing = nil
	s.deletingID = ""
}

// OpenEdit opens the edit surface for a card, closing any detail view. The
// card is copied so in-progress edits never alias the fetched list.
func (s *Selection) OpenEdit(card model.ClientCard) {
	c := card
	s.editing = &c
	s.viewingID = ""
	s.deletingID = ""
}

// CloseDetail clears the detail view. Idempotent; both the explicit close
// key and an overlay dismiss land here.
func (s *Selection) CloseDetail() {
	s.viewingID = ""
}

// CloseEdit clears the edit surface. Idempotent.
func (s *Selection) CloseEdit() {
	s.editing = nil
}

// RequestDelete arms the delete confirmation for id.
func (s *Selection) RequestDelete(id string) {
	s.deletingID = id
	s.viewingID = ""
	s.editing = nil
}

// CancelDelete disarms a pending delete.
func (s *Selection) CancelDelete() {
	s.deletingID = ""
}

// ViewingID returns the id open in the detail view, or "".
func (s *Selection) ViewingID() string { return s.viewingID }

// Editing returns the card open for editing, or nil.
func (s *Selection) Editing() *model.ClientCard { return s.editing }

// DeletingID returns the id with an armed delete confirmation, or "".
func (s *Selection) DeletingID() string { return s.deletingID }
