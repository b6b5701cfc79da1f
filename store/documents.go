/*
documents.go - Document tracking

Documents are the one hard-deleted collection: DeleteDocument removes
the record entirely, unlike the employee soft delete. Nothing references
documents by id, so removal cannot dangle.
*/
package store

import (
	"github.com/blackflag/hr-platform/hr"
	"github.com/blackflag/hr-platform/seed"
)

// Documents returns a copy of the document collection.
func (s *Store) Documents() []hr.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]hr.Document(nil), s.documents...)
}

// GetDocument returns the document with the given id, or nil.
func (s *Store) GetDocument(id string) *hr.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.documents {
		if s.documents[i].ID == id {
			d := s.documents[i]
			return &d
		}
	}
	return nil
}

// AddDocument appends a new document. The uploader is always the fixed
// current user.
func (s *Store) AddDocument(form hr.DocumentForm) hr.Document {
	s.mu.Lock()
	doc := hr.Document{
		ID:           seed.GenerateID("doc"),
		EmployeeID:   form.EmployeeID,
		DocumentType: form.DocumentType,
		Filename:     form.Filename,
		FileSize:     form.FileSize,
		UploadedBy:   s.user.ID,
		ExpiryDate:   form.ExpiryDate,
		CreatedAt:    s.clock(),
	}
	s.documents = append(s.documents, doc)
	s.persistLocked()
	s.mu.Unlock()

	s.AddNotification("Document uploaded successfully.", hr.SeveritySuccess)
	return doc
}

// DeleteDocument hard-removes the record. A later lookup by this id
// returns nil; other documents are untouched.
func (s *Store) DeleteDocument(id string) {
	s.mu.Lock()
	kept := s.documents[:0]
	for _, d := range s.documents {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	s.documents = kept
	s.persistLocked()
	s.mu.Unlock()

	s.AddNotification("Document deleted.", hr.SeverityInfo)
}
