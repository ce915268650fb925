package service

import (
	"github.com/MKhiriev/go-note-sync/internal/cvr"
	"github.com/MKhiriev/go-note-sync/models"
)

// patchRow is a full row that is put into the client replica.
type patchRow struct {
	ID    string
	Value any
}

// collectionChanges holds the deletes and puts of one entity collection.
type collectionChanges struct {
	Collection cvr.Collection
	Dels       []string
	Puts       []patchRow
}

// buildPatch starts with a clear when the client's previous CVR is unknown,
// then emits per collection every del before any put.
func buildPatch(previous *cvr.CVR, changes ...collectionChanges) []models.PatchOperation {
	size := 0
	for _, c := range changes {
		size += len(c.Dels) + len(c.Puts)
	}

	patch := make([]models.PatchOperation, 0, size+1)
	if previous == nil {
		patch = append(patch, models.PatchOperation{Op: models.PatchOpClear})
	}

	for _, c := range changes {
		for _, id := range c.Dels {
			patch = append(patch, models.PatchOperation{Op: models.PatchOpDel, Key: cvr.Key(c.Collection, id)})
		}
		for _, row := range c.Puts {
			patch = append(patch, models.PatchOperation{Op: models.PatchOpPut, Key: cvr.Key(c.Collection, row.ID), Value: row.Value})
		}
	}

	return patch
}

func notePatchRows(notes []models.Note) []patchRow {
	rows := make([]patchRow, 0, len(notes))
	for _, note := range notes {
		if note.Files == nil {
			note.Files = models.StoredFiles{}
		}
		rows = append(rows, patchRow{ID: note.ID, Value: note})
	}
	return rows
}
