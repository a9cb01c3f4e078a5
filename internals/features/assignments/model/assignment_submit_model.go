package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// AssignmentSubmitModel: submission siswa.
// Date disimpan sebagai string RFC3339 — pengecekan "hari ini" pakai prefix
// YYYY-MM-DD (perilaku lama dipertahankan).
// Tidak ada dedup per (email, classId): submit dua kali = dua dokumen.
type AssignmentSubmitModel struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email           string             `json:"email" bson:"email"`
	ClassID         string             `json:"classId" bson:"classId"`
	AssignmentTitle string             `json:"assignment_title,omitempty" bson:"assignment_title,omitempty"`
	Submission      string             `json:"submission" bson:"submission"`
	Date            string             `json:"date" bson:"date"`
}
