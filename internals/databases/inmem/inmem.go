// Package inmem menyediakan implementasi store in-memory untuk test
// (pengganti MongoDB; satu mutex = satu "transaksi").
package inmem

import (
	"sync"

	submissionmodel "skillup_backend/internals/features/assignments/model"
	classmodel "skillup_backend/internals/features/classes/model"
	feedbackmodel "skillup_backend/internals/features/feedbacks/model"
	paymentmodel "skillup_backend/internals/features/payments/model"
	teachermodel "skillup_backend/internals/features/teachers/model"
	usermodel "skillup_backend/internals/features/users/users/model"
)

type DB struct {
	mu sync.Mutex

	Users       []usermodel.UserModel
	Teachers    []teachermodel.TeacherModel
	Classes     []classmodel.ClassModel
	Payments    []paymentmodel.PaymentModel
	Feedbacks   []feedbackmodel.FeedbackModel
	Submissions []submissionmodel.AssignmentSubmitModel
}

func Open() *DB {
	return &DB{}
}
