package constants

// Role user
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// Status pengajuan teacher & status class
// (string-nya mengikuti data lama: "approve"/"reject", bukan "approved")
const (
	StatusPending = "pending"
	StatusApprove = "approve"
	StatusReject  = "reject"
)

// Cookie auth
const (
	TokenCookieName = "token"
)

// Nama collection di MongoDB
const (
	UsersCollection            = "users"
	TeachersCollection         = "teachers"
	ClassesCollection          = "classes"
	PaymentsCollection         = "payments"
	FeedbacksCollection        = "feedbacks"
	AssignmentSubmitCollection = "assignmentSubmit"
)
