// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	submissionRepo "skillup_backend/internals/features/assignments/repository"
	submissionRoute "skillup_backend/internals/features/assignments/route"
	classRepo "skillup_backend/internals/features/classes/repository"
	classRoute "skillup_backend/internals/features/classes/route"
	feedbackRepo "skillup_backend/internals/features/feedbacks/repository"
	feedbackRoute "skillup_backend/internals/features/feedbacks/route"
	statsRepo "skillup_backend/internals/features/home/stats/repository"
	statsRoute "skillup_backend/internals/features/home/stats/route"
	paymentRepo "skillup_backend/internals/features/payments/repository"
	paymentRoute "skillup_backend/internals/features/payments/route"
	teacherRepo "skillup_backend/internals/features/teachers/repository"
	teacherRoute "skillup_backend/internals/features/teachers/route"
	authRoute "skillup_backend/internals/features/users/auth/route"
	userRepo "skillup_backend/internals/features/users/users/repository"
	userRoute "skillup_backend/internals/features/users/users/route"
	"skillup_backend/internals/middlewares"
	authMiddleware "skillup_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *mongo.Database) {
	authGuard := authMiddleware.AuthMiddleware()
	paymentLimiter := middlewares.PaymentRateLimiter()

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, userRepo.NewUserMongo(db), authGuard)

	log.Println("[INFO] Setting up TeacherRoutes...")
	teacherRoute.TeacherRoutes(app, teacherRepo.NewTeacherMongo(db), authGuard)

	log.Println("[INFO] Setting up ClassRoutes...")
	classes := classRepo.NewClassMongo(db)
	classRoute.ClassRoutes(app, classes, authGuard)

	log.Println("[INFO] Setting up SubmissionRoutes...")
	submissionRoute.SubmissionRoutes(app, submissionRepo.NewSubmissionMongo(db), authGuard)

	log.Println("[INFO] Setting up FeedbackRoutes...")
	feedbackRoute.FeedbackRoutes(app, feedbackRepo.NewFeedbackMongo(db), authGuard)

	log.Println("[INFO] Setting up PaymentRoutes...")
	paymentRoute.PaymentRoutes(app, paymentRepo.NewPaymentMongo(db), classes, authGuard, paymentLimiter)

	log.Println("[INFO] Setting up StatsRoutes...")
	statsRoute.StatsRoutes(app, statsRepo.NewStatsMongo(db))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello from SkillUP Server..")
	})
}
