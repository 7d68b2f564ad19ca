package services

import (
	"fmt"

	"github.com/ademsari/coursehub/internal/app/models"
	"github.com/ademsari/coursehub/internal/pkg/logger"
	"github.com/ademsari/coursehub/internal/pkg/metrics"
	"github.com/ademsari/coursehub/internal/pkg/notifier"
)

// lifecycleNotifier sends the lifecycle emails triggered by course,
// enrollment and review changes. Callers invoke it in a goroutine after
// their transaction has committed; failures are counted and logged but
// never surfaced to the request.
type lifecycleNotifier struct {
	mailer notifier.Notifier
}

func newLifecycleNotifier(mailer notifier.Notifier) *lifecycleNotifier {
	return &lifecycleNotifier{mailer: mailer}
}

func (n *lifecycleNotifier) send(kind, toEmail, subject, body string) {
	if err := n.mailer.SendMail(toEmail, subject, body); err != nil {
		metrics.NotificationsTotal.WithLabelValues(kind, "error").Inc()
		logger.Warn().Err(err).
			Str("kind", kind).
			Str("toEmail", toEmail).
			Msg("Failed to send lifecycle notification")
		return
	}
	metrics.NotificationsTotal.WithLabelValues(kind, "sent").Inc()
}

// courseCreated notifies every student that a new course is available
func (n *lifecycleNotifier) courseCreated(students []*models.Student, courseName string) {
	for _, student := range students {
		if student.Person == nil {
			continue
		}
		n.send("course_created", student.Person.Email,
			"New Course Available",
			fmt.Sprintf("A new course named %s is now available.", courseName))
	}
}

// courseDeleted notifies every student that a course has been removed
func (n *lifecycleNotifier) courseDeleted(students []*models.Student, courseName string) {
	for _, student := range students {
		if student.Person == nil {
			continue
		}
		n.send("course_deleted", student.Person.Email,
			"Course Deleted",
			fmt.Sprintf("The course named %s has been deleted.", courseName))
	}
}

func (n *lifecycleNotifier) enrollmentConfirmed(studentEmail, courseName string) {
	n.send("enrollment_confirmed", studentEmail,
		"Enrollment Confirmed",
		fmt.Sprintf("You have been enrolled in the course: %s.", courseName))
}

func (n *lifecycleNotifier) enrollmentCancelled(studentEmail, courseName string) {
	n.send("enrollment_cancelled", studentEmail,
		"Enrollment Cancelled",
		fmt.Sprintf("Your enrollment in the course: %s has been cancelled.", courseName))
}

func (n *lifecycleNotifier) reviewReceived(instructorEmail, courseName string) {
	n.send("review_received", instructorEmail,
		"New Review Received",
		fmt.Sprintf("You have received a new review for the course: %s.", courseName))
}

func (n *lifecycleNotifier) reviewDeleted(instructorEmail, courseName string) {
	n.send("review_deleted", instructorEmail,
		"Review Deleted",
		fmt.Sprintf("A review for the course: %s has been deleted.", courseName))
}
