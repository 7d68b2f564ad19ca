package services

// Services defined in this package:
// - AuthService: registration and login with JWT issuance
// - PersonService: person accounts and their profiles
// - ProfileService: standalone profile management
// - InstructorService: instructor role and salary queries
// - StudentService: student role, marks aggregates and threshold queries
// - CourseService: courses, their statistics and lifecycle broadcasts
// - ModuleService: course content modules
// - EnrollmentService: enrollments with confirmation notifications
// - StudentCourseService: per-course student results
// - ReviewService: course reviews with instructor notifications
