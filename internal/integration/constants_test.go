package integration_test

import (
	"github.com/google/uuid"
)

const (
	TestJWTSecret = "integration-secret-with-enough-entropy"

	TestUserEmail = "student@campus.edu"
	TestUserName  = "Sam Student"

	TestOtherUserEmail = "other@campus.edu"
	TestOtherUserName  = "Alex Other"

	TestScreeningID         = 1
	TestUnpricedScreeningID = 2
	TestMovieTitle          = "Test Movie"
	TestVenue               = "Main Auditorium"
)

var (
	TestUserID      = uuid.MustParse("5f0c2c1e-6f55-4a8e-9d0a-0d5c8e1b7a01")
	TestOtherUserID = uuid.MustParse("9b8e4f3a-1c2d-4e5f-8a9b-0c1d2e3f4a5b")
)
