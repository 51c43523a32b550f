// Package timezone provides timezone utilities for the application.
//
// Booking dates are calendar dates; they are parsed and compared in the
// application timezone so that a stay starting "today" is the same day for
// the guest and for the back-office:
//
//	checkIn, err := timezone.Parse(constant.DateOnlyFormat, "2024-06-15")
//	today := timezone.Today()
//
// The timezone is configured via the APP_TIMEZONE environment variable
// (IANA names such as "Asia/Karachi" or "UTC") and is initialized when the
// package is imported.
package timezone
