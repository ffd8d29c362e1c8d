// Package timezone keeps every timestamp in the application timezone.
//
// Usage:
//
//	now := timezone.Now()                    // current time in app timezone
//	appTime := timezone.ToAppTime(someTime)  // convert any time to app timezone
//	formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//	t, err := timezone.Parse("2006-01-02", "2026-01-01")
//	loc := timezone.GetLocation()
//
// Reservation windows in particular are parsed and compared in this
// timezone, so a facility's day boundaries follow its operator's locale.
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is initialized when the package is imported. Use standard IANA
// timezone database names such as "UTC" or "Asia/Jakarta".
package timezone
