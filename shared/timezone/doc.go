// Package timezone keeps the application timezone used for timestamps written to the
// database and rendered in responses.
//
//	_ = timezone.Setup(cfg.App.Timezone) // once at start-up
//	now := timezone.Now()
//	formatted := timezone.Format(artwork.CreatedAt, constant.DateFormat)
//
// Only IANA names are accepted ("UTC", "Europe/Amsterdam"). Until Setup is called
// every helper works in UTC.
package timezone
