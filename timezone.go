package ics

// timezoneBlock returns the content lines of the VTIMEZONE component for the
// given zone name. The DAYLIGHT and STANDARD sub-blocks carry the Central
// European transition rule (+01:00 standard, +02:00 daylight, switching on
// the last Sundays of March and October). The rule is static: it is emitted
// verbatim for every zone rather than computed from the zone's actual
// transitions.
func timezoneBlock(tzid string) []string {
	return []string{
		"BEGIN:VTIMEZONE",
		"TZID:" + tzid,
		"X-LIC-LOCATION:" + tzid,
		"BEGIN:DAYLIGHT",
		"TZOFFSETFROM:+0100",
		"TZOFFSETTO:+0200",
		"TZNAME:CEST",
		"DTSTART:19700329T020000",
		"RRULE:FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU",
		"END:DAYLIGHT",
		"BEGIN:STANDARD",
		"TZOFFSETFROM:+0200",
		"TZOFFSETTO:+0100",
		"TZNAME:CET",
		"DTSTART:19701025T030000",
		"RRULE:FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU",
		"END:STANDARD",
		"END:VTIMEZONE",
	}
}
